package traefik

import "fmt"

// =============================================================================
// Traefik Label Generation Functions
// =============================================================================

// MiddlewareLabels returns the global declarations shared by every router:
// the enable flag, gzip compression, the HTTPS redirect and the buffering
// limits for large uploads.
func MiddlewareLabels() []string {
	prefix := "traefik.http.middlewares."
	return []string{
		"traefik.enable=true",
		prefix + MiddlewareGzip + ".compress=true",
		prefix + MiddlewareRedirectToHTTPS + ".redirectscheme.scheme=https",
		fmt.Sprintf("%s%s.buffering.maxRequestBodyBytes=%d", prefix, MiddlewareLargeUpload, MaxRequestBodyBytes),
		fmt.Sprintf("%s%s.buffering.memRequestBodyBytes=%d", prefix, MiddlewareLargeUpload, MemRequestBodyBytes),
		fmt.Sprintf("%s%s.buffering.retryExpression=%s", prefix, MiddlewareLargeUpload, RetryExpression),
	}
}

// RouterLabels generates the labels for a single router.
//
// A plain router yields 4 labels (entry point, middleware, rule, service).
// A TLS router appends the cert resolver and the tls flag:
//
//	labels := RouterLabels(Router{
//	    Name:       "http-0-abc123",
//	    EntryPoint: "http",
//	    Middleware: "gzip",
//	    Host:       "app.example.com",
//	})
//	// traefik.http.routers.http-0-abc123.entryPoints=http
//	// traefik.http.routers.http-0-abc123.middlewares=gzip
//	// traefik.http.routers.http-0-abc123.rule=Host(`app.example.com`) && PathPrefix(`/`)
//	// traefik.http.routers.http-0-abc123.service=http-0-abc123
func RouterLabels(r Router) []string {
	prefix := "traefik.http.routers." + r.Name

	labels := []string{
		fmt.Sprintf("%s.entryPoints=%s", prefix, r.EntryPoint),
		fmt.Sprintf("%s.middlewares=%s", prefix, r.Middleware),
		fmt.Sprintf("%s.rule=%s", prefix, HostRule(r.Host)),
		fmt.Sprintf("%s.service=%s", prefix, r.Name),
	}

	if r.TLS() {
		labels = append(labels,
			fmt.Sprintf("%s.tls.certresolver=%s", prefix, r.CertResolver),
			fmt.Sprintf("%s.tls=true", prefix),
		)
	}

	return labels
}

// ServicePortLabel declares the load balancer port of a service.
func ServicePortLabel(name string, port int) string {
	return fmt.Sprintf("traefik.http.services.%s.loadbalancer.server.port=%d", name, port)
}

// HostRule matches every path on host.
func HostRule(host string) string {
	return fmt.Sprintf("Host(`%s`) && PathPrefix(`/`)", host)
}

// RouterName builds the numbered router/service name, e.g. "https-2-abc123".
func RouterName(scheme string, index int, appID string) string {
	return fmt.Sprintf("%s-%d-%s", scheme, index, appID)
}

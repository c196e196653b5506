// Package routing assembles the complete reverse proxy label set for one
// Coolify application.
//
// Generate is a pure function: it combines the Traefik routers, services and
// middlewares with the caddy site blocks in a fixed order, numbering routers
// and blocks with counters local to the call.
package routing

import (
	"github.com/vrhotelo/labelgen/internal/core/caddy"
	"github.com/vrhotelo/labelgen/internal/core/traefik"
)

// =============================================================================
// Route Grammar
// =============================================================================

// route is one row of the routing table: where a host is served and how.
type route struct {
	host       string
	middleware string
}

// site is one caddy block address.
type site struct {
	address string
}

// httpRoutes lists the HTTP routers in emission order.
func httpRoutes(p Params, subdomains []string) []route {
	routes := []route{
		{host: p.SslipDomain(), middleware: traefik.MiddlewareGzip},
		{host: p.BaseDomain, middleware: traefik.MiddlewareGzip},
		{host: p.BaseDomain, middleware: traefik.MiddlewareRedirectToHTTPS},
	}
	for _, sub := range subdomains {
		routes = append(routes, route{host: p.SubdomainHost(sub), middleware: traefik.MiddlewareRedirectToHTTPS})
	}
	return routes
}

// httpsRoutes lists the HTTPS routers in emission order.
func httpsRoutes(p Params, subdomains []string) []route {
	routes := []route{
		{host: p.BaseDomain, middleware: traefik.MiddlewareGzip},
	}
	for _, sub := range subdomains {
		routes = append(routes, route{host: p.SubdomainHost(sub), middleware: traefik.MiddlewareGzip})
	}
	return routes
}

// caddySites lists the caddy block addresses in emission order.
func caddySites(p Params, subdomains []string) []site {
	sites := []site{
		{address: caddy.HTTPAddress(p.SslipDomain())},
		{address: caddy.HTTPAddress(p.BaseDomain)},
		{address: caddy.HTTPSAddress(p.BaseDomain)},
	}
	for _, sub := range subdomains {
		sites = append(sites, site{address: caddy.HTTPSAddress(p.SubdomainHost(sub))})
	}
	return sites
}

// =============================================================================
// Generation
// =============================================================================

// counters holds the running suffixes for one Generate call.
type counters struct {
	http  int
	https int
	caddy int
}

// Generate returns the ordered label lines for an application.
//
// Output order: global middlewares, HTTP routers, HTTPS routers, HTTP
// service ports, HTTPS service ports, caddy blocks, ingress network.
// An empty subdomain list is valid and yields only the fixed routes.
func Generate(p Params, subdomains []string) []string {
	lines := make([]string, 0, LineCount(len(subdomains)))
	c := counters{
		http:  httpCounterStart,
		https: httpsCounterStart,
		caddy: caddyCounterStart,
	}

	lines = append(lines, traefik.MiddlewareLabels()...)

	for _, r := range httpRoutes(p, subdomains) {
		lines = append(lines, traefik.RouterLabels(traefik.Router{
			Name:       traefik.RouterName(traefik.EntryPointHTTP, c.http, p.AppID),
			EntryPoint: traefik.EntryPointHTTP,
			Middleware: r.middleware,
			Host:       r.host,
		})...)
		c.http++
	}

	for _, r := range httpsRoutes(p, subdomains) {
		lines = append(lines, traefik.RouterLabels(traefik.Router{
			Name:         traefik.RouterName(traefik.EntryPointHTTPS, c.https, p.AppID),
			EntryPoint:   traefik.EntryPointHTTPS,
			Middleware:   r.middleware,
			Host:         r.host,
			CertResolver: p.CertResolver,
		})...)
		c.https++
	}

	// Service ranges are plain arithmetic over the subdomain count, not a
	// recount of the routers above.
	serviceEnd := len(subdomains) + fixedHTTPRoutes
	for i := httpCounterStart; i < serviceEnd; i++ {
		lines = append(lines, traefik.ServicePortLabel(traefik.RouterName(traefik.EntryPointHTTP, i, p.AppID), p.ServicePort))
	}
	for i := httpsCounterStart; i < serviceEnd; i++ {
		lines = append(lines, traefik.ServicePortLabel(traefik.RouterName(traefik.EntryPointHTTPS, i, p.AppID), p.ServicePort))
	}

	for _, s := range caddySites(p, subdomains) {
		lines = append(lines, caddy.BlockLabels(caddy.Block{
			Index:        c.caddy,
			Address:      s.address,
			UpstreamPort: p.ServicePort,
		})...)
		c.caddy++
	}

	lines = append(lines, caddy.IngressNetworkLabel(p.IngressNetwork))

	return lines
}

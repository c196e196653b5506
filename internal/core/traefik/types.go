package traefik

// =============================================================================
// Traefik Label Generation Types
// =============================================================================

// Entry points declared on the Coolify Traefik instance.
const (
	EntryPointHTTP  = "http"
	EntryPointHTTPS = "https"
)

// Middleware names declared by MiddlewareLabels.
const (
	MiddlewareGzip            = "gzip"
	MiddlewareRedirectToHTTPS = "redirect-to-https"
	MiddlewareLargeUpload     = "large-upload-timeout"
)

// Buffering limits for the large-upload middleware.
const (
	MaxRequestBodyBytes int64 = 5 * 1024 * 1024 * 1024 // 5 GiB
	MemRequestBodyBytes int64 = 10 * 1024 * 1024       // 10 MiB
	RetryExpression           = "IsNetworkError() && Attempts() < 3"
)

// Router describes one Traefik router and the service it points at.
type Router struct {
	// Name is the router name, also used as the service name
	// (e.g., "http-0-abc123").
	Name string

	// EntryPoint is the Traefik entry point ("http" or "https").
	EntryPoint string

	// Middleware is the single middleware attached to the router.
	Middleware string

	// Host is the hostname matched by the router rule.
	Host string

	// CertResolver enables TLS with the named resolver when non-empty.
	CertResolver string
}

// TLS reports whether the router terminates TLS.
func (r Router) TLS() bool {
	return r.CertResolver != ""
}

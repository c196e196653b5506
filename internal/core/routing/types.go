package routing

import "fmt"

// =============================================================================
// Defaults
// =============================================================================

const (
	// DefaultBaseDomain is the primary custom domain tenants are served under.
	DefaultBaseDomain = "app.vrhotelo.com"

	// DefaultSslipIP is the server address encoded in the fallback sslip.io domain.
	DefaultSslipIP = "161.97.75.123"

	// DefaultCertResolver is the Traefik ACME resolver for HTTPS routers.
	DefaultCertResolver = "letsencrypt"

	// DefaultServicePort is the container port every service balances to.
	DefaultServicePort = 80

	// DefaultIngressNetwork is the docker network shared with the caddy proxy.
	DefaultIngressNetwork = "coolify"
)

// Counter start values. HTTPS numbering starts at 2 so the base domain's
// HTTPS router lines up with its HTTP redirect router.
const (
	httpCounterStart  = 0
	httpsCounterStart = 2
	caddyCounterStart = 0
)

// fixedHTTPRoutes is the number of HTTP routers emitted before the
// per-subdomain ones (sslip, base, base redirect).
const fixedHTTPRoutes = 3

// =============================================================================
// Params
// =============================================================================

// Params contains everything the generator needs besides the subdomains.
type Params struct {
	// AppID is the Coolify application identifier, used verbatim.
	AppID string

	// BaseDomain is the domain subdomains are appended to.
	BaseDomain string

	// SslipIP is the IPv4 address embedded in the sslip.io fallback domain.
	SslipIP string

	// CertResolver is the Traefik certificate resolver for HTTPS routers.
	CertResolver string

	// ServicePort is the load balancer port for every service.
	ServicePort int

	// IngressNetwork is the docker network caddy attaches to.
	IngressNetwork string
}

// DefaultParams returns the production parameters for appID.
func DefaultParams(appID string) Params {
	return Params{
		AppID:          appID,
		BaseDomain:     DefaultBaseDomain,
		SslipIP:        DefaultSslipIP,
		CertResolver:   DefaultCertResolver,
		ServicePort:    DefaultServicePort,
		IngressNetwork: DefaultIngressNetwork,
	}
}

// SslipDomain returns the fallback domain, e.g. "abc123.161.97.75.123.sslip.io".
func (p Params) SslipDomain() string {
	return fmt.Sprintf("%s.%s.sslip.io", p.AppID, p.SslipIP)
}

// SubdomainHost returns the full hostname for a tenant subdomain.
func (p Params) SubdomainHost(subdomain string) string {
	return subdomain + "." + p.BaseDomain
}

// LineCount returns how many lines Generate produces for n subdomains.
func LineCount(n int) int {
	const (
		globalLines  = 6
		httpRouter   = 4
		httpsRouter  = 6
		caddyBlock   = 6
		networkLines = 1
	)

	httpRouters := fixedHTTPRoutes + n
	httpsRouters := 1 + n
	httpServices := n + fixedHTTPRoutes
	httpsServices := n + fixedHTTPRoutes - httpsCounterStart
	caddyBlocks := 3 + n

	return globalLines +
		httpRouter*httpRouters +
		httpsRouter*httpsRouters +
		httpServices +
		httpsServices +
		caddyBlock*caddyBlocks +
		networkLines
}

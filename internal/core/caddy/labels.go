// Package caddy provides pure functions for generating caddy-docker-proxy labels.
//
// Each site is rendered as a numbered block (caddy_0, caddy_1, ...) that
// compresses responses, strips the Server header and reverse proxies every
// path to the container with an SPA-style try_files fallback.
package caddy

import "fmt"

// =============================================================================
// Block Defaults
// =============================================================================

const (
	// Encoding is the content encoding order for every block.
	Encoding = "zstd gzip"

	// TryFiles is the fallback order for unmatched paths.
	TryFiles = "{path} /index.html /index.php"
)

// Block is one numbered caddy site block.
type Block struct {
	// Index is the block number, unique across the generated labels.
	Index int

	// Address is the site address including scheme (e.g., "https://app.example.com").
	Address string

	// UpstreamPort is the container port handed to {{upstreams}}.
	UpstreamPort int
}

// =============================================================================
// Label Generation Functions
// =============================================================================

// BlockLabels generates the 6 labels of a site block. The site address
// line comes last.
func BlockLabels(b Block) []string {
	prefix := fmt.Sprintf("caddy_%d", b.Index)

	return []string{
		fmt.Sprintf("%s.encode=%s", prefix, Encoding),
		fmt.Sprintf("%s.handle_path.%d_reverse_proxy={{upstreams %d}}", prefix, b.Index, b.UpstreamPort),
		fmt.Sprintf("%s.handle_path=/*", prefix),
		fmt.Sprintf("%s.header=-Server", prefix),
		fmt.Sprintf("%s.try_files=%s", prefix, TryFiles),
		fmt.Sprintf("%s=%s", prefix, b.Address),
	}
}

// IngressNetworkLabel names the docker network caddy uses to reach containers.
func IngressNetworkLabel(network string) string {
	return "caddy_ingress_network=" + network
}

// HTTPAddress returns a plain HTTP site address for host.
func HTTPAddress(host string) string {
	return "http://" + host
}

// HTTPSAddress returns an HTTPS site address for host.
func HTTPSAddress(host string) string {
	return "https://" + host
}

package routing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

var (
	httpRouterRe   = regexp.MustCompile(`^traefik\.http\.routers\.http-(\d+)-[^.]+\.entryPoints=`)
	httpsRouterRe  = regexp.MustCompile(`^traefik\.http\.routers\.https-(\d+)-[^.]+\.entryPoints=`)
	httpServiceRe  = regexp.MustCompile(`^traefik\.http\.services\.http-(\d+)-`)
	httpsServiceRe = regexp.MustCompile(`^traefik\.http\.services\.https-(\d+)-`)
)

func drawInput(t *rapid.T) (string, []string) {
	appID := rapid.StringMatching(`[a-z0-9]{6,24}`).Draw(t, "appID")
	subs := rapid.SliceOfN(rapid.StringMatching(`[a-z][a-z0-9-]{0,12}`), 0, 20).Draw(t, "subdomains")
	return appID, subs
}

func suffixes(lines []string, re *regexp.Regexp) []int {
	var out []int
	for _, line := range lines {
		if m := re.FindStringSubmatch(line); m != nil {
			n, _ := strconv.Atoi(m[1])
			out = append(out, n)
		}
	}
	return out
}

func seq(from, to int) []int {
	var out []int
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

// TestProperty_LineCount checks the total line count for any subdomain count.
func TestProperty_LineCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		appID, subs := drawInput(t)
		n := len(subs)

		lines := Generate(DefaultParams(appID), subs)

		want := 6 + 4*(3+n) + 6*(1+n) + (n + 3) + (n + 1) + 6*(3+n) + 1
		if len(lines) != want {
			t.Fatalf("got %d lines for %d subdomains, want %d", len(lines), n, want)
		}
		if LineCount(n) != want {
			t.Fatalf("LineCount(%d) = %d, want %d", n, LineCount(n), want)
		}
	})
}

// TestProperty_Idempotent checks that identical inputs give identical output.
func TestProperty_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		appID, subs := drawInput(t)

		a := strings.Join(Generate(DefaultParams(appID), subs), "\n")
		b := strings.Join(Generate(DefaultParams(appID), subs), "\n")
		if a != b {
			t.Fatalf("output differs between runs")
		}
	})
}

// TestProperty_CounterRanges checks router and service suffixes are gapless.
func TestProperty_CounterRanges(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		appID, subs := drawInput(t)
		n := len(subs)

		lines := Generate(DefaultParams(appID), subs)

		checks := []struct {
			name string
			re   *regexp.Regexp
			want []int
		}{
			{"http routers", httpRouterRe, seq(0, n+2)},
			{"https routers", httpsRouterRe, seq(2, n+2)},
			{"http services", httpServiceRe, seq(0, n+2)},
			{"https services", httpsServiceRe, seq(2, n+2)},
		}
		for _, c := range checks {
			got := suffixes(lines, c.re)
			if fmt.Sprint(got) != fmt.Sprint(c.want) {
				t.Fatalf("%s: got %v, want %v", c.name, got, c.want)
			}
		}
	})
}

// TestProperty_OrderPreserved checks subdomain blocks follow input order.
func TestProperty_OrderPreserved(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		appID, subs := drawInput(t)
		params := DefaultParams(appID)

		lines := Generate(params, subs)

		for i, sub := range subs {
			want := fmt.Sprintf("caddy_%d=https://%s", i+3, params.SubdomainHost(sub))
			found := false
			for _, line := range lines {
				if line == want {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("missing %q", want)
			}

			rule := fmt.Sprintf("traefik.http.routers.https-%d-%s.rule=Host(`%s`) && PathPrefix(`/`)", i+3, appID, params.SubdomainHost(sub))
			found = false
			for _, line := range lines {
				if line == rule {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("missing %q", rule)
			}
		}
	})
}

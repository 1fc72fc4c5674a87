// Package egress resolves how outbound traffic leaves this machine:
// directly, or through the system-configured HTTP proxy.
package egress

import (
	"log/slog"
	"net/url"
	"strings"

	"golang.org/x/net/http/httpproxy"

	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/model"
)

// Resolve queries the OS proxy configuration and returns the egress path
// for this run. A failed or unparseable query degrades to Direct rather
// than aborting: direct-connectivity results are still informative.
func Resolve() model.EgressPath {
	raw, err := systemProxy()
	if err != nil {
		slog.Warn("system proxy query failed, assuming direct access", "error", err)
		return model.Direct()
	}

	if raw == "" {
		raw = environmentProxy()
	}
	if raw == "" {
		return model.Direct()
	}
	return model.Proxied(Normalize(raw))
}

// Normalize coerces a raw proxy value into a scheme-qualified URL.
// Values that already carry a scheme pass through unchanged.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "://") {
		return raw
	}
	return "http://" + raw
}

// environmentProxy reads the HTTPS_PROXY/HTTP_PROXY variables the way an
// HTTP client would. The probes here are all HTTPS, so the HTTPS value wins.
func environmentProxy() string {
	cfg := httpproxy.FromEnvironment()
	if cfg.HTTPSProxy != "" {
		return cfg.HTTPSProxy
	}
	return cfg.HTTPProxy
}

// ProxyURL parses the resolved proxy address for use by an http.Transport.
func ProxyURL(path model.EgressPath) (*url.URL, error) {
	return url.Parse(path.ProxyURL)
}

package probe

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/model"
)

func testProber(t *testing.T) *Prober {
	t.Helper()
	return New(2*time.Second, 5*time.Second)
}

// localListener opens a listener on an ephemeral port and returns its port.
func localListener(t *testing.T) (net.Listener, string) {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	_, port, _ := net.SplitHostPort(l.Addr().String())
	return l, port
}

func TestProbe_DirectSuccess(t *testing.T) {
	_, port := localListener(t)

	p := testProber(t)
	p.Port = port

	out := p.Probe(context.Background(), "127.0.0.1", model.Direct())
	if !out.Success {
		t.Fatalf("probe of live listener failed: %+v", out)
	}
}

func TestProbe_DirectRefused(t *testing.T) {
	// Grab a port and immediately free it so the dial is refused.
	l, port := localListener(t)
	l.Close()

	p := testProber(t)
	p.Port = port

	out := p.Probe(context.Background(), "127.0.0.1", model.Direct())
	if out.Success {
		t.Fatal("probe of closed port reported success")
	}
	if out.Reason != model.ReasonRefused {
		t.Errorf("reason = %q, want %q", out.Reason, model.ReasonRefused)
	}
	if out.Detail == "" {
		t.Error("failed outcome has empty detail")
	}
}

func TestProbe_DirectDNSFailure(t *testing.T) {
	p := testProber(t)

	out := p.Probe(context.Background(), "host.invalid", model.Direct())
	if out.Success {
		t.Fatal("probe of unresolvable host reported success")
	}
	if out.Reason != model.ReasonDNS {
		t.Errorf("reason = %q, want %q", out.Reason, model.ReasonDNS)
	}
}

func TestProbe_ProxiedStatusCodes(t *testing.T) {
	// A plain HTTP "proxy" that answers absolute-URI requests directly.
	// Downgrading the scheme keeps CONNECT and TLS out of the test.
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.Host, "blocked"):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer proxy.Close()

	p := testProber(t)
	p.scheme = "http"
	path := model.Proxied(proxy.URL)

	t.Run("status 200 succeeds", func(t *testing.T) {
		out := p.Probe(context.Background(), "allowed.example.com", path)
		if !out.Success {
			t.Fatalf("probe through proxy failed: %+v", out)
		}
	})

	t.Run("non-200 fails with code and description", func(t *testing.T) {
		out := p.Probe(context.Background(), "blocked.example.com", path)
		if out.Success {
			t.Fatal("non-200 response reported success")
		}
		if out.Reason != model.ReasonHTTPStatus {
			t.Errorf("reason = %q, want %q", out.Reason, model.ReasonHTTPStatus)
		}
		if out.Detail != "HTTP 403 - Forbidden" {
			t.Errorf("detail = %q, want %q", out.Detail, "HTTP 403 - Forbidden")
		}
	})
}

func TestProbe_ProxiedDeadProxy(t *testing.T) {
	l, port := localListener(t)
	l.Close()

	p := testProber(t)
	path := model.Proxied("http://127.0.0.1:" + port)

	out := p.Probe(context.Background(), "manage.microsoft.com", path)
	if out.Success {
		t.Fatal("probe through dead proxy reported success")
	}
	if out.Reason == model.ReasonNone || out.Detail == "" {
		t.Errorf("dead proxy outcome lacks reason or detail: %+v", out)
	}
}

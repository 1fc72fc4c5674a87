// Package probe tests reachability of one hostname over the resolved
// egress path and classifies failures into the known causes.
package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/egress"
	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/model"
)

// Prober runs single-shot connectivity tests. Each call is independent;
// no state is shared across probes and no retries are attempted.
type Prober struct {
	// DialTimeout bounds the direct TCP handshake.
	DialTimeout time.Duration
	// HTTPTimeout bounds the proxied HTTPS round trip.
	HTTPTimeout time.Duration
	// Port is the TCP port direct probes dial. Always 443 in production;
	// variable so tests can point probes at local listeners.
	Port string

	// scheme of proxied requests, "https" outside of tests.
	scheme string
}

func New(dialTimeout, httpTimeout time.Duration) *Prober {
	return &Prober{
		DialTimeout: dialTimeout,
		HTTPTimeout: httpTimeout,
		Port:        "443",
		scheme:      "https",
	}
}

// Probe tests host over path. Direct egress uses a raw TCP handshake to
// port 443; proxied egress issues an HTTPS GET through the proxy, since a
// raw TCP dial would only ever reach the proxy itself.
func (p *Prober) Probe(ctx context.Context, host string, path model.EgressPath) model.ProbeOutcome {
	if path.IsProxied() {
		return p.probeProxied(ctx, host, path)
	}
	return p.probeDirect(ctx, host)
}

func (p *Prober) probeDirect(ctx context.Context, host string) model.ProbeOutcome {
	dialer := &net.Dialer{Timeout: p.DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, p.Port))
	if err == nil {
		conn.Close()
		return model.Succeeded()
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return model.Failed(model.ReasonDNS, firstSentence(err.Error()))
	}
	// The name resolved; let the rules separate unreachable hosts, refused
	// connections, and timeouts from generic TCP failures.
	return Classify(err, model.ReasonTCPConnect)
}

func (p *Prober) probeProxied(ctx context.Context, host string, path model.EgressPath) model.ProbeOutcome {
	proxyURL, err := egress.ProxyURL(path)
	if err != nil {
		return model.Failed(model.ReasonProxy, firstSentence(err.Error()))
	}

	client := &http.Client{
		Transport: &http.Transport{
			Proxy:             http.ProxyURL(proxyURL),
			DisableKeepAlives: true,
		},
		Timeout: p.HTTPTimeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.scheme+"://"+host, nil)
	if err != nil {
		return model.Failed(model.ReasonUnclassified, firstSentence(err.Error()))
	}

	resp, err := client.Do(req)
	if err != nil {
		return Classify(err, model.ReasonUnclassified)
	}
	defer resp.Body.Close()

	// Status codes are inspected, not treated as transport errors.
	if resp.StatusCode != http.StatusOK {
		detail := fmt.Sprintf("HTTP %d - %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		return model.Failed(model.ReasonHTTPStatus, detail)
	}
	return model.Succeeded()
}

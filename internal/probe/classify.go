package probe

import (
	"errors"
	"net"
	"os"
	"strings"
	"syscall"

	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/model"
)

// classificationRule pairs a predicate with the failure reason it implies.
// Rules are evaluated in order; the first match wins.
type classificationRule struct {
	matches func(err error, msg string) bool
	reason  model.FailureReason
}

var rules = []classificationRule{
	{
		matches: func(err error, msg string) bool {
			var dnsErr *net.DNSError
			return errors.As(err, &dnsErr) ||
				strings.Contains(msg, "no such host") ||
				strings.Contains(msg, "name resolution")
		},
		reason: model.ReasonDNS,
	},
	{
		matches: func(err error, msg string) bool {
			var timeoutErr interface{ Timeout() bool }
			if errors.As(err, &timeoutErr) && timeoutErr.Timeout() {
				return true
			}
			return errors.Is(err, os.ErrDeadlineExceeded) ||
				strings.Contains(msg, "timeout") ||
				strings.Contains(msg, "deadline exceeded")
		},
		reason: model.ReasonTimeout,
	},
	{
		matches: func(err error, msg string) bool {
			return errors.Is(err, syscall.ECONNREFUSED) ||
				strings.Contains(msg, "connection refused")
		},
		reason: model.ReasonRefused,
	},
	{
		matches: func(err error, msg string) bool {
			return errors.Is(err, syscall.ENETUNREACH) ||
				errors.Is(err, syscall.EHOSTUNREACH) ||
				strings.Contains(msg, "network is unreachable") ||
				strings.Contains(msg, "no route to host")
		},
		reason: model.ReasonUnreachable,
	},
	{
		matches: func(err error, msg string) bool {
			return strings.Contains(msg, "proxyconnect") ||
				strings.Contains(msg, "proxy")
		},
		reason: model.ReasonProxy,
	},
	{
		matches: func(err error, msg string) bool {
			return strings.Contains(msg, "tls") ||
				strings.Contains(msg, "certificate") ||
				strings.Contains(msg, "x509")
		},
		reason: model.ReasonTLS,
	},
}

// Classify maps a transport error onto the failure taxonomy. Errors that
// match no rule get the fallback reason with the first sentence of the
// underlying message as detail.
func Classify(err error, fallback model.FailureReason) model.ProbeOutcome {
	msg := strings.ToLower(err.Error())
	for _, rule := range rules {
		if rule.matches(err, msg) {
			return model.Failed(rule.reason, firstSentence(err.Error()))
		}
	}
	if fallback == model.ReasonUnclassified || fallback == "" {
		return model.Failed(model.ReasonUnclassified, firstSentence(err.Error()))
	}
	return model.Failed(fallback, firstSentence(err.Error()))
}

// firstSentence trims an error message to its first sentence so report
// lines stay single-line.
func firstSentence(msg string) string {
	msg = strings.TrimSpace(msg)
	if i := strings.Index(msg, ". "); i > 0 {
		return msg[:i]
	}
	if i := strings.IndexByte(msg, '\n'); i > 0 {
		return strings.TrimSpace(msg[:i])
	}
	return msg
}

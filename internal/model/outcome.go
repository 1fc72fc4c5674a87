package model

// FailureReason buckets a failed probe into one of the known causes.
type FailureReason string

const (
	ReasonNone         FailureReason = ""
	ReasonDNS          FailureReason = "dns_resolution_failed"
	ReasonUnreachable  FailureReason = "host_unreachable"
	ReasonTCPConnect   FailureReason = "tcp_connect_failed"
	ReasonTimeout      FailureReason = "connection_timeout"
	ReasonRefused      FailureReason = "connection_refused"
	ReasonTLS          FailureReason = "tls_certificate_error"
	ReasonProxy        FailureReason = "proxy_error"
	ReasonHTTPStatus   FailureReason = "http_status"
	ReasonUnclassified FailureReason = "unclassified"
)

// ProbeOutcome is the result of testing one URL. Detail carries the
// human-readable specifics ("HTTP 403 - Forbidden", or the first sentence
// of an unclassified transport error).
type ProbeOutcome struct {
	Success bool          `json:"success"`
	Reason  FailureReason `json:"failure_reason,omitempty"`
	Detail  string        `json:"detail,omitempty"`
}

func Succeeded() ProbeOutcome {
	return ProbeOutcome{Success: true}
}

func Failed(reason FailureReason, detail string) ProbeOutcome {
	return ProbeOutcome{Success: false, Reason: reason, Detail: detail}
}

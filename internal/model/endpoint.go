package model

// EgressKind tells which transport path outbound traffic takes.
type EgressKind string

const (
	EgressDirect  EgressKind = "direct"
	EgressProxied EgressKind = "proxied"
)

// EgressPath is the resolved outbound route for this run.
// ProxyURL is set only for EgressProxied and is always scheme-qualified
// (bare host:port values are coerced to http://host:port during resolution).
type EgressPath struct {
	Kind     EgressKind `json:"kind"`
	ProxyURL string     `json:"proxy_url,omitempty"`
}

func Direct() EgressPath {
	return EgressPath{Kind: EgressDirect}
}

func Proxied(proxyURL string) EgressPath {
	return EgressPath{Kind: EgressProxied, ProxyURL: proxyURL}
}

func (e EgressPath) IsProxied() bool { return e.Kind == EgressProxied }

// EndpointGroup is one functional category of required network destinations,
// as returned by the endpoint metadata service. URLs are bare hostnames:
// wildcard prefixes stripped, deduplicated, in stable lexicographic order.
// A group that survives filtering always has at least one URL.
type EndpointGroup struct {
	ID       int      `json:"id"`
	Category string   `json:"category"`
	URLs     []string `json:"urls"`
}

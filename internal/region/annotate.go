// Package region derives the optional regional qualifier shown next to
// endpoints whose hostnames encode a deployment region.
package region

import "strings"

const (
	AsiaPacific  = "Asia & Pacific"
	Europe       = "Europe"
	NorthAmerica = "North America"
	Worldwide    = "Worldwide"
)

const (
	scriptsGroupID     = 170
	attestationGroupID = 178
)

// scriptsPrefixes maps hostname prefixes of the Scripts & Win32 Apps
// content-delivery hosts to their region.
var scriptsPrefixes = []struct {
	prefix string
	region string
}{
	{"approd", AsiaPacific},
	{"euprod", Europe},
	{"naprod", NorthAmerica},
}

// attestationSuffixes maps attestation-service domain suffixes to their
// region. Attestation hosts that match none get the worldwide default.
var attestationSuffixes = []struct {
	suffix string
	region string
}{
	{".eus.attest.azure.net", NorthAmerica},
	{".eus2.attest.azure.net", NorthAmerica},
	{".wus.attest.azure.net", NorthAmerica},
	{".neu.attest.azure.net", Europe},
	{".weu.attest.azure.net", Europe},
	{".jpe.attest.azure.net", AsiaPacific},
	{".sea.attest.azure.net", AsiaPacific},
}

// Annotate returns the regional qualifier for url within the given endpoint
// group, if one applies. Pure and total: unmatched combinations return
// ok=false.
func Annotate(groupID int, url string) (string, bool) {
	switch groupID {
	case scriptsGroupID:
		for _, p := range scriptsPrefixes {
			if strings.HasPrefix(url, p.prefix) {
				return p.region, true
			}
		}
	case attestationGroupID:
		for _, s := range attestationSuffixes {
			if strings.HasSuffix(url, s.suffix) {
				return s.region, true
			}
		}
		if strings.HasSuffix(url, ".attest.azure.net") {
			return Worldwide, true
		}
	}
	return "", false
}

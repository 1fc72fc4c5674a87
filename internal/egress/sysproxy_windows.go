package egress

import (
	"os/exec"
	"strings"
)

// systemProxy reads the effective WinHTTP proxy. Output looks like either
//
//	Current WinHTTP proxy settings:
//	    Direct access (no proxy server).
//
// or
//
//	Current WinHTTP proxy settings:
//	    Proxy Server(s) :  10.0.0.1:8080
//	    Bypass List     :  (none)
func systemProxy() (string, error) {
	out, err := exec.Command("netsh", "winhttp", "show", "proxy").Output()
	if err != nil {
		return "", err
	}

	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if strings.Contains(line, "Direct access") {
			return "", nil
		}
		if strings.HasPrefix(line, "Proxy Server(s)") {
			if _, value, ok := strings.Cut(line, ":"); ok {
				return strings.TrimSpace(value), nil
			}
		}
	}
	return "", nil
}

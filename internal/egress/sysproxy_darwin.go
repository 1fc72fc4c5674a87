package egress

import (
	"net"
	"os/exec"
	"strings"
)

// systemProxy reads the macOS proxy configuration via scutil. The output is
// a flat key/value dump; HTTPS settings are preferred over plain HTTP since
// every probe target speaks HTTPS.
func systemProxy() (string, error) {
	out, err := exec.Command("scutil", "--proxies").Output()
	if err != nil {
		return "", err
	}

	values := map[string]string{}
	for _, line := range strings.Split(string(out), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	for _, prefix := range []string{"HTTPS", "HTTP"} {
		if values[prefix+"Enable"] != "1" {
			continue
		}
		host := values[prefix+"Proxy"]
		if host == "" {
			continue
		}
		if port := values[prefix+"Port"]; port != "" {
			return net.JoinHostPort(host, port), nil
		}
		return host, nil
	}
	return "", nil
}

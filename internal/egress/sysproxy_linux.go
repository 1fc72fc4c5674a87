package egress

import (
	"os/exec"
	"strings"
)

// systemProxy reads the GNOME proxy configuration where available. Headless
// hosts without gsettings fall through to the proxy environment variables.
func systemProxy() (string, error) {
	mode, err := gsetting("org.gnome.system.proxy", "mode")
	if err != nil || mode != "manual" {
		// "none" and "auto" both mean no explicit proxy server to read.
		return "", nil
	}

	host, err := gsetting("org.gnome.system.proxy.http", "host")
	if err != nil || host == "" {
		return "", nil
	}
	port, err := gsetting("org.gnome.system.proxy.http", "port")
	if err != nil || port == "" || port == "0" {
		return host, nil
	}
	return host + ":" + port, nil
}

func gsetting(schema, key string) (string, error) {
	out, err := exec.Command("gsettings", "get", schema, key).Output()
	if err != nil {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(string(out)), "'"), nil
}

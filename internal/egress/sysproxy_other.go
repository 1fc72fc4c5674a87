//go:build !windows && !darwin && !linux

package egress

// systemProxy has no OS-level source on this platform; the environment
// variables are the only signal.
func systemProxy() (string, error) {
	return "", nil
}

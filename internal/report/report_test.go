package report

import (
	"strings"
	"testing"

	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/model"
	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/runner"
)

func render(t *testing.T, run *runner.Run) string {
	t.Helper()
	var sb strings.Builder
	NewPrinter(&sb, nil).Print(run)
	return sb.String()
}

func TestPrint_AllReachable(t *testing.T) {
	out := render(t, &runner.Run{
		Egress: model.Direct(),
		Groups: []runner.GroupResult{{
			Group: model.EndpointGroup{ID: 163, Category: "Intune client and host services", URLs: []string{"manage.microsoft.com"}},
			Results: []runner.URLResult{
				{URL: "manage.microsoft.com", Outcome: model.Succeeded()},
			},
		}},
	})

	for _, want := range []string{
		"Egress: direct",
		"[163] Intune client and host services",
		"OK",
		"manage.microsoft.com",
		"All required endpoints are reachable.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Remediation") {
		t.Error("clean run printed remediation guidance")
	}
}

func TestPrint_FailuresShowReasonAndRemediation(t *testing.T) {
	out := render(t, &runner.Run{
		Egress:      model.Proxied("http://10.0.0.1:8080"),
		AnyFailures: true,
		Groups: []runner.GroupResult{{
			Group: model.EndpointGroup{ID: 170, Category: "Scripts & Win32 Apps", URLs: []string{"approdlocal.com"}},
			Results: []runner.URLResult{
				{URL: "approdlocal.com", Outcome: model.Failed(model.ReasonHTTPStatus, "HTTP 403 - Forbidden")},
			},
		}},
	})

	for _, want := range []string{
		"Egress: via proxy http://10.0.0.1:8080",
		"FAIL",
		"approdlocal.com",
		"HTTP 403 - Forbidden",
		"Asia & Pacific",
		"Remediation",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestPrint_EmptyCatalog(t *testing.T) {
	out := render(t, &runner.Run{Egress: model.Direct()})
	if !strings.Contains(out, "No endpoints to test") {
		t.Errorf("empty-catalog report missing notice:\n%s", out)
	}
}

// Package report renders a finished run as a colorized console report:
// per-category headers, per-URL pass/fail lines with regional and country
// annotations, and a closing summary or remediation block.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/geoip"
	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/region"
	"github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/runner"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

// Printer writes the report. GeoDB may be nil; country annotations are
// then omitted.
type Printer struct {
	Out   io.Writer
	GeoDB *geoip.Database
}

func NewPrinter(out io.Writer, geoDB *geoip.Database) *Printer {
	return &Printer{Out: out, GeoDB: geoDB}
}

// Print renders the whole run.
func (p *Printer) Print(run *runner.Run) {
	if run.Egress.IsProxied() {
		fmt.Fprintf(p.Out, "Egress: via proxy %s\n\n", run.Egress.ProxyURL)
	} else {
		fmt.Fprintf(p.Out, "Egress: direct\n\n")
	}

	if len(run.Groups) == 0 {
		fmt.Fprintln(p.Out, summaryStyle.Render("No endpoints to test for this service area."))
		return
	}

	for _, g := range run.Groups {
		fmt.Fprintln(p.Out, headerStyle.Render(fmt.Sprintf("[%d] %s", g.Group.ID, g.Group.Category)))
		for _, res := range g.Results {
			fmt.Fprintln(p.Out, p.urlLine(g.Group.ID, res))
		}
		fmt.Fprintln(p.Out)
	}

	p.printSummary(run)
}

func (p *Printer) urlLine(groupID int, res runner.URLResult) string {
	var b strings.Builder

	if res.Outcome.Success {
		b.WriteString(okStyle.Render("  OK   "))
	} else {
		b.WriteString(failStyle.Render("  FAIL "))
	}
	b.WriteString(res.URL)

	var notes []string
	if annotation, ok := region.Annotate(groupID, res.URL); ok {
		notes = append(notes, annotation)
	}
	if country := p.GeoDB.CountryForHost(res.URL); country != "" {
		notes = append(notes, country)
	}
	if len(notes) > 0 {
		b.WriteString(dimStyle.Render(" (" + strings.Join(notes, ", ") + ")"))
	}

	if !res.Outcome.Success {
		detail := string(res.Outcome.Reason)
		if res.Outcome.Detail != "" {
			detail = res.Outcome.Detail
		}
		b.WriteString(failStyle.Render(" - " + detail))
	}
	return b.String()
}

func (p *Printer) printSummary(run *runner.Run) {
	if !run.AnyFailures {
		fmt.Fprintln(p.Out, summaryStyle.Render("All required endpoints are reachable."))
		return
	}

	fmt.Fprintln(p.Out, summaryStyle.Render("Some required endpoints are not reachable."))
	fmt.Fprintln(p.Out, `
Remediation:
  - Allow the failed hostnames (and their wildcard parents) through your
    firewall or proxy for TCP 443.
  - If a proxy is in use, exempt these hostnames from TLS inspection and
    authentication requirements.
  - Re-run this tool after each change until every endpoint reports OK.`)
}

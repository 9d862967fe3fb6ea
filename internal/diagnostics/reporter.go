package diagnostics

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/dimensionhq/fleet/internal/toolchain"
)

// Header is printed before the checklist on every failed build.
const Header = "Build failed. Checking your toolchain setup..."

// Reporter prints remediation hints for unmet toolchain requirements.
type Reporter struct {
	prober *toolchain.Prober
	out    io.Writer

	marker lipgloss.Style
	name   lipgloss.Style
	remedy lipgloss.Style
}

// NewReporter creates a reporter that probes through prober and writes to out.
func NewReporter(prober *toolchain.Prober, out io.Writer) *Reporter {
	r := lipgloss.NewRenderer(out)
	return &Reporter{
		prober: prober,
		out:    out,
		marker: r.NewStyle().Foreground(lipgloss.Color("3")),
		name:   r.NewStyle().Foreground(lipgloss.Color("5")),
		remedy: r.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// Report probes the environment afresh, prints the header and one line per
// unmet requirement in checklist order, and returns those requirements.
func (r *Reporter) Report() ([]toolchain.Requirement, error) {
	facts := r.prober.Probe()
	unmet := toolchain.Unmet(facts)

	if _, err := fmt.Fprintf(r.out, "%s %s\n", r.marker.Render("=>"), Header); err != nil {
		return unmet, err
	}
	for _, req := range unmet {
		if _, err := fmt.Fprintln(r.out, r.Hint(req)); err != nil {
			return unmet, err
		}
	}
	return unmet, nil
}

// Hint renders the remediation line for req.
func (r *Reporter) Hint(req toolchain.Requirement) string {
	problem := fmt.Sprintf(req.Problem, r.name.Render("`"+req.Name+"`"))
	return fmt.Sprintf("%s %s. Run %s.",
		r.marker.Render("=>"), problem, r.remedy.Render("`"+req.Remedy+"`"))
}

// Package render draws a generated report in the terminal. Static output
// only; there is no interactive mode.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/salesops/pulse/internal/report"
)

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorGreen   = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			MarginTop(1).
			PaddingLeft(1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	kpiLabelStyle = lipgloss.NewStyle().Foreground(colorDim)
	kpiValueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	scoreStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	tagStyle      = lipgloss.NewStyle().Foreground(colorAccent)
	dimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// Render returns the terminal view of a report.
func Render(r *report.Report) string {
	var b strings.Builder

	header := fmt.Sprintf("CEO Pulse — %s — %s", r.Timeframe, r.GeneratedAt.Format("Jan 2, 2006"))
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("KPIs"))
	b.WriteString("\n")
	b.WriteString(paneStyle.Render(kpiPane(r)))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Top Signals (%d)", len(r.Signals))))
	b.WriteString("\n")
	b.WriteString(paneStyle.Render(signalPane(r)))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Open Pipeline"))
	b.WriteString("\n")
	b.WriteString(paneStyle.Render(crmPane(r)))
	b.WriteString("\n")

	return b.String()
}

func kpiPane(r *report.Report) string {
	if len(r.KPIs) == 0 {
		return dimStyle.Render("no KPIs")
	}
	lines := make([]string, 0, len(r.KPIs))
	for _, k := range r.KPIs {
		lines = append(lines, fmt.Sprintf("%s %s",
			kpiLabelStyle.Render(fmt.Sprintf("%-24s", k.Label)),
			kpiValueStyle.Render(formatValue(k.Value))))
	}
	return strings.Join(lines, "\n")
}

func signalPane(r *report.Report) string {
	if len(r.Signals) == 0 {
		return dimStyle.Render("no signals this window")
	}
	lines := make([]string, 0, len(r.Signals))
	for i, s := range r.Signals {
		lines = append(lines, fmt.Sprintf("%2d. %s %s %s %s",
			i+1,
			scoreStyle.Render(fmt.Sprintf("%.2f", s.Score)),
			s.Title,
			tagStyle.Render("["+strings.Join(s.Tags, " ")+"]"),
			dimStyle.Render(s.Source)))
	}
	return strings.Join(lines, "\n")
}

func crmPane(r *report.Report) string {
	if len(r.CRM) == 0 {
		return dimStyle.Render("no open deals")
	}
	lines := make([]string, 0, len(r.CRM))
	for _, row := range r.CRM {
		lines = append(lines, fmt.Sprintf("%-28s %-22s %12s %5dd  %s",
			row.Deal, row.Stage, formatValue(row.Amount), row.AgeDays,
			dimStyle.Render(row.Owner)))
	}
	return strings.Join(lines, "\n")
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"datacheck/internal/corpus"
)

const bannerWidth = 70

// Printed warnings are capped per check; the full list stays in the result.
const maxPrintedWarnings = 10

// Styles holds the lipgloss styles used by the renderer.
type Styles struct {
	Title lipgloss.Style
	Pass  lipgloss.Style
	Fail  lipgloss.Style
	Warn  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style
}

// DefaultStyles returns the standard report palette.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true),
		Pass:  lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		Fail:  lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")),
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107")),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		Bold:  lipgloss.NewStyle().Bold(true),
	}
}

// Renderer writes human-readable reports. The full report is always
// printed regardless of verdict; scripting consumers read the exit code.
type Renderer struct {
	Out    io.Writer
	Styles Styles
}

// NewRenderer returns a renderer targeting out with the default styles.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{Out: out, Styles: DefaultStyles()}
}

// Domain prints the per-domain report: example and split counts, then each
// check with its stats, errors, and warnings, then the domain verdict.
func (r *Renderer) Domain(report *DomainReport) {
	rule := r.Styles.Muted.Render(strings.Repeat("=", bannerWidth))
	banner := fmt.Sprintf("Domain: %s", report.Domain)
	pad := (bannerWidth - len(banner)) / 2
	if pad < 0 {
		pad = 0
	}

	fmt.Fprintln(r.Out)
	fmt.Fprintln(r.Out, rule)
	fmt.Fprintln(r.Out, strings.Repeat(" ", pad)+r.Styles.Title.Render(banner))
	fmt.Fprintln(r.Out, rule)

	fmt.Fprintf(r.Out, "\n  Total examples : %d\n", report.ExampleCount)
	for _, split := range corpus.SplitNames {
		if count, ok := report.SplitCounts[split]; ok {
			fmt.Fprintf(r.Out, "    %-12s : %d\n", split, count)
		}
	}

	for _, check := range report.Checks {
		marker := r.Styles.Pass.Render("[+]")
		status := r.Styles.Pass.Render("PASS")
		if !check.Passed {
			marker = r.Styles.Fail.Render("[X]")
			status = r.Styles.Fail.Render("FAIL")
		}
		fmt.Fprintf(r.Out, "\n  %s %s: %s\n", marker, r.Styles.Bold.Render(check.Name), status)

		statKeys := make([]string, 0, len(check.Stats))
		for k := range check.Stats {
			statKeys = append(statKeys, k)
		}
		sort.Strings(statKeys)
		for _, k := range statKeys {
			fmt.Fprintf(r.Out, "      %s\n", r.Styles.Muted.Render(fmt.Sprintf("%s: %v", k, check.Stats[k])))
		}

		for _, err := range check.Errors {
			fmt.Fprintf(r.Out, "      %s %s\n", r.Styles.Fail.Render("ERROR:"), err)
		}
		warnings := check.Warnings
		if len(warnings) > maxPrintedWarnings {
			warnings = warnings[:maxPrintedWarnings]
		}
		for _, warn := range warnings {
			fmt.Fprintf(r.Out, "      %s  %s\n", r.Styles.Warn.Render("WARN:"), warn)
		}
	}

	verdict := r.Styles.Pass.Render("PASS")
	if !report.Passed() {
		verdict = r.Styles.Fail.Render("FAIL")
	}
	fmt.Fprintf(r.Out, "\n  %s\n", r.Styles.Muted.Render(strings.Repeat("=", 30)))
	fmt.Fprintf(r.Out, "  Overall verdict: %s\n", verdict)
	fmt.Fprintf(r.Out, "  %s\n\n", r.Styles.Muted.Render(strings.Repeat("=", 30)))
}

// Summary prints the cross-domain table: one row per domain with example
// count and verdict, then the final process verdict.
func (r *Renderer) Summary(runID string, reports []*DomainReport) {
	rule := r.Styles.Muted.Render(strings.Repeat("=", bannerWidth))
	fmt.Fprintln(r.Out)
	fmt.Fprintln(r.Out, rule)
	fmt.Fprintln(r.Out, strings.Repeat(" ", bannerWidth/2-8)+r.Styles.Title.Render("OVERALL SUMMARY"))
	fmt.Fprintln(r.Out, rule)
	if runID != "" {
		fmt.Fprintf(r.Out, "  %s\n", r.Styles.Muted.Render("run "+runID))
	}

	headers := []string{"Domain", "Examples", "Verdict"}
	rows := make([][]string, 0, len(reports))
	for _, report := range reports {
		verdict := "PASS"
		if !report.Passed() {
			verdict = "FAIL"
		}
		rows = append(rows, []string{report.Domain, fmt.Sprintf("%d", report.ExampleCount), verdict})
	}
	r.table(headers, rows)

	final := r.Styles.Pass.Render("PASS")
	if !AllPassed(reports) {
		final = r.Styles.Fail.Render("FAIL")
	}
	fmt.Fprintf(r.Out, "\n  Final verdict: %s\n\n", final)
}

// table renders a fixed-width table, computing column widths from content.
func (r *Renderer) table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("  ")
	for i, h := range headers {
		sb.WriteString(r.Styles.Bold.Render(fmt.Sprintf("%-*s", widths[i]+2, h)))
	}
	fmt.Fprintln(r.Out, sb.String())

	total := 2
	for _, w := range widths {
		total += w + 2
	}
	fmt.Fprintln(r.Out, "  "+r.Styles.Muted.Render(strings.Repeat("-", total-2)))

	for _, row := range rows {
		sb.Reset()
		sb.WriteString("  ")
		for i, cell := range row {
			rendered := fmt.Sprintf("%-*s", widths[i]+2, cell)
			if headers[i] == "Verdict" {
				if cell == "PASS" {
					rendered = r.Styles.Pass.Render(rendered)
				} else {
					rendered = r.Styles.Fail.Render(rendered)
				}
			}
			sb.WriteString(rendered)
		}
		fmt.Fprintln(r.Out, sb.String())
	}
}

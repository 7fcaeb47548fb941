package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"adspend/internal/model"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	verdictStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	neutralStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows. A single-cell
// "---" row renders as a horizontal separator.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		if len(h) > widths[i] {
			widths[i] = len(h)
		}
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align numeric columns (all except first)
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", widths[i], cell)
			} else {
				padded = fmt.Sprintf(" %*s ", widths[i], cell)
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")

	return b.String()
}

// RenderShareBar renders a horizontal bar sized by value/maxValue.
func RenderShareBar(value, maxValue float64, maxWidth int) string {
	if maxValue <= 0 {
		return ""
	}
	barLen := int(value / maxValue * float64(maxWidth))
	if barLen < 0 {
		barLen = 0
	}
	if barLen > maxWidth {
		barLen = maxWidth
	}
	return strings.Repeat("█", barLen)
}

// Verdict returns the significance verdict line for a test result.
// Direction comes from the sign of the statistic: positive means the
// first campaign's historical mean is higher.
func Verdict(r model.Report) string {
	if !r.Test.Significant {
		return "No statistically significant difference between campaigns"
	}

	better := r.Allocation.Campaigns[0].Name
	if r.Test.TStat < 0 && len(r.Allocation.Campaigns) > 1 {
		better = r.Allocation.Campaigns[1].Name
	}
	return fmt.Sprintf("Statistically significant difference, %s likely performs better", better)
}

// RenderReport renders the full allocation report block shared by the
// text adapters.
func RenderReport(r model.Report) string {
	var b strings.Builder

	b.WriteString(RenderTitle("BUDGET ALLOCATION"))
	b.WriteString("\n\n")

	rows := [][]string{
		{"Total Budget", FormatCurrency(r.Allocation.Budget), ""},
		{"---"},
	}
	for _, c := range r.Allocation.Campaigns {
		share := ""
		if r.Allocation.Budget > 0 {
			share = RenderShareBar(c.Spend, r.Allocation.Budget, 20) + " " + FormatPercent(c.Spend/r.Allocation.Budget)
		}
		rows = append(rows, []string{c.Name, FormatCurrency(c.Spend), share})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Max Projected Return", FormatCurrency(r.Allocation.CombinedReturn), ""})

	b.WriteString(RenderTable(Table{
		Headers: []string{"", "Amount", "Share"},
		Rows:    rows,
	}))

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(headerStyle.Render("A/B Test"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  t-statistic: %s\n", FormatStat(r.Test.TStat)))
	b.WriteString(fmt.Sprintf("  p-value:     %s\n", FormatPValue(r.Test.PValue)))
	if r.Test.Significant {
		b.WriteString("  " + verdictStyle.Render(Verdict(r)) + "\n")
	} else {
		b.WriteString("  " + neutralStyle.Render(Verdict(r)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%d-Month Revenue Forecast (%s)", r.ForecastMonths, r.ForecastCampaign)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s\n", FormatCurrency(r.ForecastRevenue)))

	return b.String()
}

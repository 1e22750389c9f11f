package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Dan9191/fintrack/internal/projection"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

var (
	colorBorder = lipgloss.Color("#282726")
	colorText   = lipgloss.Color("#FFFCF0")
	colorMuted  = lipgloss.Color("#6F6E69")
	colorAccent = lipgloss.Color("#3AA99F")
	colorGreen  = lipgloss.Color("#879A39")
	colorOrange = lipgloss.Color("#DA702C")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	labelStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	moneyStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	warnStyle   = lipgloss.NewStyle().Foreground(colorOrange)
)

// FormatMoney rounds to cents and adds thousands separators.
// e.g., 45444 -> "45,444.00"
func FormatMoney(v float64) string {
	v = math.Round(v*100) / 100
	whole := math.Trunc(v)
	cents := int64(math.Round(math.Abs(v-whole) * 100))
	sign := ""
	if v < 0 && whole == 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%s.%02d", sign, humanize.Comma(int64(whole)), cents)
}

// FormatPercent formats a percentage value, e.g. 11 -> "11%", 8.25 -> "8.25%".
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

// RenderTitle renders a title in a rounded box.
func RenderTitle(title string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Render(titleStyle.Render(title))
}

type row struct {
	label string
	value string
}

func renderRows(title string, rows []row) string {
	width := 0
	for _, r := range rows {
		if len(r.label) > width {
			width = len(r.label)
		}
	}
	var b strings.Builder
	b.WriteString("  " + headerStyle.Render(title) + "\n")
	for _, r := range rows {
		b.WriteString("    " + labelStyle.Render(fmt.Sprintf("%-*s", width, r.label)) + "  " + r.value + "\n")
	}
	return b.String()
}

// RenderMetrics renders the insight metrics for the terminal.
func RenderMetrics(m projection.InsightMetrics, a projection.Assumptions) string {
	money := func(v float64) string { return moneyStyle.Render(FormatMoney(v)) }

	debt := "no unpaid bills"
	if m.ExpectedDebtReductionTimelineMonths > 0 {
		debt = english.Plural(m.ExpectedDebtReductionTimelineMonths, "month", "months")
	}

	savings := money(m.MonthlySavingsPotential)
	if m.MonthlySavingsPotential == 0 {
		savings = warnStyle.Render(FormatMoney(0) + " (expenses exceed income)")
	}

	var b strings.Builder
	b.WriteString(RenderTitle("Financial Insights") + "\n\n")
	b.WriteString(renderRows("Assumptions", []row{
		{"Expected return", FormatPercent(a.ExpectedReturn)},
		{"Inflation", FormatPercent(a.Inflation)},
		{"Expense growth", FormatPercent(a.ExpenseGrowth)},
	}))
	b.WriteString("\n")
	b.WriteString(renderRows("Cash flow", []row{
		{"Monthly income", money(m.MonthlyIncome)},
		{"Monthly expenses", money(m.MonthlyExpenses)},
		{"Savings potential", savings},
		{"Debt reduction", debt},
	}))
	b.WriteString("\n")
	b.WriteString(renderRows("Portfolio", []row{
		{"Invested assets", money(m.TotalInvestedAssets)},
		{"Equity-like", money(m.RiskExposureSummary.EquityLikeAssets)},
		{"Stable", money(m.RiskExposureSummary.StableAssets)},
	}))
	b.WriteString("\n")
	b.WriteString(renderRows("Projected net worth", []row{
		{"1 year", money(m.ProjectedNetWorth.One)},
		{"5 years", money(m.ProjectedNetWorth.Five)},
		{"10 years", money(m.ProjectedNetWorth.Ten)},
		{"10-year SIP corpus", money(m.SIPCorpusExample)},
	}))
	return b.String()
}

// RenderProjection renders a SIP projection table.
func RenderProjection(title string, points []projection.ProjectionPoint) string {
	rows := make([]row, 0, len(points))
	for _, p := range points {
		rows = append(rows, row{
			label: english.Plural(p.Years, "year", "years"),
			value: fmt.Sprintf("%s invested, %s value, %s gain",
				FormatMoney(p.Invested), moneyStyle.Render(FormatMoney(p.FutureValue)), FormatMoney(p.Gain)),
		})
	}
	return renderRows(title, rows)
}

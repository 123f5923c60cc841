// Package report builds the exportable plan summary. The report is
// plain markdown so it can be written to a file or rendered in the
// terminal with glamour.
package report

import (
	"fmt"
	"strings"

	"horizon/internal/cli"
	"horizon/internal/model"

	"github.com/charmbracelet/glamour"
)

// Markdown builds the financial horizon report for one evaluated plan.
func Markdown(p model.Profile, plan model.Plan, currency string) string {
	var b strings.Builder

	b.WriteString("# Financial Horizon Report\n\n")
	b.WriteString(fmt.Sprintf("Client age %d, retiring at %d. Annual income %s, %d dependent(s).\n\n",
		p.Age, p.RetirementAge,
		cli.FormatMoney(p.AnnualIncome, currency), p.Dependents))
	b.WriteString(fmt.Sprintf("Assumes %s inflation and %s investment return.\n\n",
		cli.FormatRate(p.InflationRate), cli.FormatRate(p.InvestmentReturn)))

	b.WriteString("## 1. Insurance Analysis\n\n")
	if p.Dependents == 0 {
		b.WriteString("No dependents rely on this income, so no income-replacement coverage is needed.\n\n")
	} else {
		b.WriteString(fmt.Sprintf(
			"To replace income for %d dependent(s) and clear outstanding debts, coverage of approximately **%s** is needed.\n\n",
			p.Dependents, cli.FormatMoney(plan.InsuranceCoverage, currency)))
		b.WriteString(fmt.Sprintf(
			"| Component | Amount |\n|---|---|\n| Gross income replacement | %s |\n| Debt | %s |\n| Existing savings | -%s |\n| Net coverage needed | %s |\n\n",
			cli.FormatMoney(plan.GrossInsuranceNeed, currency),
			cli.FormatMoney(p.Debt, currency),
			cli.FormatMoney(p.Savings, currency),
			cli.FormatMoney(plan.InsuranceCoverage, currency)))
	}

	b.WriteString("## 2. Retirement Forecast\n\n")
	b.WriteString(fmt.Sprintf(
		"Adjusting for inflation over %d years, the target nest egg is **%s** (annual spending of %s at retirement).\n\n",
		plan.YearsToRetirement,
		cli.FormatMoney(plan.RetirementCorpus, currency),
		cli.FormatMoney(plan.FutureAnnualNeed, currency)))
	b.WriteString(fmt.Sprintf(
		"Reaching it from %s of current savings requires monthly savings of **%s**.\n\n",
		cli.FormatMoney(p.Savings, currency),
		cli.FormatMoney(plan.MonthlySavings, currency)))

	b.WriteString("## 3. Risk Profile\n\n")
	b.WriteString(fmt.Sprintf("Assessment: **%s**\n", plan.Risk.Label()))

	return b.String()
}

// RenderTerminal renders markdown for terminal display using the given
// glamour style ("auto", "dark", "light", "notty").
func RenderTerminal(markdown, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(width),
	}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	return r.Render(markdown)
}

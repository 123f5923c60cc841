package cmd

import (
	"fmt"

	"horizon/internal/cli"
	"horizon/internal/store"

	"github.com/spf13/cobra"
)

var flagSave bool

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute the financial plan from flags",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().BoolVar(&flagSave, "save", false, "Save the computed plan to history")
	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, _ []string) error {
	profile, plan, _, currency, err := evaluateFlags()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("FINANCIAL HORIZON"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Plan",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Insurance coverage needed", cli.FormatMoney(plan.InsuranceCoverage, currency)},
			{"Retirement corpus target", cli.FormatMoney(plan.RetirementCorpus, currency)},
			{"Required monthly savings", cli.FormatMoney(plan.MonthlySavings, currency)},
			{"Risk profile", plan.Risk.Label()},
		},
	}))

	if profile.Dependents > 0 {
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Insurance Breakdown",
			Headers: []string{"Component", "Amount"},
			Rows: [][]string{
				{"Gross income replacement", cli.FormatMoney(plan.GrossInsuranceNeed, currency)},
				{"Debt", cli.FormatMoney(profile.Debt, currency)},
				{"Existing savings", "-" + cli.FormatMoney(profile.Savings, currency)},
				{"---"},
				{"Net coverage needed", cli.FormatMoney(plan.InsuranceCoverage, currency)},
			},
		}))
	}

	fmt.Printf("  Spending at retirement: %s/yr after %d years of %s inflation\n",
		cli.FormatMoney(plan.FutureAnnualNeed, currency),
		plan.YearsToRetirement,
		cli.FormatRate(profile.InflationRate))
	fmt.Printf("  Saved so far  %s  %s of %s\n\n",
		cli.RenderHorizontalBar(profile.Savings, plan.RetirementCorpus, 30),
		cli.FormatCompactMoney(profile.Savings, currency),
		cli.FormatCompactMoney(plan.RetirementCorpus, currency))

	if flagSave {
		st, err := store.Open(historyPath())
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.SavePlan(profile, plan, currency)
		if err != nil {
			return err
		}
		fmt.Printf("  Saved as plan #%d\n\n", id)
	}

	return nil
}

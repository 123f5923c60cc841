package cmd

import (
	"fmt"

	"horizon/internal/cli"
	"horizon/internal/config"
	"horizon/internal/store"

	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved plans",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 0, "Number of plans to show (default from config)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	limit := flagHistoryLimit
	if limit <= 0 {
		limit = cfg.General.HistoryLimit
	}

	st, err := store.Open(historyPath())
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := st.ListPlans(limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("\n  No saved plans yet. Run `horizon plan --save` or save from the TUI.")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			fmt.Sprintf("#%d", e.ID),
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d-%d", e.Profile.Age, e.Profile.RetirementAge),
			cli.FormatCompactMoney(e.Plan.InsuranceCoverage, e.Currency),
			cli.FormatCompactMoney(e.Plan.RetirementCorpus, e.Currency),
			cli.FormatMoney(e.Plan.MonthlySavings, e.Currency),
			e.Plan.Risk.String(),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Saved Plans",
		Headers: []string{"Plan", "Date", "Ages", "Insurance", "Corpus", "Monthly", "Risk"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

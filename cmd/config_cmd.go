// Package cmd implements the horizon CLI commands.
package cmd

import (
	"fmt"

	"horizon/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency:      %s\n", config.Currency(cfg))
	fmt.Printf("    History limit: %d\n", cfg.General.HistoryLimit)
	fmt.Println()

	fmt.Println("  [Assumptions]")
	fmt.Printf("    Safe withdrawal rate:     %.2f%%\n", cfg.Assumptions.SafeWithdrawalRate*100)
	fmt.Printf("    Income replacement ratio: %.0f%%\n", cfg.Assumptions.IncomeReplacementRatio*100)
	fmt.Printf("    Insurance discount rate:  %.2f%%\n", cfg.Assumptions.InsuranceDiscountRate*100)
	fmt.Printf("    Insurance support years:  %d\n", cfg.Assumptions.InsuranceSupportYears)
	fmt.Println()

	fmt.Println("  [Risk]")
	fmt.Printf("    Horizon thresholds: >%dy long, >%dy medium\n",
		cfg.Risk.LongHorizonYears, cfg.Risk.MediumHorizonYears)
	fmt.Printf("    Debt ratios:        <%.1f low, <%.1f high\n",
		cfg.Risk.LowDebtRatio, cfg.Risk.HighDebtRatio)
	fmt.Printf("    Many dependents:    %d\n", cfg.Risk.ManyDependents)
	fmt.Printf("    Score thresholds:   high >= %d, medium >= %d\n",
		cfg.Risk.HighMinScore, cfg.Risk.MediumMinScore)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `horizon setup` to reconfigure.")
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"horizon/internal/report"

	"github.com/spf13/cobra"
)

var flagReportOut string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the plan report, or write it to a markdown file",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&flagReportOut, "out", "o", "", "Write the markdown report to a file instead of rendering it")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	profile, plan, cfg, currency, err := evaluateFlags()
	if err != nil {
		return err
	}

	md := report.Markdown(profile, plan, currency)

	if flagReportOut != "" {
		if err := os.WriteFile(flagReportOut, []byte(md), 0o600); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("  Report written to %s\n", flagReportOut)
		return nil
	}

	out, err := report.RenderTerminal(md, cfg.Appearance.Theme, 100)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

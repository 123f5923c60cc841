package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"horizon/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to horizon!")
	fmt.Println()

	// 1. Currency
	fmt.Println("  1. Display currency")
	fmt.Printf("     ISO code, e.g. USD or EUR. Current: %s\n", cfg.General.Currency)
	fmt.Print("     > ")
	currency, _ := reader.ReadString('\n')
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency != "" {
		cfg.General.Currency = currency
	}
	fmt.Println()

	// 2. Safe withdrawal rate
	fmt.Println("  2. Safe withdrawal rate")
	fmt.Printf("     Fraction of the corpus withdrawn yearly in retirement. Current: %.2f\n",
		cfg.Assumptions.SafeWithdrawalRate)
	fmt.Print("     > ")
	swr, _ := reader.ReadString('\n')
	swr = strings.TrimSpace(swr)
	if swr != "" {
		v, err := strconv.ParseFloat(swr, 64)
		if err != nil || v <= 0 || v > 1 {
			return fmt.Errorf("safe withdrawal rate must be a fraction in (0, 1], got %q", swr)
		}
		cfg.Assumptions.SafeWithdrawalRate = v
	}
	fmt.Println()

	// 3. Report theme
	fmt.Println("  3. Report theme")
	fmt.Println("     (1) Auto [default]")
	fmt.Println("     (2) Dark")
	fmt.Println("     (3) Light")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.Appearance.Theme = "dark"
	case "3":
		cfg.Appearance.Theme = "light"
	default:
		cfg.Appearance.Theme = "auto"
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Edit the file directly to tune risk thresholds and other assumptions.")
	fmt.Println("  Run `horizon setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

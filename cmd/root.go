package cmd

import (
	"os"

	"horizon/internal/config"
	"horizon/internal/engine"
	"horizon/internal/model"
	"horizon/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagAge        int
	flagRetireAge  int
	flagIncome     float64
	flagSavings    float64
	flagDebt       float64
	flagDependents int
	flagInflation  float64
	flagReturn     float64
	flagCurrency   string
	flagHistoryDB  string
)

var rootCmd = &cobra.Command{
	Use:   "horizon",
	Short: "Personal financial horizon estimator",
	Long: "Estimate insurance coverage, retirement corpus, required monthly savings,\n" +
		"and a risk profile from a handful of personal financial inputs.",
	RunE: runPlan,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagAge, "age", 35, "Current age in years")
	pf.IntVar(&flagRetireAge, "retirement-age", 65, "Target retirement age")
	pf.Float64Var(&flagIncome, "income", 85000, "Annual income")
	pf.Float64Var(&flagSavings, "savings", 40000, "Current savings")
	pf.Float64Var(&flagDebt, "debt", 25000, "Total outstanding debt")
	pf.IntVar(&flagDependents, "dependents", 2, "Number of dependents")
	pf.Float64Var(&flagInflation, "inflation", 0.025, "Inflation rate as a fraction, e.g. 0.025")
	pf.Float64Var(&flagReturn, "return", 0.07, "Expected investment return as a fraction, e.g. 0.07")
	pf.StringVar(&flagCurrency, "currency", "", "Display currency (overrides config)")
	pf.StringVar(&flagHistoryDB, "history-db", "", "Path to the plan history database")
}

func profileFromFlags() model.Profile {
	return model.Profile{
		Age:              flagAge,
		AnnualIncome:     flagIncome,
		Debt:             flagDebt,
		Savings:          flagSavings,
		Dependents:       flagDependents,
		RetirementAge:    flagRetireAge,
		InflationRate:    flagInflation,
		InvestmentReturn: flagReturn,
	}
}

// evaluateFlags is the shared compute path for plan and report.
func evaluateFlags() (model.Profile, model.Plan, config.Config, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return model.Profile{}, model.Plan{}, cfg, "", err
	}

	currency := flagCurrency
	if currency == "" {
		currency = config.Currency(cfg)
	}

	profile := profileFromFlags()
	plan, err := engine.Evaluate(profile, cfg.EngineAssumptions(), cfg.EngineRiskRules())
	if err != nil {
		return profile, model.Plan{}, cfg, currency, err
	}

	return profile, plan, cfg, currency, nil
}

func historyPath() string {
	if flagHistoryDB != "" {
		return flagHistoryDB
	}
	return store.DefaultPath()
}

// Package config loads and persists horizon configuration, including
// the formula constants. The defaults match the standard planning
// conventions (4% safe withdrawal, 75% income replacement, 20-year
// insurance horizon), but every constant is a config value, not a magic
// number.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"horizon/internal/engine"

	"github.com/BurntSushi/toml"
)

// Config holds all horizon configuration.
type Config struct {
	General     GeneralConfig    `toml:"general"`
	Assumptions AssumptionConfig `toml:"assumptions"`
	Risk        RiskConfig       `toml:"risk"`
	Appearance  AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Currency     string `toml:"currency"`
	HistoryLimit int    `toml:"history_limit"`
}

// AssumptionConfig holds the economic constants behind the formulas.
type AssumptionConfig struct {
	SafeWithdrawalRate     float64 `toml:"safe_withdrawal_rate"`
	IncomeReplacementRatio float64 `toml:"income_replacement_ratio"`
	InsuranceDiscountRate  float64 `toml:"insurance_discount_rate"`
	InsuranceSupportYears  int     `toml:"insurance_support_years"`
}

// RiskConfig holds the risk-classification thresholds.
type RiskConfig struct {
	LongHorizonYears   int     `toml:"long_horizon_years"`
	MediumHorizonYears int     `toml:"medium_horizon_years"`
	LowDebtRatio       float64 `toml:"low_debt_ratio"`
	HighDebtRatio      float64 `toml:"high_debt_ratio"`
	ManyDependents     int     `toml:"many_dependents"`
	HighMinScore       int     `toml:"high_min_score"`
	MediumMinScore     int     `toml:"medium_min_score"`
}

// AppearanceConfig holds rendering settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"` // glamour style: auto, dark, light, notty
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency:     "USD",
			HistoryLimit: 20,
		},
		Assumptions: AssumptionConfig{
			SafeWithdrawalRate:     0.04,
			IncomeReplacementRatio: 0.75,
			InsuranceDiscountRate:  0.03,
			InsuranceSupportYears:  20,
		},
		Risk: RiskConfig{
			LongHorizonYears:   20,
			MediumHorizonYears: 10,
			LowDebtRatio:       0.3,
			HighDebtRatio:      1.0,
			ManyDependents:     3,
			HighMinScore:       4,
			MediumMinScore:     3,
		},
		Appearance: AppearanceConfig{
			Theme: "auto",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "horizon")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "horizon")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// A present but invalid file is rejected.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", Path(), err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Currency returns the display currency from env var or config, in
// that order.
func Currency(cfg Config) string {
	if c := os.Getenv("HORIZON_CURRENCY"); c != "" {
		return c
	}
	return cfg.General.Currency
}

// Validate rejects constants the formulas cannot evaluate safely.
func (c Config) Validate() error {
	a := c.Assumptions
	if a.SafeWithdrawalRate <= 0 || a.SafeWithdrawalRate > 1 {
		return fmt.Errorf("assumptions.safe_withdrawal_rate must be in (0, 1], got %v", a.SafeWithdrawalRate)
	}
	if a.IncomeReplacementRatio <= 0 || a.IncomeReplacementRatio > 1 {
		return fmt.Errorf("assumptions.income_replacement_ratio must be in (0, 1], got %v", a.IncomeReplacementRatio)
	}
	if a.InsuranceDiscountRate < 0 {
		return fmt.Errorf("assumptions.insurance_discount_rate must not be negative, got %v", a.InsuranceDiscountRate)
	}
	if a.InsuranceSupportYears <= 0 {
		return fmt.Errorf("assumptions.insurance_support_years must be positive, got %d", a.InsuranceSupportYears)
	}

	r := c.Risk
	if r.MediumHorizonYears <= 0 || r.LongHorizonYears <= r.MediumHorizonYears {
		return fmt.Errorf("risk horizons must satisfy 0 < medium < long, got %d and %d",
			r.MediumHorizonYears, r.LongHorizonYears)
	}
	if r.LowDebtRatio <= 0 || r.HighDebtRatio <= r.LowDebtRatio {
		return fmt.Errorf("risk debt ratios must satisfy 0 < low < high, got %v and %v",
			r.LowDebtRatio, r.HighDebtRatio)
	}
	if r.MediumMinScore >= r.HighMinScore {
		return fmt.Errorf("risk.medium_min_score must be below risk.high_min_score, got %d and %d",
			r.MediumMinScore, r.HighMinScore)
	}

	if c.General.HistoryLimit < 0 {
		return fmt.Errorf("general.history_limit must not be negative, got %d", c.General.HistoryLimit)
	}

	return nil
}

// EngineAssumptions converts the config section to engine parameters.
func (c Config) EngineAssumptions() engine.Assumptions {
	return engine.Assumptions{
		SafeWithdrawalRate:     c.Assumptions.SafeWithdrawalRate,
		IncomeReplacementRatio: c.Assumptions.IncomeReplacementRatio,
		InsuranceDiscountRate:  c.Assumptions.InsuranceDiscountRate,
		InsuranceSupportYears:  c.Assumptions.InsuranceSupportYears,
	}
}

// EngineRiskRules converts the config section to engine parameters.
func (c Config) EngineRiskRules() engine.RiskRules {
	return engine.RiskRules{
		LongHorizonYears:   c.Risk.LongHorizonYears,
		MediumHorizonYears: c.Risk.MediumHorizonYears,
		LowDebtRatio:       c.Risk.LowDebtRatio,
		HighDebtRatio:      c.Risk.HighDebtRatio,
		ManyDependents:     c.Risk.ManyDependents,
		HighMinScore:       c.Risk.HighMinScore,
		MediumMinScore:     c.Risk.MediumMinScore,
	}
}

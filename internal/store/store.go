// Package store provides a SQLite-backed history of computed plans.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"horizon/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store persists evaluated plans together with their input profiles.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the XDG-compliant history database path.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "horizon", "history.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "horizon", "history.db")
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the history database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Entry is one saved plan with its input profile.
type Entry struct {
	ID        int64
	CreatedAt time.Time
	Currency  string
	Profile   model.Profile
	Plan      model.Plan
}

// SavePlan stores an evaluated plan and returns its row id.
func (s *Store) SavePlan(p model.Profile, plan model.Plan, currency string) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO plans
		(created_at, currency,
		 age, annual_income, debt, savings, dependents, retirement_age,
		 inflation_rate, investment_return,
		 insurance_coverage, gross_insurance_need, retirement_corpus,
		 future_annual_need, years_to_retirement, monthly_savings, risk, risk_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), currency,
		p.Age, p.AnnualIncome, p.Debt, p.Savings, p.Dependents, p.RetirementAge,
		p.InflationRate, p.InvestmentReturn,
		plan.InsuranceCoverage, plan.GrossInsuranceNeed, plan.RetirementCorpus,
		plan.FutureAnnualNeed, plan.YearsToRetirement, plan.MonthlySavings,
		plan.Risk.String(), plan.RiskScore,
	)
	if err != nil {
		return 0, fmt.Errorf("saving plan: %w", err)
	}
	return res.LastInsertId()
}

// ListPlans returns the most recent saved plans, newest first.
func (s *Store) ListPlans(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`SELECT
		id, created_at, currency,
		age, annual_income, debt, savings, dependents, retirement_age,
		inflation_rate, investment_return,
		insurance_coverage, gross_insurance_need, retirement_corpus,
		future_annual_need, years_to_retirement, monthly_savings, risk, risk_score
		FROM plans ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt, risk string
		if err := rows.Scan(
			&e.ID, &createdAt, &e.Currency,
			&e.Profile.Age, &e.Profile.AnnualIncome, &e.Profile.Debt,
			&e.Profile.Savings, &e.Profile.Dependents, &e.Profile.RetirementAge,
			&e.Profile.InflationRate, &e.Profile.InvestmentReturn,
			&e.Plan.InsuranceCoverage, &e.Plan.GrossInsuranceNeed,
			&e.Plan.RetirementCorpus, &e.Plan.FutureAnnualNeed,
			&e.Plan.YearsToRetirement, &e.Plan.MonthlySavings,
			&risk, &e.Plan.RiskScore,
		); err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}

		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if e.Plan.Risk, err = model.ParseRisk(risk); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Package model defines domain types for horizon profiles and plans.
package model

// Profile holds the personal and economic inputs for one estimation.
// It is ephemeral: built from flags or the interactive form, validated,
// fed to the engine, and discarded.
type Profile struct {
	Age              int
	AnnualIncome     float64
	Debt             float64
	Savings          float64
	Dependents       int
	RetirementAge    int
	InflationRate    float64 // fractional, e.g. 0.06
	InvestmentReturn float64 // fractional, e.g. 0.10
}

// Validate checks every field and returns a ValidationError naming the
// first offending one. A nil result means the profile is safe to compute.
func (p Profile) Validate() error {
	if p.Age <= 0 {
		return &ValidationError{Field: "age", Reason: "must be positive"}
	}
	if p.AnnualIncome < 0 {
		return &ValidationError{Field: "income", Reason: "must not be negative"}
	}
	if p.Debt < 0 {
		return &ValidationError{Field: "debt", Reason: "must not be negative"}
	}
	if p.Savings < 0 {
		return &ValidationError{Field: "savings", Reason: "must not be negative"}
	}
	if p.Dependents < 0 {
		return &ValidationError{Field: "dependents", Reason: "must not be negative"}
	}
	if p.RetirementAge <= p.Age {
		return &ValidationError{Field: "retirement-age", Reason: "must be greater than age"}
	}
	if p.InflationRate < 0 {
		return &ValidationError{Field: "inflation", Reason: "must not be negative"}
	}
	if p.InvestmentReturn < 0 {
		return &ValidationError{Field: "return", Reason: "must not be negative"}
	}
	return nil
}

// YearsToRetirement is the planning horizon in whole years.
func (p Profile) YearsToRetirement() int {
	return p.RetirementAge - p.Age
}

// DebtRatio is debt relative to annual income. A zero income counts as
// one currency unit so the ratio stays finite.
func (p Profile) DebtRatio() float64 {
	income := p.AnnualIncome
	if income <= 0 {
		income = 1
	}
	return p.Debt / income
}

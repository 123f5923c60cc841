package model

import "fmt"

// Risk is the qualitative bucket suggesting suitable investment
// aggressiveness.
type Risk int

const (
	RiskLow Risk = iota
	RiskMedium
	RiskHigh
)

// String returns the canonical lowercase name, which is also the form
// persisted in the history store.
func (r Risk) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	}
	return "unknown"
}

// Label returns the long human-readable description used in reports.
func (r Risk) Label() string {
	switch r {
	case RiskLow:
		return "Low (Preservation Focused)"
	case RiskMedium:
		return "Medium (Balanced)"
	case RiskHigh:
		return "High (Growth Focused)"
	}
	return "Unknown"
}

// ParseRisk converts a stored risk name back to its enum value.
func ParseRisk(s string) (Risk, error) {
	switch s {
	case "low":
		return RiskLow, nil
	case "medium":
		return RiskMedium, nil
	case "high":
		return RiskHigh, nil
	}
	return RiskLow, fmt.Errorf("unknown risk profile %q", s)
}

// Plan holds the derived outputs for one profile, recomputed on every
// input change. Intermediate values are kept for display alongside the
// four headline figures.
type Plan struct {
	// Insurance
	InsuranceCoverage  float64 // net coverage needed, floored at zero
	GrossInsuranceNeed float64 // PV of income replacement before debt/savings

	// Retirement
	RetirementCorpus  float64
	FutureAnnualNeed  float64 // inflation-adjusted annual spending at retirement
	YearsToRetirement int

	// Savings
	MonthlySavings float64

	// Risk
	Risk      Risk
	RiskScore int
}

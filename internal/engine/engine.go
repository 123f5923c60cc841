// Package engine implements the closed-form financial calculations:
// insurance need, retirement corpus, required monthly savings, and risk
// classification. All functions are pure and single-shot; formula
// constants come in through Assumptions and RiskRules rather than being
// hard-coded.
package engine

import (
	"math"

	"horizon/internal/model"
)

// Assumptions holds the economic constants behind the formulas.
type Assumptions struct {
	SafeWithdrawalRate     float64 // annual fraction of the corpus withdrawn in retirement
	IncomeReplacementRatio float64 // fraction of income the household lives on
	InsuranceDiscountRate  float64 // discount rate for the income-replacement annuity
	InsuranceSupportYears  int     // years of income replacement for dependents
}

// RiskRules holds the classification thresholds.
type RiskRules struct {
	LongHorizonYears   int
	MediumHorizonYears int
	LowDebtRatio       float64
	HighDebtRatio      float64
	ManyDependents     int
	HighMinScore       int
	MediumMinScore     int
}

// round2 rounds a currency amount to cents.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// InsuranceNeed computes the life-insurance coverage gap: the present
// value of replacing a share of income over the support horizon, plus
// outstanding debt, minus assets already held. Households without
// dependents have no income-replacement horizon and need no coverage.
// Returns the net gap (floored at zero) and the gross annuity value.
func InsuranceNeed(p model.Profile, a Assumptions) (net, gross float64, err error) {
	if p.AnnualIncome < 0 {
		return 0, 0, &model.ValidationError{Field: "income", Reason: "must not be negative"}
	}
	if p.Dependents == 0 {
		return 0, 0, nil
	}

	annualSupport := p.AnnualIncome * a.IncomeReplacementRatio
	years := float64(a.InsuranceSupportYears)

	// PV-of-annuity factor, with a straight multiple when the discount
	// rate is zero.
	pvFactor := years
	if a.InsuranceDiscountRate > 0 {
		d := a.InsuranceDiscountRate
		pvFactor = (1 - math.Pow(1+d, -years)) / d
	}

	gross = annualSupport * pvFactor
	net = gross + p.Debt - p.Savings
	if net < 0 {
		net = 0
	}
	return net, gross, nil
}

// RetirementCorpus projects today's lifestyle spending forward to
// retirement age at the inflation rate, then sizes the nest egg that
// sustains it at the safe withdrawal rate.
func RetirementCorpus(p model.Profile, a Assumptions) (corpus, futureNeed float64, years int, err error) {
	years = p.YearsToRetirement()
	if years <= 0 {
		return 0, 0, 0, &model.ValidationError{Field: "retirement-age", Reason: "must be greater than age"}
	}

	currentNeed := p.AnnualIncome * a.IncomeReplacementRatio
	futureNeed = currentNeed * math.Pow(1+p.InflationRate, float64(years))
	corpus = futureNeed / a.SafeWithdrawalRate
	return corpus, futureNeed, years, nil
}

// MonthlySavings solves the savings-annuity equation for the periodic
// payment that grows current savings to the corpus target by retirement
// age, with the investment return compounded monthly. This is the
// amortized-payment formula run against a future-value target instead
// of a present-value principal. A target already covered by the growth
// of existing savings clamps to zero rather than reporting a negative
// payment.
func MonthlySavings(p model.Profile, a Assumptions, corpus float64) (float64, error) {
	years := p.YearsToRetirement()
	if years <= 0 {
		return 0, &model.ValidationError{Field: "retirement-age", Reason: "must be greater than age"}
	}

	months := float64(years * 12)
	rate := p.InvestmentReturn / 12

	var pmt float64
	if rate == 0 {
		pmt = (corpus - p.Savings) / months
	} else {
		growth := math.Pow(1+rate, months)
		pmt = (corpus - p.Savings*growth) * rate / (growth - 1)
	}

	if pmt < 0 {
		pmt = 0
	}
	return pmt, nil
}

// RiskProfile classifies the household by threshold scoring on the
// planning horizon, the debt-to-income ratio, and the dependents count.
// Deterministic: identical inputs always score identically.
func RiskProfile(p model.Profile, r RiskRules) (model.Risk, int) {
	years := p.YearsToRetirement()
	debtRatio := p.DebtRatio()

	score := 0
	switch {
	case years > r.LongHorizonYears:
		score += 3
	case years > r.MediumHorizonYears:
		score += 2
	default:
		score++
	}

	switch {
	case debtRatio < r.LowDebtRatio:
		score += 2
	case debtRatio < r.HighDebtRatio:
		score++
	default:
		score--
	}

	if r.ManyDependents > 0 && p.Dependents >= r.ManyDependents {
		score--
	}

	switch {
	case score >= r.HighMinScore:
		return model.RiskHigh, score
	case score >= r.MediumMinScore:
		return model.RiskMedium, score
	}
	return model.RiskLow, score
}

// Evaluate validates the profile and runs all four calculations,
// rounding monetary outputs to cents.
func Evaluate(p model.Profile, a Assumptions, r RiskRules) (model.Plan, error) {
	if err := p.Validate(); err != nil {
		return model.Plan{}, err
	}

	net, gross, err := InsuranceNeed(p, a)
	if err != nil {
		return model.Plan{}, err
	}

	corpus, futureNeed, years, err := RetirementCorpus(p, a)
	if err != nil {
		return model.Plan{}, err
	}

	pmt, err := MonthlySavings(p, a, corpus)
	if err != nil {
		return model.Plan{}, err
	}

	risk, score := RiskProfile(p, r)

	return model.Plan{
		InsuranceCoverage:  round2(net),
		GrossInsuranceNeed: round2(gross),
		RetirementCorpus:   round2(corpus),
		FutureAnnualNeed:   round2(futureNeed),
		YearsToRetirement:  years,
		MonthlySavings:     round2(pmt),
		Risk:               risk,
		RiskScore:          score,
	}, nil
}

package engine

import (
	"errors"
	"math"
	"testing"

	"horizon/internal/model"
)

func defaultAssumptions() Assumptions {
	return Assumptions{
		SafeWithdrawalRate:     0.04,
		IncomeReplacementRatio: 0.75,
		InsuranceDiscountRate:  0.03,
		InsuranceSupportYears:  20,
	}
}

func defaultRules() RiskRules {
	return RiskRules{
		LongHorizonYears:   20,
		MediumHorizonYears: 10,
		LowDebtRatio:       0.3,
		HighDebtRatio:      1.0,
		ManyDependents:     3,
		HighMinScore:       4,
		MediumMinScore:     3,
	}
}

func referenceProfile() model.Profile {
	return model.Profile{
		Age:              30,
		AnnualIncome:     60000,
		Debt:             0,
		Savings:          10000,
		Dependents:       0,
		RetirementAge:    60,
		InflationRate:    0.06,
		InvestmentReturn: 0.10,
	}
}

// approx fails unless got is within relTol of want.
func approx(t *testing.T, name string, got, want, relTol float64) {
	t.Helper()
	if want == 0 {
		if math.Abs(got) > relTol {
			t.Fatalf("%s = %v, want 0", name, got)
		}
		return
	}
	if math.Abs(got-want)/math.Abs(want) > relTol {
		t.Fatalf("%s = %v, want %v (±%.2f%%)", name, got, want, relTol*100)
	}
}

func TestEvaluate_ReferenceProfile(t *testing.T) {
	plan, err := Evaluate(referenceProfile(), defaultAssumptions(), defaultRules())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	// No dependents, no income-replacement need.
	if plan.InsuranceCoverage != 0 {
		t.Fatalf("InsuranceCoverage = %v, want 0", plan.InsuranceCoverage)
	}
	if plan.GrossInsuranceNeed != 0 {
		t.Fatalf("GrossInsuranceNeed = %v, want 0", plan.GrossInsuranceNeed)
	}

	// 45000 * 1.06^30 / 0.04
	approx(t, "RetirementCorpus", plan.RetirementCorpus, 6461427.6, 1e-3)
	approx(t, "FutureAnnualNeed", plan.FutureAnnualNeed, 258457.1, 1e-3)
	if plan.YearsToRetirement != 30 {
		t.Fatalf("YearsToRetirement = %d, want 30", plan.YearsToRetirement)
	}

	approx(t, "MonthlySavings", plan.MonthlySavings, 2770.7, 1e-3)

	if plan.Risk != model.RiskHigh {
		t.Fatalf("Risk = %s, want high", plan.Risk)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	a, r := defaultAssumptions(), defaultRules()
	first, err := Evaluate(referenceProfile(), a, r)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	second, err := Evaluate(referenceProfile(), a, r)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if first != second {
		t.Fatalf("Evaluate not deterministic: %+v vs %+v", first, second)
	}
}

func TestInsuranceNeed_WithDependents(t *testing.T) {
	p := model.Profile{
		Age: 35, AnnualIncome: 85000, Debt: 25000, Savings: 40000,
		Dependents: 2, RetirementAge: 65,
		InflationRate: 0.025, InvestmentReturn: 0.07,
	}

	net, gross, err := InsuranceNeed(p, defaultAssumptions())
	if err != nil {
		t.Fatalf("InsuranceNeed: %v", err)
	}

	// 63750 * (1 - 1.03^-20) / 0.03
	approx(t, "gross", gross, 948438.7, 1e-3)

	wantNet := gross + p.Debt - p.Savings
	if math.Abs(net-wantNet) > 0.01 {
		t.Fatalf("net = %v, want gross+debt-savings = %v", net, wantNet)
	}
}

func TestInsuranceNeed_NoDependents(t *testing.T) {
	p := referenceProfile()
	net, gross, err := InsuranceNeed(p, defaultAssumptions())
	if err != nil {
		t.Fatalf("InsuranceNeed: %v", err)
	}
	if net != 0 || gross != 0 {
		t.Fatalf("net, gross = %v, %v, want 0, 0", net, gross)
	}
}

func TestInsuranceNeed_ClampsAtZero(t *testing.T) {
	p := model.Profile{
		Age: 50, AnnualIncome: 30000, Debt: 0, Savings: 5_000_000,
		Dependents: 1, RetirementAge: 60,
		InflationRate: 0.02, InvestmentReturn: 0.05,
	}

	net, gross, err := InsuranceNeed(p, defaultAssumptions())
	if err != nil {
		t.Fatalf("InsuranceNeed: %v", err)
	}
	if net != 0 {
		t.Fatalf("net = %v, want 0 when savings exceed the gross need", net)
	}
	if gross <= 0 {
		t.Fatalf("gross = %v, want positive", gross)
	}
}

func TestRetirementCorpus_MonotonicInInflation(t *testing.T) {
	a := defaultAssumptions()
	low := referenceProfile()
	high := referenceProfile()
	high.InflationRate = 0.08

	corpusLow, _, _, err := RetirementCorpus(low, a)
	if err != nil {
		t.Fatalf("RetirementCorpus: %v", err)
	}
	corpusHigh, _, _, err := RetirementCorpus(high, a)
	if err != nil {
		t.Fatalf("RetirementCorpus: %v", err)
	}

	if corpusHigh <= corpusLow {
		t.Fatalf("corpus at 8%% inflation = %v, not above corpus at 6%% = %v", corpusHigh, corpusLow)
	}
}

func TestRetirementCorpus_MonotonicInHorizon(t *testing.T) {
	a := defaultAssumptions()
	short := referenceProfile()
	long := referenceProfile()
	long.RetirementAge = 65

	corpusShort, _, _, err := RetirementCorpus(short, a)
	if err != nil {
		t.Fatalf("RetirementCorpus: %v", err)
	}
	corpusLong, _, years, err := RetirementCorpus(long, a)
	if err != nil {
		t.Fatalf("RetirementCorpus: %v", err)
	}

	if years != 35 {
		t.Fatalf("years = %d, want 35", years)
	}
	if corpusLong <= corpusShort {
		t.Fatalf("corpus over 35y = %v, not above corpus over 30y = %v", corpusLong, corpusShort)
	}
}

func TestRetirementCorpus_RejectsNonPositiveHorizon(t *testing.T) {
	p := referenceProfile()
	p.RetirementAge = p.Age

	_, _, _, err := RetirementCorpus(p, defaultAssumptions())
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *model.ValidationError", err)
	}
	if verr.Field != "retirement-age" {
		t.Fatalf("Field = %q, want retirement-age", verr.Field)
	}
}

func TestMonthlySavings_DecreasesWithReturn(t *testing.T) {
	a := defaultAssumptions()
	const corpus = 5_000_000.0

	slow := referenceProfile()
	fast := referenceProfile()
	fast.InvestmentReturn = 0.12

	pmtSlow, err := MonthlySavings(slow, a, corpus)
	if err != nil {
		t.Fatalf("MonthlySavings: %v", err)
	}
	pmtFast, err := MonthlySavings(fast, a, corpus)
	if err != nil {
		t.Fatalf("MonthlySavings: %v", err)
	}

	if pmtFast >= pmtSlow {
		t.Fatalf("pmt at 12%% return = %v, not below pmt at 10%% = %v", pmtFast, pmtSlow)
	}
}

func TestMonthlySavings_OneYearHorizon(t *testing.T) {
	p := model.Profile{
		Age: 59, AnnualIncome: 60000, Debt: 0, Savings: 0,
		Dependents: 0, RetirementAge: 60,
		InflationRate: 0.06, InvestmentReturn: 0.10,
	}
	a := defaultAssumptions()

	corpus, _, _, err := RetirementCorpus(p, a)
	if err != nil {
		t.Fatalf("RetirementCorpus: %v", err)
	}

	pmt, err := MonthlySavings(p, a, corpus)
	if err != nil {
		t.Fatalf("MonthlySavings: %v", err)
	}
	if pmt <= 0 || math.IsInf(pmt, 0) || math.IsNaN(pmt) {
		t.Fatalf("pmt = %v, want finite positive for a 1-year horizon", pmt)
	}
}

func TestMonthlySavings_ZeroReturnFallback(t *testing.T) {
	p := referenceProfile()
	p.InvestmentReturn = 0

	const corpus = 370_000.0
	pmt, err := MonthlySavings(p, defaultAssumptions(), corpus)
	if err != nil {
		t.Fatalf("MonthlySavings: %v", err)
	}

	want := (corpus - p.Savings) / float64(30*12)
	if math.Abs(pmt-want) > 1e-9 {
		t.Fatalf("pmt = %v, want straight division %v at zero return", pmt, want)
	}
}

func TestMonthlySavings_ClampsWhenFunded(t *testing.T) {
	p := referenceProfile()
	p.Savings = 10_000_000

	pmt, err := MonthlySavings(p, defaultAssumptions(), 500_000)
	if err != nil {
		t.Fatalf("MonthlySavings: %v", err)
	}
	if pmt != 0 {
		t.Fatalf("pmt = %v, want 0 when the target is already funded", pmt)
	}
}

func TestRiskProfile_Classification(t *testing.T) {
	rules := defaultRules()

	tests := []struct {
		name      string
		profile   model.Profile
		want      model.Risk
		wantScore int
	}{
		{
			name: "long horizon no debt",
			profile: model.Profile{
				Age: 30, AnnualIncome: 60000, RetirementAge: 60,
			},
			want: model.RiskHigh, wantScore: 5,
		},
		{
			name: "medium horizon moderate debt",
			profile: model.Profile{
				Age: 45, AnnualIncome: 60000, Debt: 30000, RetirementAge: 60,
			},
			want: model.RiskMedium, wantScore: 3,
		},
		{
			name: "short horizon heavy debt",
			profile: model.Profile{
				Age: 55, AnnualIncome: 60000, Debt: 90000, RetirementAge: 60,
			},
			want: model.RiskLow, wantScore: 0,
		},
		{
			name: "large household steps down",
			profile: model.Profile{
				Age: 45, AnnualIncome: 60000, Debt: 10000, Dependents: 3, RetirementAge: 60,
			},
			want: model.RiskMedium, wantScore: 3,
		},
		{
			name: "zero income counts debt as fully leveraged",
			profile: model.Profile{
				Age: 30, AnnualIncome: 0, Debt: 5000, RetirementAge: 60,
			},
			want: model.RiskLow, wantScore: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, score := RiskProfile(tt.profile, rules)
			if got != tt.want || score != tt.wantScore {
				t.Fatalf("RiskProfile = %s (score %d), want %s (score %d)",
					got, score, tt.want, tt.wantScore)
			}

			again, againScore := RiskProfile(tt.profile, rules)
			if again != got || againScore != score {
				t.Fatalf("RiskProfile not deterministic: %s/%d then %s/%d",
					got, score, again, againScore)
			}
		})
	}
}

func TestEvaluate_NonNegativeOutputs(t *testing.T) {
	profiles := []model.Profile{
		referenceProfile(),
		{Age: 25, AnnualIncome: 0, Debt: 0, Savings: 0, Dependents: 4,
			RetirementAge: 26, InflationRate: 0, InvestmentReturn: 0},
		{Age: 40, AnnualIncome: 200000, Debt: 500000, Savings: 100,
			Dependents: 1, RetirementAge: 41, InflationRate: 0.09, InvestmentReturn: 0.01},
	}

	for _, p := range profiles {
		plan, err := Evaluate(p, defaultAssumptions(), defaultRules())
		if err != nil {
			t.Fatalf("Evaluate(%+v): %v", p, err)
		}
		if plan.InsuranceCoverage < 0 {
			t.Fatalf("InsuranceCoverage = %v, want >= 0", plan.InsuranceCoverage)
		}
		if plan.RetirementCorpus < 0 {
			t.Fatalf("RetirementCorpus = %v, want >= 0", plan.RetirementCorpus)
		}
		if plan.MonthlySavings < 0 {
			t.Fatalf("MonthlySavings = %v, want >= 0", plan.MonthlySavings)
		}
	}
}

func TestEvaluate_RejectsInvalidProfile(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*model.Profile)
		wantField string
	}{
		{"negative income", func(p *model.Profile) { p.AnnualIncome = -1 }, "income"},
		{"negative debt", func(p *model.Profile) { p.Debt = -0.5 }, "debt"},
		{"negative savings", func(p *model.Profile) { p.Savings = -100 }, "savings"},
		{"zero age", func(p *model.Profile) { p.Age = 0 }, "age"},
		{"retirement before age", func(p *model.Profile) { p.RetirementAge = 30 }, "retirement-age"},
		{"negative dependents", func(p *model.Profile) { p.Dependents = -1 }, "dependents"},
		{"negative inflation", func(p *model.Profile) { p.InflationRate = -0.01 }, "inflation"},
		{"negative return", func(p *model.Profile) { p.InvestmentReturn = -0.01 }, "return"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := referenceProfile()
			tt.mutate(&p)

			_, err := Evaluate(p, defaultAssumptions(), defaultRules())
			var verr *model.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want *model.ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Fatalf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

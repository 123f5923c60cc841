package tui

import (
	"errors"
	"testing"

	"horizon/internal/model"
)

func TestFormValues_DefaultsParse(t *testing.T) {
	p, err := defaultFormValues().profile()
	if err != nil {
		t.Fatalf("profile: %v", err)
	}

	if p.Age != 35 || p.RetirementAge != 65 {
		t.Fatalf("ages = %d/%d, want 35/65", p.Age, p.RetirementAge)
	}
	if p.AnnualIncome != 85000 || p.Savings != 40000 || p.Debt != 25000 {
		t.Fatalf("amounts = %v/%v/%v, want 85000/40000/25000",
			p.AnnualIncome, p.Savings, p.Debt)
	}
	if p.InflationRate != 0.025 || p.InvestmentReturn != 0.07 {
		t.Fatalf("rates = %v/%v, want 0.025/0.07", p.InflationRate, p.InvestmentReturn)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("default profile invalid: %v", err)
	}
}

func TestFormValues_ReportsField(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*formValues)
		wantField string
	}{
		{"bad age", func(v *formValues) { v.age = "abc" }, "age"},
		{"bad income", func(v *formValues) { v.income = "-5" }, "income"},
		{"rate as percent", func(v *formValues) { v.inflation = "2.5" }, "inflation"},
		{"retirement before age", func(v *formValues) { v.retireAge = "30" }, "retirement-age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := defaultFormValues()
			tt.mutate(&v)

			_, err := v.profile()
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

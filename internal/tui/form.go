package tui

import (
	"fmt"
	"strconv"
	"strings"

	"horizon/internal/model"

	"github.com/charmbracelet/huh"
)

// formValues holds the raw string inputs of the profile form. Parsing
// happens once on completion; the per-field validators guarantee it
// succeeds.
type formValues struct {
	age        string
	retireAge  string
	income     string
	savings    string
	debt       string
	dependents string
	inflation  string
	ret        string
}

func defaultFormValues() formValues {
	return formValues{
		age:        "35",
		retireAge:  "65",
		income:     "85000",
		savings:    "40000",
		debt:       "25000",
		dependents: "2",
		inflation:  "0.025",
		ret:        "0.07",
	}
}

func (v formValues) profile() (model.Profile, error) {
	var p model.Profile
	var err error

	if p.Age, err = parseCount(v.age); err != nil {
		return p, &model.ValidationError{Field: "age", Reason: err.Error()}
	}
	if p.RetirementAge, err = parseCount(v.retireAge); err != nil {
		return p, &model.ValidationError{Field: "retirement-age", Reason: err.Error()}
	}
	if p.AnnualIncome, err = parseAmount(v.income); err != nil {
		return p, &model.ValidationError{Field: "income", Reason: err.Error()}
	}
	if p.Savings, err = parseAmount(v.savings); err != nil {
		return p, &model.ValidationError{Field: "savings", Reason: err.Error()}
	}
	if p.Debt, err = parseAmount(v.debt); err != nil {
		return p, &model.ValidationError{Field: "debt", Reason: err.Error()}
	}
	if p.Dependents, err = parseCount(v.dependents); err != nil {
		return p, &model.ValidationError{Field: "dependents", Reason: err.Error()}
	}
	if p.InflationRate, err = parseRate(v.inflation); err != nil {
		return p, &model.ValidationError{Field: "inflation", Reason: err.Error()}
	}
	if p.InvestmentReturn, err = parseRate(v.ret); err != nil {
		return p, &model.ValidationError{Field: "return", Reason: err.Error()}
	}

	return p, p.Validate()
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("must be a whole number")
	}
	if n < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return n, nil
}

func parseAmount(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("must be a number")
	}
	if f < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return f, nil
}

func parseRate(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("must be a number")
	}
	if f < 0 || f >= 1 {
		return 0, fmt.Errorf("must be a fraction like 0.06")
	}
	return f, nil
}

func validateCount(s string) error {
	_, err := parseCount(s)
	return err
}

func validateAmount(s string) error {
	_, err := parseAmount(s)
	return err
}

func validateRate(s string) error {
	_, err := parseRate(s)
	return err
}

// buildForm creates the profile entry form. The retirement age
// validator reads the age field so the horizon rule is enforced
// inline.
func buildForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Current age").
				Value(&v.age).
				Validate(func(s string) error {
					n, err := parseCount(s)
					if err != nil {
						return err
					}
					if n == 0 {
						return fmt.Errorf("must be positive")
					}
					return nil
				}),
			huh.NewInput().
				Title("Target retirement age").
				Value(&v.retireAge).
				Validate(func(s string) error {
					n, err := parseCount(s)
					if err != nil {
						return err
					}
					if age, ageErr := parseCount(v.age); ageErr == nil && n <= age {
						return fmt.Errorf("must be greater than age")
					}
					return nil
				}),
			huh.NewInput().
				Title("Annual income").
				Value(&v.income).
				Validate(validateAmount),
			huh.NewInput().
				Title("Current savings").
				Value(&v.savings).
				Validate(validateAmount),
			huh.NewInput().
				Title("Total debt").
				Value(&v.debt).
				Validate(validateAmount),
			huh.NewInput().
				Title("Dependents").
				Value(&v.dependents).
				Validate(validateCount),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Inflation rate").
				Description("As a fraction, e.g. 0.025 for 2.5%").
				Value(&v.inflation).
				Validate(validateRate),
			huh.NewInput().
				Title("Expected investment return").
				Description("As a fraction, e.g. 0.07 for 7%").
				Value(&v.ret).
				Validate(validateRate),
		),
	)
}

// Package tui provides the interactive Bubble Tea estimator for
// horizon: a profile form feeding the engine, with the four outputs
// rendered as cards and keys to save or export the plan.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"horizon/internal/cli"
	"horizon/internal/config"
	"horizon/internal/engine"
	"horizon/internal/model"
	"horizon/internal/report"
	"horizon/internal/store"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const minTerminalWidth = 70

type keyMap struct {
	Edit   key.Binding
	Save   key.Binding
	Export key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit inputs")),
		Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save to history")),
		Export: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export report")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// App is the root Bubble Tea model.
type App struct {
	cfg      config.Config
	currency string

	// Profile form. vals is shared by pointer because the form holds
	// references to its fields across model copies.
	form *huh.Form
	vals *formValues

	// Last evaluation
	profile model.Profile
	plan    model.Plan
	hasPlan bool

	// UI state
	width  int
	height int
	status string
	keys   keyMap
}

// New creates the estimator app with an empty profile form.
func New(cfg config.Config) App {
	a := App{
		cfg:      cfg,
		currency: config.Currency(cfg),
		keys:     defaultKeyMap(),
	}
	vals := defaultFormValues()
	a.vals = &vals
	a.form = buildForm(a.vals)
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.form.Init()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(min(a.width-4, 64))
		}

	case tea.KeyMsg:
		if a.form == nil {
			return a.updateResults(msg)
		}
	}

	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		profile, err := a.vals.profile()
		if err != nil {
			// Field validators make this unreachable; re-edit if it
			// happens anyway.
			a.status = err.Error()
			a.form = buildForm(a.vals)
			return a, a.form.Init()
		}

		plan, err := engine.Evaluate(profile, a.cfg.EngineAssumptions(), a.cfg.EngineRiskRules())
		if err != nil {
			a.status = err.Error()
			a.form = buildForm(a.vals)
			return a, a.form.Init()
		}

		a.profile = profile
		a.plan = plan
		a.hasPlan = true
		a.status = ""
		a.form = nil
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		return a, tea.Quit
	}

	return a, cmd
}

func (a App) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Edit):
		a.form = buildForm(a.vals)
		return a, a.form.Init()

	case key.Matches(msg, a.keys.Save):
		a.status = a.savePlan()
		return a, nil

	case key.Matches(msg, a.keys.Export):
		a.status = a.exportReport()
		return a, nil
	}
	return a, nil
}

func (a App) savePlan() string {
	st, err := store.Open(store.DefaultPath())
	if err != nil {
		return fmt.Sprintf("save failed: %s", err)
	}
	defer st.Close()

	id, err := st.SavePlan(a.profile, a.plan, a.currency)
	if err != nil {
		return fmt.Sprintf("save failed: %s", err)
	}
	return fmt.Sprintf("saved as plan #%d", id)
}

func (a App) exportReport() string {
	md := report.Markdown(a.profile, a.plan, a.currency)
	name := fmt.Sprintf("horizon-report-%s.md", time.Now().Format("2006-01-02-150405"))
	path := filepath.Join(".", name)

	if err := os.WriteFile(path, []byte(md), 0o600); err != nil {
		return fmt.Sprintf("export failed: %s", err)
	}
	return fmt.Sprintf("report written to %s", path)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d).\n", a.width, minTerminalWidth)
	}

	if a.form != nil {
		header := cli.RenderTitle("FINANCIAL HORIZON ESTIMATOR")
		return "\n" + header + "\n\n" + a.form.View()
	}

	if !a.hasPlan {
		return ""
	}
	return a.viewResults()
}

func (a App) viewResults() string {
	cur := a.currency
	plan := a.plan

	cardWidth := min(a.width-2, 120) / 3

	cards := cli.CardRow(
		cli.MetricCard("Insurance Gap",
			cli.FormatCompactMoney(plan.InsuranceCoverage, cur),
			"coverage needed", cardWidth),
		cli.MetricCard("Retirement Target",
			cli.FormatCompactMoney(plan.RetirementCorpus, cur),
			fmt.Sprintf("%s inflation", cli.FormatRate(a.profile.InflationRate)), cardWidth),
		cli.MetricCard("Monthly Savings",
			cli.FormatMoney(plan.MonthlySavings, cur),
			fmt.Sprintf("%d years to goal", plan.YearsToRetirement), cardWidth),
	)

	gapBar := fmt.Sprintf("  Saved  %s  %s of %s",
		cli.RenderHorizontalBar(a.profile.Savings, plan.RetirementCorpus, 40),
		cli.FormatCompactMoney(a.profile.Savings, cur),
		cli.FormatCompactMoney(plan.RetirementCorpus, cur))

	riskStyle := lipgloss.NewStyle().Bold(true).Foreground(riskColor(plan.Risk))
	riskLine := "  Risk profile: " + riskStyle.Render(plan.Risk.Label())

	help := cli.MutedStyle.Render("  e edit · s save · x export report · q quit")

	out := "\n" + cli.RenderTitle("FINANCIAL HORIZON ESTIMATOR") + "\n\n" +
		cards + "\n\n" + gapBar + "\n\n" + riskLine + "\n"

	if a.status != "" {
		out += "\n  " + cli.MutedStyle.Render(a.status) + "\n"
	}
	return out + "\n" + help + "\n"
}

func riskColor(r model.Risk) lipgloss.Color {
	switch r {
	case model.RiskHigh:
		return cli.ColorGreen
	case model.RiskMedium:
		return cli.ColorOrange
	}
	return cli.ColorBlue
}

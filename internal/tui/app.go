// Package tui provides the interactive budget form front end for adspend.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"adspend/internal/cli"
	"adspend/internal/config"
	"adspend/internal/model"
	"adspend/internal/pipeline"
)

// App is the root Bubble Tea model: a budget input form followed by a
// scrollable report view. The pipeline itself is synchronous and fast,
// so results are computed inline when the form completes.
type App struct {
	cfg config.Config

	form *huh.Form

	report *model.Report
	runErr error
	view   viewport.Model

	width  int
	height int
}

// NewApp creates the TUI model for the given configuration.
func NewApp(cfg config.Config) App {
	return App{cfg: cfg, view: viewport.New(0, 0), form: newBudgetForm()}
}

// newBudgetForm builds the budget input. The value is read back with
// form.GetString on completion: App is a value model, so a pointer
// binding would write through to a stale copy.
func newBudgetForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("budget").
				Title("Total marketing budget ($)").
				Placeholder("10000").
				Validate(validateBudget),
		),
	)
}

func validateBudget(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a numeric value")
	}
	if v <= 0 {
		return fmt.Errorf("budget must be greater than zero")
	}
	return nil
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
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		a.view.Width = msg.Width
		a.view.Height = msg.Height - 2 // keep room for the status bar
		return a, nil

	case tea.KeyMsg:
		if a.form == nil {
			switch msg.String() {
			case "q", "ctrl+c", "esc":
				return a, tea.Quit
			case "n":
				return a.resetForm()
			}
			var cmd tea.Cmd
			a.view, cmd = a.view.Update(msg)
			return a, cmd
		}
	}

	if a.form != nil {
		return a.updateForm(msg)
	}

	var cmd tea.Cmd
	a.view, cmd = a.view.Update(msg)
	return a, cmd
}

func (a App) resetForm() (tea.Model, tea.Cmd) {
	a.report = nil
	a.runErr = nil
	a.form = newBudgetForm()
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		raw := strings.TrimSpace(a.form.GetString("budget"))
		budget, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			a.runErr = fmt.Errorf("invalid budget %q: enter a numeric value", raw)
		} else if report, rerr := pipeline.Run(budget, a.cfg); rerr != nil {
			a.runErr = rerr
		} else {
			a.report = &report
		}
		a.form = nil
		a.view.SetContent(a.resultContent())
		a.view.GotoTop()
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		return a, tea.Quit
	}

	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	if a.form != nil {
		return a.form.View()
	}
	return a.view.View() + "\n" + a.statusBar()
}

func (a App) resultContent() string {
	if a.runErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(cli.ColorOrange)
		return "\n  " + errStyle.Render(fmt.Sprintf("Could not optimize: %s", a.runErr)) + "\n"
	}
	if a.report == nil {
		return ""
	}
	return "\n" + cli.RenderReport(*a.report)
}

func (a App) statusBar() string {
	bar := lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	return bar.Render("  n new budget · j/k scroll · q quit")
}

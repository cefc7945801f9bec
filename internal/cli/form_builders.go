package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sitedesk/sitedesk/internal/cli/formatter"
	"github.com/sitedesk/sitedesk/internal/domain"
)

// sitedeskHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func sitedeskHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validatePositiveNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("expected a positive number")
	}
	return nil
}

// projectOptions builds the assignment dropdown: the placeholder first, then
// every project by name. Selecting the placeholder means unassigned.
func projectOptions(ctx context.Context, app *App) []huh.Option[string] {
	projects := app.Projects.List(ctx)
	options := make([]huh.Option[string], 0, len(projects)+1)
	options = append(options, huh.NewOption("-- Select Project --", ""))
	for _, p := range projects {
		options = append(options, huh.NewOption(p.Name, p.Name))
	}
	return options
}

// workerForm collects the add/edit worker fields. The status select is only
// shown when editing (status non-nil); assignment overrides it anyway.
func workerForm(ctx context.Context, app *App, name, role, project, status *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Name").
			Placeholder("Ravi Kumar").
			Value(name).
			Validate(validateRequired),
		huh.NewInput().
			Title("Role").
			Placeholder("Mason").
			Value(role).
			Validate(validateRequired),
		huh.NewSelect[string]().
			Title("Project").
			Options(projectOptions(ctx, app)...).
			Value(project),
	}

	if status != nil {
		fields = append(fields, huh.NewSelect[string]().
			Title("Status (ignored when a project is selected)").
			Options(
				huh.NewOption(string(domain.WorkerAvailable), string(domain.WorkerAvailable)),
				huh.NewOption(string(domain.WorkerAssigned), string(domain.WorkerAssigned)),
				huh.NewOption(string(domain.WorkerOnLeave), string(domain.WorkerOnLeave)),
			).
			Value(status))
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(sitedeskHuhTheme()).
		WithShowHelp(false)
}

// projectForm collects the add-project fields.
func projectForm(name, deadline, sqFt *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Placeholder("Site A").
				Value(name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD)").
				Placeholder("2026-09-30").
				Value(deadline).
				Validate(validateDate),
			huh.NewInput().
				Title("Built-up Area (sq ft)").
				Placeholder("600").
				Value(sqFt).
				Validate(validatePositiveNumber),
		),
	).WithTheme(sitedeskHuhTheme()).WithShowHelp(false)
}

// loginForm collects credentials.
func loginForm(email, password *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("admin@sitedesk.local").
				Value(email).
				Validate(validateRequired),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(validateRequired),
		),
	).WithTheme(sitedeskHuhTheme()).WithShowHelp(false)
}

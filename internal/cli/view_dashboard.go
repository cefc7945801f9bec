package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sitedesk/sitedesk/internal/cli/formatter"
	"github.com/sitedesk/sitedesk/internal/service"
)

// dashboardLoadedMsg signals that the dashboard summary has been loaded.
type dashboardLoadedMsg struct {
	summary service.StatusSummary
}

// dashboardView is the home screen of the TUI: crew counts, project table
// with estimates, inventory, and the unread badge.
type dashboardView struct {
	app     *App
	summary service.StatusSummary
	loading bool
}

func newDashboardView(app *App) *dashboardView {
	return &dashboardView{app: app, loading: true}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notifications")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadData()
}

func (v *dashboardView) loadData() tea.Cmd {
	app := v.app
	return func() tea.Msg {
		return dashboardLoadedMsg{summary: app.Status.Summary(context.Background())}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		v.summary = msg.summary
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "n":
			return v, switchView(ViewNotifications)
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}

	return v, nil
}

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.FormatSummary(v.summary))
	if v.summary.Unread > 0 {
		b.WriteString("\n")
		b.WriteString(formatter.StyleYellow.Render(
			fmt.Sprintf("⚠ %d unread — press 'n' to review", v.summary.Unread)))
		b.WriteString("\n")
	}
	return b.String()
}

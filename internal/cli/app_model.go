package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sitedesk/sitedesk/internal/cli/formatter"
)

// appModel is the root bubbletea Model for the TUI. It hosts the dashboard
// and notifications views and switches between them.
type appModel struct {
	app      *App
	views    map[ViewID]View
	active   ViewID
	width    int
	height   int
	quitting bool
}

func newAppModel(app *App) appModel {
	return appModel{
		app: app,
		views: map[ViewID]View{
			ViewDashboard:     newDashboardView(app),
			ViewNotifications: newNotificationsView(app),
		},
		active: ViewDashboard,
	}
}

func (m appModel) activeView() View {
	return m.views[m.active]
}

func (m appModel) Init() tea.Cmd {
	return m.activeView().Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.forward(msg)

	case switchViewMsg:
		m.active = msg.id
		return m, m.activeView().Init()

	case refreshViewMsg:
		// Broadcast so the view we are not looking at reloads too.
		var cmds []tea.Cmd
		for id, v := range m.views {
			updated, cmd := v.Update(msg)
			m.views[id] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC, msg.String() == "q":
			m.quitting = true
			return m, tea.Quit
		case msg.Type == tea.KeyEsc && m.active != ViewDashboard:
			m.active = ViewDashboard
			return m, m.activeView().Init()
		}
	}

	return m.forward(msg)
}

func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	v := m.activeView()
	updated, cmd := v.Update(msg)
	m.views[m.active] = updated.(View)
	return m, cmd
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.activeView().View())
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.height {
			result += strings.Repeat("\n", m.height-lines)
		}
	}

	return result
}

func (m appModel) renderHeader() string {
	title := formatter.StyleHeader.Render("sitedesk")
	crumb := " " + formatter.Dim("›") + " " + formatter.Dim(m.activeView().Title())

	width := m.width
	if width < 20 {
		width = 20
	}
	sep := formatter.Dim(strings.Repeat("─", width))
	return title + crumb + "\n" + sep
}

func (m appModel) renderStatusBar() string {
	var hints []string
	for _, b := range m.activeView().ShortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	if m.active != ViewDashboard {
		hints = append(hints, formatter.Dim("esc: back"))
	}
	hints = append(hints, formatter.Dim("q: quit"))

	width := m.width
	if width < 20 {
		width = 20
	}
	sep := formatter.Dim(strings.Repeat("─", width))
	return sep + "\n" + strings.Join(hints, "  ")
}

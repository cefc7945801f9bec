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

// notificationsLoadedMsg signals that the notification list has been loaded.
type notificationsLoadedMsg struct {
	list   []service.NotificationView
	unread int
}

// notificationsView lists derived alerts with a cursor; entries can be
// acknowledged one at a time or all at once.
type notificationsView struct {
	app     *App
	list    []service.NotificationView
	unread  int
	cursor  int
	loading bool
}

func newNotificationsView(app *App) *notificationsView {
	return &notificationsView{app: app, loading: true}
}

func (v *notificationsView) ID() ViewID    { return ViewNotifications }
func (v *notificationsView) Title() string { return "Notifications" }

func (v *notificationsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "mark read")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "mark all read")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *notificationsView) Init() tea.Cmd {
	return v.loadData()
}

func (v *notificationsView) loadData() tea.Cmd {
	app := v.app
	return func() tea.Msg {
		ctx := context.Background()
		return notificationsLoadedMsg{
			list:   app.Notifications.List(ctx, true),
			unread: app.Notifications.UnreadCount(ctx),
		}
	}
}

func (v *notificationsView) markSelected() tea.Cmd {
	if v.cursor >= len(v.list) {
		return nil
	}
	id := v.list[v.cursor].ID
	app := v.app
	return func() tea.Msg {
		if err := app.Notifications.MarkRead(context.Background(), id); err != nil {
			return nil
		}
		return refreshViewMsg{}
	}
}

func (v *notificationsView) markAll() tea.Cmd {
	app := v.app
	return func() tea.Msg {
		if err := app.Notifications.MarkAllRead(context.Background()); err != nil {
			return nil
		}
		return refreshViewMsg{}
	}
}

func (v *notificationsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationsLoadedMsg:
		v.loading = false
		v.list = msg.list
		v.unread = msg.unread
		if v.cursor >= len(v.list) {
			v.cursor = max(0, len(v.list)-1)
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.list)-1 {
				v.cursor++
			}
		case "enter":
			return v, v.markSelected()
		case "a":
			return v, v.markAll()
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}

	return v, nil
}

func (v *notificationsView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}

	var b strings.Builder
	b.WriteString("\n")

	if len(v.list) == 0 {
		b.WriteString("  " + formatter.Dim("No notifications.") + "\n")
		return b.String()
	}

	if v.unread > 0 {
		b.WriteString("  " + formatter.Bold(fmt.Sprintf("%d unread", v.unread)) + "\n\n")
	}

	for i, n := range v.list {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}

		line := fmt.Sprintf("%s  %-6d %s  %s", formatter.NotifyBadge(n.Type), n.ID, n.Message, formatter.Dim(n.Time))
		if n.Read {
			line = formatter.Dim(fmt.Sprintf("✔  %-6d %s  (read)", n.ID, n.Message))
		}
		b.WriteString(cursor + line + "\n")
	}

	return b.String()
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/sitedesk/sitedesk/internal/service"
)

// FormatNotifications renders the notification list. Read entries are dimmed.
func FormatNotifications(list []service.NotificationView, unread int) string {
	var b strings.Builder

	title := "Notifications"
	if unread > 0 {
		title = fmt.Sprintf("Notifications (%d new)", unread)
	}
	b.WriteString(Header(title))
	b.WriteString("\n")

	if len(list) == 0 {
		b.WriteString(Dim("No notifications.") + "\n")
		return b.String()
	}

	for _, n := range list {
		line := fmt.Sprintf("%s  %-6d %s  %s", NotifyBadge(n.Type), n.ID, n.Message, Dim(n.Time))
		if n.Read {
			line = Dim(fmt.Sprintf("✔  %-6d %s  (read)", n.ID, n.Message))
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

package domain

import (
	"fmt"
	"math"
	"time"
)

// Notification id offsets. Ids are derived arithmetically from the source
// record so that recomputation yields stable ids across reloads.
const (
	offsetNewProject  = 1000
	offsetDeadline    = 2000
	offsetOutOfStock  = 3000
	newProjectWindow  = 24 * time.Hour
	deadlineHorizonDy = 3
)

// Notification is a derived alert. Notifications are recomputed from the
// live collections on every load and never persisted; only the read ledger
// of acknowledged ids survives independently.
type Notification struct {
	ID      int64            `json:"id"`
	Type    NotificationType `json:"type"`
	Message string           `json:"message"`
	Time    string           `json:"time"`
}

// DeriveNotifications scans the project and material snapshots against the
// given clock and returns the full alert list. It is pure and deterministic:
// equal inputs produce equal output, element for element.
//
// Rules, in emission order:
//  1. project created within the last 24h -> success, id = project id + 1000
//  2. deadline within [0,3] days -> warning, id = project id + 2000
//     (past deadlines emit nothing; there is no overdue category)
//  3. material at index i out of stock -> warning, id = i + 3000
//     (keyed by list position, not identity)
func DeriveNotifications(projects []Project, materials []Material, now time.Time) []Notification {
	var out []Notification

	for _, p := range projects {
		if now.Sub(p.CreatedAt()) < newProjectWindow {
			out = append(out, Notification{
				ID:      p.ID + offsetNewProject,
				Type:    NotifySuccess,
				Message: fmt.Sprintf("New project added: %s", p.Name),
				Time:    "Just now",
			})
		}

		daysLeft := p.Deadline.Sub(now).Hours() / 24
		if daysLeft >= 0 && daysLeft <= deadlineHorizonDy {
			out = append(out, Notification{
				ID:      p.ID + offsetDeadline,
				Type:    NotifyWarning,
				Message: fmt.Sprintf("Deadline approaching for %s (%d days left)", p.Name, int(math.Ceil(daysLeft))),
				Time:    "Today",
			})
		}
	}

	for i, m := range materials {
		if m.Status == StockOut {
			out = append(out, Notification{
				ID:      int64(i) + offsetOutOfStock,
				Type:    NotifyWarning,
				Message: fmt.Sprintf("Out of stock: %s", m.Name),
				Time:    "Today",
			})
		}
	}

	return out
}

// CountUnread returns how many derived notifications are absent from the
// read set. Never negative.
func CountUnread(notifications []Notification, read map[int64]bool) int {
	n := 0
	for _, nt := range notifications {
		if !read[nt.ID] {
			n++
		}
	}
	return n
}

package service

import (
	"context"
	"time"

	"github.com/sitedesk/sitedesk/internal/domain"
	"github.com/sitedesk/sitedesk/internal/repository"
)

type notificationService struct {
	projects  repository.ProjectRepo
	materials repository.MaterialRepo
	ledger    repository.LedgerRepo
	observer  UseCaseObserver
	now       func() time.Time
}

// NewNotificationService creates the notification engine over the live
// project and material collections plus the read ledger. The derived list is
// recomputed on every call; nothing about it is cached or persisted.
func NewNotificationService(projects repository.ProjectRepo, materials repository.MaterialRepo, ledger repository.LedgerRepo, observers ...UseCaseObserver) NotificationService {
	return &notificationService{
		projects:  projects,
		materials: materials,
		ledger:    ledger,
		observer:  useCaseObserverOrNoop(observers),
		now:       time.Now,
	}
}

func (s *notificationService) derive() []domain.Notification {
	return domain.DeriveNotifications(s.projects.List(), s.materials.List(), s.now())
}

func (s *notificationService) List(ctx context.Context, showAll bool) []NotificationView {
	read := s.ledger.ReadSet()
	var out []NotificationView
	for _, n := range s.derive() {
		v := NotificationView{Notification: n, Read: read[n.ID]}
		if !showAll && v.Read {
			continue
		}
		out = append(out, v)
	}
	return out
}

func (s *notificationService) UnreadCount(ctx context.Context) int {
	return domain.CountUnread(s.derive(), s.ledger.ReadSet())
}

func (s *notificationService) MarkRead(ctx context.Context, id int64) (err error) {
	started := s.now()
	defer func() {
		observe(ctx, s.observer, "notify_mark_read", started, err, map[string]any{"id": id})
	}()
	return s.ledger.MarkRead(ctx, id)
}

// MarkAllRead replaces the ledger with the full current derived id set.
func (s *notificationService) MarkAllRead(ctx context.Context) (err error) {
	started := s.now()
	defer func() {
		observe(ctx, s.observer, "notify_mark_all_read", started, err, nil)
	}()

	derived := s.derive()
	ids := make([]int64, 0, len(derived))
	for _, n := range derived {
		ids = append(ids, n.ID)
	}
	return s.ledger.SetAll(ctx, ids)
}

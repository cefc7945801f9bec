package service

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/domain"
	"github.com/sitedesk/sitedesk/internal/repository"
)

type statusService struct {
	workers       repository.WorkerRepo
	projects      repository.ProjectRepo
	materials     repository.MaterialRepo
	notifications NotificationService
}

// NewStatusService assembles the dashboard summary from the live collections.
func NewStatusService(workers repository.WorkerRepo, projects repository.ProjectRepo, materials repository.MaterialRepo, notifications NotificationService) StatusService {
	return &statusService{
		workers:       workers,
		projects:      projects,
		materials:     materials,
		notifications: notifications,
	}
}

func (s *statusService) Summary(ctx context.Context) StatusSummary {
	workers := s.workers.List()
	counts := WorkerCounts{Total: len(workers)}
	for _, w := range workers {
		switch w.Status {
		case domain.WorkerAvailable:
			counts.Available++
		case domain.WorkerAssigned:
			counts.Assigned++
		case domain.WorkerOnLeave:
			counts.OnLeave++
		}
	}

	projects := s.projects.List()
	views := make([]ProjectStatusView, 0, len(projects))
	for _, p := range projects {
		assigned := 0
		for _, w := range workers {
			if w.Status == domain.WorkerAssigned && w.ProjectName() == p.Name {
				assigned++
			}
		}
		views = append(views, ProjectStatusView{
			Project:  p,
			Phase:    p.Phase(),
			Estimate: domain.RequiredMaterials(p.SqFt),
			Assigned: assigned,
		})
	}

	return StatusSummary{
		Workers:         counts,
		Projects:        views,
		Materials:       s.materials.List(),
		AverageProgress: domain.AverageProgress(projects),
		Unread:          s.notifications.UnreadCount(ctx),
	}
}

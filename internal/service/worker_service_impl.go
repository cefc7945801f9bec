package service

import (
	"context"
	"strings"
	"time"

	"github.com/sitedesk/sitedesk/internal/domain"
	"github.com/sitedesk/sitedesk/internal/repository"
)

// projectPlaceholder is the UI dropdown's "no selection" option; it reads as
// an empty project field.
const projectPlaceholder = "-- Select Project --"

type workerService struct {
	workers  repository.WorkerRepo
	observer UseCaseObserver
	now      func() time.Time
}

// NewWorkerService creates the worker half of the consistency engine.
func NewWorkerService(workers repository.WorkerRepo, observers ...UseCaseObserver) WorkerService {
	return &workerService{
		workers:  workers,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

// normalizeProject maps the raw form selection to an assignment: nil for an
// empty or placeholder selection, the trimmed name otherwise.
func normalizeProject(raw string) *string {
	name := strings.TrimSpace(raw)
	if name == "" || name == projectPlaceholder {
		return nil
	}
	return &name
}

func (s *workerService) List(ctx context.Context) []domain.Worker {
	return s.workers.List()
}

func (s *workerService) Add(ctx context.Context, in AddWorkerInput) (w *domain.Worker, err error) {
	started := s.now()
	defer func() {
		observe(ctx, s.observer, "worker_add", started, err, map[string]any{"name": in.Name})
	}()

	project := normalizeProject(in.Project)
	status := domain.WorkerAvailable
	if project != nil {
		status = domain.WorkerAssigned
	}

	worker := domain.Worker{
		ID:      s.now().UnixMilli(),
		Name:    strings.TrimSpace(in.Name),
		Role:    strings.TrimSpace(in.Role),
		Status:  status,
		Project: project,
	}
	if err = worker.Validate(); err != nil {
		return nil, err
	}
	if err = s.workers.Add(ctx, worker); err != nil {
		return nil, err
	}
	return &worker, nil
}

func (s *workerService) Edit(ctx context.Context, in EditWorkerInput) (w *domain.Worker, err error) {
	started := s.now()
	defer func() {
		observe(ctx, s.observer, "worker_edit", started, err, map[string]any{"id": in.ID})
	}()

	prior, err := s.workers.GetByID(in.ID)
	if err != nil {
		return nil, err
	}

	project := normalizeProject(in.Project)
	submitted := domain.WorkerStatus(in.Status)
	if !domain.ValidWorkerStatuses[in.Status] {
		submitted = prior.Status
	}

	// A selected project forces assigned, whatever the form said. A cleared
	// project drops the worker to available, except that on-leave is sticky:
	// unavailability is orthogonal to assignment and survives a field clear.
	var status domain.WorkerStatus
	switch {
	case project != nil:
		status = domain.WorkerAssigned
	case submitted == domain.WorkerAssigned:
		status = domain.WorkerAvailable
	default:
		status = submitted
	}

	updated := domain.Worker{
		ID:      prior.ID,
		Name:    strings.TrimSpace(in.Name),
		Role:    strings.TrimSpace(in.Role),
		Status:  status,
		Project: project,
	}
	if err = updated.Validate(); err != nil {
		return nil, err
	}
	if err = s.workers.Update(ctx, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a worker. No cascade: projects are untouched.
func (s *workerService) Delete(ctx context.Context, id int64) (err error) {
	started := s.now()
	defer func() {
		observe(ctx, s.observer, "worker_delete", started, err, map[string]any{"id": id})
	}()
	return s.workers.Delete(ctx, id)
}

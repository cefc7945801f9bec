package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sitedesk/sitedesk/internal/domain"
	"github.com/sitedesk/sitedesk/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
	workers  repository.WorkerRepo
	observer UseCaseObserver
	now      func() time.Time
}

// NewProjectService creates the project half of the consistency engine. The
// worker repo is needed for the deletion cascade.
func NewProjectService(projects repository.ProjectRepo, workers repository.WorkerRepo, observers ...UseCaseObserver) ProjectService {
	return &projectService{
		projects: projects,
		workers:  workers,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *projectService) List(ctx context.Context) []domain.Project {
	return s.projects.List()
}

func (s *projectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.projects.GetByID(id)
}

func (s *projectService) Add(ctx context.Context, in AddProjectInput) (p *domain.Project, err error) {
	started := s.now()
	defer func() {
		observe(ctx, s.observer, "project_add", started, err, map[string]any{"name": in.Name})
	}()

	deadline, err := domain.ParseDate(in.Deadline)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project := domain.Project{
		ID:       s.now().UnixMilli(),
		Name:     strings.TrimSpace(in.Name),
		Deadline: deadline,
		Progress: 0,
		SqFt:     in.SqFt,
		Workers:  domain.RequiredWorkers(in.SqFt),
	}
	if err = project.Validate(); err != nil {
		return nil, err
	}
	if existing := s.projects.FindByName(project.Name); existing != nil {
		return nil, fmt.Errorf("%w: a project named %q already exists", domain.ErrValidation, existing.Name)
	}
	if err = s.projects.Add(ctx, project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete removes the project and resets every worker assigned to it to
// {project: none, status: available}. Unlike an edit-time clear, deletion is
// an authoritative reset: it overrides on-leave too.
func (s *projectService) Delete(ctx context.Context, id int64) (err error) {
	started := s.now()
	defer func() {
		observe(ctx, s.observer, "project_delete", started, err, map[string]any{"id": id})
	}()

	project, err := s.projects.GetByID(id)
	if err != nil {
		return err
	}
	if err = s.projects.Delete(ctx, id); err != nil {
		return err
	}

	workers := s.workers.List()
	changed := false
	for i := range workers {
		if workers[i].ProjectName() == project.Name {
			workers[i].Project = nil
			workers[i].Status = domain.WorkerAvailable
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.workers.ReplaceAll(ctx, workers)
}

func (s *projectService) AdjustProgress(ctx context.Context, id int64, delta int) (p *domain.Project, err error) {
	started := s.now()
	defer func() {
		observe(ctx, s.observer, "project_progress", started, err, map[string]any{"id": id, "delta": delta})
	}()

	project, err := s.projects.GetByID(id)
	if err != nil {
		return nil, err
	}
	project.Progress = domain.ClampProgress(project.Progress + delta)
	if err = s.projects.Update(ctx, *project); err != nil {
		return nil, err
	}
	return project, nil
}

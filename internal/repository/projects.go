package repository

import (
	"context"
	"fmt"

	"github.com/sitedesk/sitedesk/internal/domain"
	"github.com/sitedesk/sitedesk/internal/store"
)

// StoreProjectRepo implements ProjectRepo on the flat key/value store.
type StoreProjectRepo struct {
	st       store.Store
	projects []domain.Project
}

// NewStoreProjectRepo loads the projects collection. Malformed or missing
// data falls back to an empty collection.
func NewStoreProjectRepo(ctx context.Context, st store.Store) (*StoreProjectRepo, error) {
	projects, _, err := loadCollection[domain.Project](ctx, st, store.KeyProjects)
	if err != nil {
		return nil, err
	}
	return &StoreProjectRepo{st: st, projects: projects}, nil
}

func (r *StoreProjectRepo) List() []domain.Project {
	out := make([]domain.Project, len(r.projects))
	copy(out, r.projects)
	return out
}

func (r *StoreProjectRepo) GetByID(id int64) (*domain.Project, error) {
	for i := range r.projects {
		if r.projects[i].ID == id {
			p := r.projects[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
}

// FindByName matches case-insensitively after trimming, or returns nil.
func (r *StoreProjectRepo) FindByName(name string) *domain.Project {
	for i := range r.projects {
		if r.projects[i].NameEquals(name) {
			p := r.projects[i]
			return &p
		}
	}
	return nil
}

func (r *StoreProjectRepo) Add(ctx context.Context, p domain.Project) error {
	r.projects = append(r.projects, p)
	return r.persist(ctx)
}

func (r *StoreProjectRepo) Update(ctx context.Context, p domain.Project) error {
	for i := range r.projects {
		if r.projects[i].ID == p.ID {
			r.projects[i] = p
			return r.persist(ctx)
		}
	}
	return fmt.Errorf("project %d: %w", p.ID, domain.ErrNotFound)
}

func (r *StoreProjectRepo) Delete(ctx context.Context, id int64) error {
	for i := range r.projects {
		if r.projects[i].ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return r.persist(ctx)
		}
	}
	return fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
}

func (r *StoreProjectRepo) persist(ctx context.Context) error {
	return saveCollection(ctx, r.st, store.KeyProjects, r.projects)
}

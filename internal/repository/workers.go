package repository

import (
	"context"
	"fmt"

	"github.com/sitedesk/sitedesk/internal/domain"
	"github.com/sitedesk/sitedesk/internal/store"
)

// StoreWorkerRepo implements WorkerRepo on the flat key/value store.
type StoreWorkerRepo struct {
	st      store.Store
	workers []domain.Worker
}

// NewStoreWorkerRepo loads the workers collection. Malformed or missing data
// falls back to an empty collection.
func NewStoreWorkerRepo(ctx context.Context, st store.Store) (*StoreWorkerRepo, error) {
	workers, _, err := loadCollection[domain.Worker](ctx, st, store.KeyWorkers)
	if err != nil {
		return nil, err
	}
	return &StoreWorkerRepo{st: st, workers: workers}, nil
}

func (r *StoreWorkerRepo) List() []domain.Worker {
	out := make([]domain.Worker, len(r.workers))
	copy(out, r.workers)
	return out
}

func (r *StoreWorkerRepo) GetByID(id int64) (*domain.Worker, error) {
	for i := range r.workers {
		if r.workers[i].ID == id {
			w := r.workers[i]
			return &w, nil
		}
	}
	return nil, fmt.Errorf("worker %d: %w", id, domain.ErrNotFound)
}

func (r *StoreWorkerRepo) Add(ctx context.Context, w domain.Worker) error {
	r.workers = append(r.workers, w)
	return r.persist(ctx)
}

func (r *StoreWorkerRepo) Update(ctx context.Context, w domain.Worker) error {
	for i := range r.workers {
		if r.workers[i].ID == w.ID {
			r.workers[i] = w
			return r.persist(ctx)
		}
	}
	return fmt.Errorf("worker %d: %w", w.ID, domain.ErrNotFound)
}

func (r *StoreWorkerRepo) Delete(ctx context.Context, id int64) error {
	for i := range r.workers {
		if r.workers[i].ID == id {
			r.workers = append(r.workers[:i], r.workers[i+1:]...)
			return r.persist(ctx)
		}
	}
	return fmt.Errorf("worker %d: %w", id, domain.ErrNotFound)
}

func (r *StoreWorkerRepo) ReplaceAll(ctx context.Context, workers []domain.Worker) error {
	r.workers = workers
	return r.persist(ctx)
}

func (r *StoreWorkerRepo) persist(ctx context.Context) error {
	return saveCollection(ctx, r.st, store.KeyWorkers, r.workers)
}

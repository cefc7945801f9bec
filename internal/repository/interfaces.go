package repository

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/domain"
)

// Repositories own their entity collections exclusively. Each is loaded from
// the store once at construction and written back in full on every mutation;
// services operate on the live repository, never on independent copies.

type WorkerRepo interface {
	List() []domain.Worker
	GetByID(id int64) (*domain.Worker, error)
	Add(ctx context.Context, w domain.Worker) error
	Update(ctx context.Context, w domain.Worker) error
	Delete(ctx context.Context, id int64) error
	// ReplaceAll swaps the whole collection, for cascade rewrites.
	ReplaceAll(ctx context.Context, workers []domain.Worker) error
}

type ProjectRepo interface {
	List() []domain.Project
	GetByID(id int64) (*domain.Project, error)
	FindByName(name string) *domain.Project
	Add(ctx context.Context, p domain.Project) error
	Update(ctx context.Context, p domain.Project) error
	Delete(ctx context.Context, id int64) error
}

type MaterialRepo interface {
	List() []domain.Material
	Add(ctx context.Context, m domain.Material) error
	SetQuantity(ctx context.Context, index, quantity int) error
	ToggleStatus(ctx context.Context, index int) error
}

// LedgerRepo is the persisted set of acknowledged notification ids. It only
// ever grows; entries for since-resolved conditions are never purged.
type LedgerRepo interface {
	IDs() []int64
	ReadSet() map[int64]bool
	MarkRead(ctx context.Context, id int64) error
	SetAll(ctx context.Context, ids []int64) error
}

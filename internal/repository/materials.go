package repository

import (
	"context"
	"fmt"

	"github.com/sitedesk/sitedesk/internal/domain"
	"github.com/sitedesk/sitedesk/internal/store"
)

// StoreMaterialRepo implements MaterialRepo on the flat key/value store.
// Materials have no stable identifier and are addressed by list position.
type StoreMaterialRepo struct {
	st        store.Store
	materials []domain.Material
}

// NewStoreMaterialRepo loads the materials collection. On first run (key
// absent or malformed) the seed inventory is installed and persisted.
func NewStoreMaterialRepo(ctx context.Context, st store.Store) (*StoreMaterialRepo, error) {
	materials, ok, err := loadCollection[domain.Material](ctx, st, store.KeyMaterials)
	if err != nil {
		return nil, err
	}
	r := &StoreMaterialRepo{st: st, materials: materials}
	if !ok {
		r.materials = domain.SeedMaterials()
		if err := r.persist(ctx); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *StoreMaterialRepo) List() []domain.Material {
	out := make([]domain.Material, len(r.materials))
	copy(out, r.materials)
	return out
}

func (r *StoreMaterialRepo) Add(ctx context.Context, m domain.Material) error {
	r.materials = append(r.materials, m)
	return r.persist(ctx)
}

func (r *StoreMaterialRepo) SetQuantity(ctx context.Context, index, quantity int) error {
	if err := r.checkIndex(index); err != nil {
		return err
	}
	r.materials[index].Quantity = quantity
	return r.persist(ctx)
}

func (r *StoreMaterialRepo) ToggleStatus(ctx context.Context, index int) error {
	if err := r.checkIndex(index); err != nil {
		return err
	}
	r.materials[index].Status = r.materials[index].Status.Toggled()
	return r.persist(ctx)
}

func (r *StoreMaterialRepo) checkIndex(index int) error {
	if index < 0 || index >= len(r.materials) {
		return fmt.Errorf("material index %d: %w", index, domain.ErrNotFound)
	}
	return nil
}

func (r *StoreMaterialRepo) persist(ctx context.Context) error {
	return saveCollection(ctx, r.st, store.KeyMaterials, r.materials)
}

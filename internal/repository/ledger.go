package repository

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/store"
)

// StoreLedgerRepo implements LedgerRepo on the flat key/value store. The
// ledger is append-only through MarkRead; ids for since-resolved conditions
// stay in it indefinitely.
type StoreLedgerRepo struct {
	st  store.Store
	ids []int64
}

// NewStoreLedgerRepo loads the read ledger. Malformed or missing data falls
// back to an empty set.
func NewStoreLedgerRepo(ctx context.Context, st store.Store) (*StoreLedgerRepo, error) {
	ids, _, err := loadCollection[int64](ctx, st, store.KeyReadNotifications)
	if err != nil {
		return nil, err
	}
	return &StoreLedgerRepo{st: st, ids: ids}, nil
}

func (r *StoreLedgerRepo) IDs() []int64 {
	out := make([]int64, len(r.ids))
	copy(out, r.ids)
	return out
}

func (r *StoreLedgerRepo) ReadSet() map[int64]bool {
	set := make(map[int64]bool, len(r.ids))
	for _, id := range r.ids {
		set[id] = true
	}
	return set
}

// MarkRead records id as acknowledged. Marking an already-present id is a
// no-op, so repeated marks leave the ledger unchanged.
func (r *StoreLedgerRepo) MarkRead(ctx context.Context, id int64) error {
	for _, existing := range r.ids {
		if existing == id {
			return nil
		}
	}
	r.ids = append(r.ids, id)
	return r.persist(ctx)
}

// SetAll replaces the ledger with the given id set (mark-all-read).
func (r *StoreLedgerRepo) SetAll(ctx context.Context, ids []int64) error {
	r.ids = ids
	return r.persist(ctx)
}

func (r *StoreLedgerRepo) persist(ctx context.Context) error {
	return saveCollection(ctx, r.st, store.KeyReadNotifications, r.ids)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/sitedesk/sitedesk/internal/repository"
	"github.com/sitedesk/sitedesk/internal/store"
	"github.com/stretchr/testify/require"
)

// testRepos bundles the four repositories over one shared in-memory store.
type testRepos struct {
	store     *store.MemoryStore
	workers   *repository.StoreWorkerRepo
	projects  *repository.StoreProjectRepo
	materials *repository.StoreMaterialRepo
	ledger    *repository.StoreLedgerRepo
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	ctx := context.Background()
	st := store.NewMemoryStore()

	workers, err := repository.NewStoreWorkerRepo(ctx, st)
	require.NoError(t, err)
	projects, err := repository.NewStoreProjectRepo(ctx, st)
	require.NoError(t, err)
	materials, err := repository.NewStoreMaterialRepo(ctx, st)
	require.NoError(t, err)
	ledger, err := repository.NewStoreLedgerRepo(ctx, st)
	require.NoError(t, err)

	return testRepos{store: st, workers: workers, projects: projects, materials: materials, ledger: ledger}
}

// fixedClock returns a deterministic, strictly advancing clock so consecutive
// UnixMilli ids never collide.
func fixedClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Millisecond)
		return current
	}
}

var testNow = time.Date(2026, time.August, 28, 9, 0, 0, 0, time.UTC)

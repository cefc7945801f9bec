package cli

import (
	"context"
	"testing"

	"github.com/sitedesk/sitedesk/internal/domain"
	"github.com/sitedesk/sitedesk/internal/repository"
	"github.com/sitedesk/sitedesk/internal/service"
	"github.com/sitedesk/sitedesk/internal/store"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App over an in-memory store.
func testApp(t *testing.T) *App {
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

	notify := service.NewNotificationService(projects, materials, ledger)

	return &App{
		Workers:       service.NewWorkerService(workers),
		Projects:      service.NewProjectService(projects, workers),
		Materials:     service.NewMaterialService(materials),
		Notifications: notify,
		Status:        service.NewStatusService(workers, projects, materials, notify),
		Auth: service.NewAuthService([]domain.User{
			{ID: "u1", Email: "admin@sitedesk.local", Password: "admin123", Name: "Admin", Role: "admin"},
		}),
		IsInteractive: func() bool { return false },
	}
}

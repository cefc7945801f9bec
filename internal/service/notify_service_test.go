package service

import (
	"context"
	"testing"
	"time"

	"github.com/sitedesk/sitedesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestNotifyStack wires notification, project and worker services over one
// store with clocks pinned near testNow.
func newTestNotifyStack(t *testing.T) (NotificationService, ProjectService, testRepos) {
	t.Helper()
	repos := setupRepos(t)

	notifySvc := NewNotificationService(repos.projects, repos.materials, repos.ledger)
	notifySvc.(*notificationService).now = func() time.Time { return testNow }

	projectSvc := NewProjectService(repos.projects, repos.workers)
	projectSvc.(*projectService).now = fixedClock(testNow)

	return notifySvc, projectSvc, repos
}

func TestNotify_SeededSteelIsOutOfStock(t *testing.T) {
	notifySvc, _, _ := newTestNotifyStack(t)
	ctx := context.Background()

	list := notifySvc.List(ctx, false)
	require.Len(t, list, 1, "seed inventory has exactly one out-of-stock line")
	assert.Equal(t, int64(3001), list[0].ID)
	assert.Equal(t, "Out of stock: Steel", list[0].Message)
	assert.Equal(t, domain.NotifyWarning, list[0].Type)
	assert.False(t, list[0].Read)
}

func TestNotify_NewProjectAndDeadline(t *testing.T) {
	notifySvc, projectSvc, _ := newTestNotifyStack(t)
	ctx := context.Background()

	p, err := projectSvc.Add(ctx, AddProjectInput{
		Name:     "Site X",
		Deadline: testNow.AddDate(0, 0, 2).Format("2006-01-02"),
		SqFt:     600,
	})
	require.NoError(t, err)

	list := notifySvc.List(ctx, false)
	require.Len(t, list, 3)

	assert.Equal(t, p.ID+1000, list[0].ID)
	assert.Equal(t, domain.NotifySuccess, list[0].Type)
	assert.Equal(t, "New project added: Site X", list[0].Message)

	assert.Equal(t, p.ID+2000, list[1].ID)
	assert.Equal(t, domain.NotifyWarning, list[1].Type)
	assert.Contains(t, list[1].Message, "Deadline approaching for Site X")

	assert.Equal(t, int64(3001), list[2].ID)
}

func TestNotify_MarkReadFiltersAndCounts(t *testing.T) {
	notifySvc, _, _ := newTestNotifyStack(t)
	ctx := context.Background()

	assert.Equal(t, 1, notifySvc.UnreadCount(ctx))

	require.NoError(t, notifySvc.MarkRead(ctx, 3001))
	assert.Equal(t, 0, notifySvc.UnreadCount(ctx))
	assert.Empty(t, notifySvc.List(ctx, false), "unread view hides acknowledged alerts")

	all := notifySvc.List(ctx, true)
	require.Len(t, all, 1, "show-all still reveals read alerts")
	assert.True(t, all[0].Read)

	// Marking twice leaves the ledger and the count unchanged.
	require.NoError(t, notifySvc.MarkRead(ctx, 3001))
	assert.Equal(t, 0, notifySvc.UnreadCount(ctx))
}

func TestNotify_MarkAllRead(t *testing.T) {
	notifySvc, projectSvc, repos := newTestNotifyStack(t)
	ctx := context.Background()

	_, err := projectSvc.Add(ctx, AddProjectInput{
		Name:     "Site X",
		Deadline: testNow.AddDate(0, 0, 1).Format("2006-01-02"),
		SqFt:     600,
	})
	require.NoError(t, err)
	require.Equal(t, 3, notifySvc.UnreadCount(ctx))

	require.NoError(t, notifySvc.MarkAllRead(ctx))
	assert.Equal(t, 0, notifySvc.UnreadCount(ctx))
	assert.Len(t, notifySvc.List(ctx, true), 3)
	assert.Len(t, repos.ledger.IDs(), 3, "ledger holds exactly the current derived id set")
}

func TestNotify_LedgerSurvivesSourceResolution(t *testing.T) {
	notifySvc, _, repos := newTestNotifyStack(t)
	ctx := context.Background()

	require.NoError(t, notifySvc.MarkRead(ctx, 3001))

	// Restocking Steel removes the alert, but the ledger entry stays.
	require.NoError(t, repos.materials.ToggleStatus(ctx, 1))
	require.NoError(t, repos.materials.SetQuantity(ctx, 1, 100))

	assert.Empty(t, notifySvc.List(ctx, true))
	assert.Equal(t, 0, notifySvc.UnreadCount(ctx))
	assert.Equal(t, []int64{3001}, repos.ledger.IDs(), "read ledger is never purged")
}

func TestNotify_CountRecomputedOnSourceChange(t *testing.T) {
	notifySvc, _, repos := newTestNotifyStack(t)
	ctx := context.Background()

	require.Equal(t, 1, notifySvc.UnreadCount(ctx))

	// A new out-of-stock line surfaces immediately on the next read.
	require.NoError(t, repos.materials.Add(ctx, domain.Material{Name: "Gravel", Status: domain.StockOut}))
	assert.Equal(t, 2, notifySvc.UnreadCount(ctx))
}

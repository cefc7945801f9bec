package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusSummary(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	workerSvc := NewWorkerService(repos.workers)
	workerSvc.(*workerService).now = fixedClock(testNow)
	projectSvc := NewProjectService(repos.projects, repos.workers)
	projectSvc.(*projectService).now = fixedClock(testNow)
	notifySvc := NewNotificationService(repos.projects, repos.materials, repos.ledger)
	notifySvc.(*notificationService).now = func() time.Time { return testNow }
	statusSvc := NewStatusService(repos.workers, repos.projects, repos.materials, notifySvc)

	_, err := projectSvc.Add(ctx, AddProjectInput{Name: "Tower A", Deadline: "2026-12-01", SqFt: 1000})
	require.NoError(t, err)
	p2, err := projectSvc.Add(ctx, AddProjectInput{Name: "Tower B", Deadline: "2026-12-15", SqFt: 500})
	require.NoError(t, err)
	_, err = projectSvc.AdjustProgress(ctx, p2.ID, 50)
	require.NoError(t, err)

	_, err = workerSvc.Add(ctx, AddWorkerInput{Name: "Ravi", Role: "Mason", Project: "Tower A"})
	require.NoError(t, err)
	_, err = workerSvc.Add(ctx, AddWorkerInput{Name: "Asha", Role: "Electrician"})
	require.NoError(t, err)
	w3, err := workerSvc.Add(ctx, AddWorkerInput{Name: "Birju", Role: "Plumber"})
	require.NoError(t, err)
	_, err = workerSvc.Edit(ctx, EditWorkerInput{ID: w3.ID, Name: "Birju", Role: "Plumber", Status: "on-leave"})
	require.NoError(t, err)

	sum := statusSvc.Summary(ctx)

	assert.Equal(t, WorkerCounts{Total: 3, Available: 1, Assigned: 1, OnLeave: 1}, sum.Workers)
	assert.Equal(t, 25, sum.AverageProgress, "round((0+50)/2)")
	require.Len(t, sum.Projects, 2)

	towerA := sum.Projects[0]
	assert.Equal(t, "Tower A", towerA.Project.Name)
	assert.Equal(t, 1, towerA.Assigned)
	assert.Equal(t, 500, towerA.Estimate.CementBags)
	assert.Equal(t, "Not Started", string(towerA.Phase))

	towerB := sum.Projects[1]
	assert.Equal(t, 0, towerB.Assigned)
	assert.Equal(t, "In Progress", string(towerB.Phase))

	require.Len(t, sum.Materials, 4, "seed inventory")
	// Both projects were created "just now" plus Steel is out of stock.
	assert.Equal(t, 3, sum.Unread)
}

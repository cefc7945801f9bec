package service

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/domain"
)

// AddWorkerInput carries the add-worker form fields. Project is the raw
// selection: empty or the placeholder option means unassigned.
type AddWorkerInput struct {
	Name    string
	Role    string
	Project string
}

// EditWorkerInput carries the edit-worker form fields. Status is the manual
// selection from the form; it is overridden whenever a project is selected.
type EditWorkerInput struct {
	ID      int64
	Name    string
	Role    string
	Project string
	Status  string
}

// WorkerService maintains the worker<->project consistency invariant:
// a worker is assigned if and only if it holds a project.
type WorkerService interface {
	List(ctx context.Context) []domain.Worker
	Add(ctx context.Context, in AddWorkerInput) (*domain.Worker, error)
	Edit(ctx context.Context, in EditWorkerInput) (*domain.Worker, error)
	Delete(ctx context.Context, id int64) error
}

// AddProjectInput carries the add-project form fields.
type AddProjectInput struct {
	Name     string
	Deadline string
	SqFt     float64
}

// ProjectService owns project lifecycle including the deletion cascade that
// resets every worker assigned to the deleted project.
type ProjectService interface {
	List(ctx context.Context) []domain.Project
	Get(ctx context.Context, id int64) (*domain.Project, error)
	Add(ctx context.Context, in AddProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
	AdjustProgress(ctx context.Context, id int64, delta int) (*domain.Project, error)
}

// MaterialService manages the position-keyed inventory list.
type MaterialService interface {
	List(ctx context.Context) []domain.Material
	Add(ctx context.Context, m domain.Material) error
	ToggleStatus(ctx context.Context, index int) error
	SetQuantity(ctx context.Context, index, quantity int) error
}

// NotificationView pairs a derived notification with its read state.
type NotificationView struct {
	domain.Notification
	Read bool
}

// NotificationService derives the alert list from the live collections and
// tracks acknowledgements in the persisted read ledger.
type NotificationService interface {
	// List returns the derived notifications; when showAll is false, only
	// unread ones are included.
	List(ctx context.Context, showAll bool) []NotificationView
	UnreadCount(ctx context.Context) int
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) error
}

// WorkerCounts breaks down the crew by status.
type WorkerCounts struct {
	Total     int
	Available int
	Assigned  int
	OnLeave   int
}

// ProjectStatusView is the per-project dashboard row.
type ProjectStatusView struct {
	Project  domain.Project
	Phase    domain.ProjectPhase
	Estimate domain.MaterialsEstimate
	Assigned int
}

// StatusSummary is the dashboard payload.
type StatusSummary struct {
	Workers         WorkerCounts
	Projects        []ProjectStatusView
	Materials       []domain.Material
	AverageProgress int
	Unread          int
}

// StatusService assembles the dashboard summary.
type StatusService interface {
	Summary(ctx context.Context) StatusSummary
}

// AuthService is the credential gate: exact-match lookup over a fixed user
// list. A UI gate only, not a security boundary.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

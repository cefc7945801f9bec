package domain

type WorkerStatus string

const (
	WorkerAvailable WorkerStatus = "available"
	WorkerAssigned  WorkerStatus = "assigned"
	WorkerOnLeave   WorkerStatus = "on-leave"
)

// ValidWorkerStatuses is the canonical set of accepted worker status strings.
var ValidWorkerStatuses = map[string]bool{
	"available": true, "assigned": true, "on-leave": true,
}

type StockStatus string

const (
	StockIn  StockStatus = "In Stock"
	StockOut StockStatus = "Out of Stock"
)

// Toggled returns the opposite stock status.
func (s StockStatus) Toggled() StockStatus {
	if s == StockIn {
		return StockOut
	}
	return StockIn
}

// ProjectPhase is derived from progress and never stored.
type ProjectPhase string

const (
	PhaseNotStarted ProjectPhase = "Not Started"
	PhaseInProgress ProjectPhase = "In Progress"
	PhaseCompleted  ProjectPhase = "Completed"
)

type NotificationType string

const (
	NotifyWarning NotificationType = "warning"
	NotifySuccess NotificationType = "success"
	NotifyInfo    NotificationType = "info"
)

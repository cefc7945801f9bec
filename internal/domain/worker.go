package domain

import (
	"fmt"
	"strings"
)

// Worker is a labour record. ID is the creation time in Unix milliseconds,
// which doubles as a unique identifier.
type Worker struct {
	ID      int64        `json:"id"`
	Name    string       `json:"name"`
	Role    string       `json:"role"`
	Status  WorkerStatus `json:"status"`
	Project *string      `json:"project"`
}

// Validate checks the required fields.
func (w *Worker) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("%w: worker name is required", ErrValidation)
	}
	if strings.TrimSpace(w.Role) == "" {
		return fmt.Errorf("%w: worker role is required", ErrValidation)
	}
	return nil
}

// Assigned reports whether the worker currently holds a project assignment.
func (w *Worker) Assigned() bool {
	return w.Project != nil
}

// ProjectName returns the assigned project name, or "" when unassigned.
func (w *Worker) ProjectName() string {
	if w.Project == nil {
		return ""
	}
	return *w.Project
}

// Consistent reports whether status and project agree: assigned if and only
// if a project is set.
func (w *Worker) Consistent() bool {
	if w.Project != nil {
		return w.Status == WorkerAssigned
	}
	return w.Status == WorkerAvailable || w.Status == WorkerOnLeave
}

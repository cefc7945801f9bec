package domain

import (
	"fmt"
	"strings"
	"time"
)

// Project is a construction project. ID is the creation time in Unix
// milliseconds. Workers is a headcount snapshot taken at creation from the
// square footage; it is never recomputed afterwards.
type Project struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Deadline Date    `json:"deadline"`
	Progress int     `json:"progress"`
	SqFt     float64 `json:"sqFt"`
	Workers  int     `json:"workers"`
}

// Validate checks the required fields for a new project.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: project name is required", ErrValidation)
	}
	if p.Deadline.IsZero() {
		return fmt.Errorf("%w: project deadline is required", ErrValidation)
	}
	if p.SqFt <= 0 {
		return fmt.Errorf("%w: square footage must be positive", ErrValidation)
	}
	return nil
}

// Phase derives the display status from progress.
func (p *Project) Phase() ProjectPhase {
	switch {
	case p.Progress <= 0:
		return PhaseNotStarted
	case p.Progress >= 100:
		return PhaseCompleted
	default:
		return PhaseInProgress
	}
}

// CreatedAt recovers the creation time from the id-as-timestamp convention.
func (p *Project) CreatedAt() time.Time {
	return time.UnixMilli(p.ID)
}

// NameEquals compares project names case-insensitively after trimming,
// the same normalization used for duplicate rejection.
func (p *Project) NameEquals(name string) bool {
	return strings.EqualFold(strings.TrimSpace(p.Name), strings.TrimSpace(name))
}

// ClampProgress bounds a progress value to [0,100].
func ClampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sitedesk/sitedesk/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// WorkerStatusBadge returns a colored badge like "● assigned".
func WorkerStatusBadge(status domain.WorkerStatus) string {
	switch status {
	case domain.WorkerAvailable:
		return StyleGreen.Render("● available")
	case domain.WorkerAssigned:
		return StyleYellow.Render("● assigned")
	case domain.WorkerOnLeave:
		return StyleRed.Render("● on-leave")
	default:
		return StyleDim.Render("● unknown")
	}
}

// StockBadge returns a colored stock-status badge.
func StockBadge(status domain.StockStatus) string {
	if status == domain.StockIn {
		return StyleGreen.Render("● In Stock")
	}
	return StyleRed.Render("● Out of Stock")
}

// PhaseBadge returns a colored project-phase badge.
func PhaseBadge(phase domain.ProjectPhase) string {
	switch phase {
	case domain.PhaseCompleted:
		return StyleGreen.Render(string(phase))
	case domain.PhaseInProgress:
		return StyleYellow.Render(string(phase))
	default:
		return StyleDim.Render(string(phase))
	}
}

// NotifyBadge returns a colored marker for a notification type.
func NotifyBadge(t domain.NotificationType) string {
	switch t {
	case domain.NotifyWarning:
		return StyleYellow.Render("⚠")
	case domain.NotifySuccess:
		return StyleGreen.Render("✔")
	default:
		return StyleBlue.Render("ℹ")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

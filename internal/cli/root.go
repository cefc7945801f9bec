package cli

import (
	"github.com/sitedesk/sitedesk/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Workers       service.WorkerService
	Projects      service.ProjectService
	Materials     service.MaterialService
	Notifications service.NotificationService
	Status        service.StatusService
	Auth          service.AuthService

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// and the TUI are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "sitedesk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "sitedesk",
		Short: "Construction site dashboard: crew, projects, materials and alerts",
	}

	root.AddCommand(
		newWorkerCmd(app),
		newProjectCmd(app),
		newMaterialCmd(app),
		newNotifyCmd(app),
		newStatusCmd(app),
		newLoginCmd(app),
		newUICmd(app),
	)

	return root
}

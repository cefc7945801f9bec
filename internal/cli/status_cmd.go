package cli

import (
	"context"
	"fmt"

	"github.com/sitedesk/sitedesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the site dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			sum := app.Status.Summary(context.Background())
			fmt.Print(formatter.FormatSummary(sum))
			return nil
		},
	}
}

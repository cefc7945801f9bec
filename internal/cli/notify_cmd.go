package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sitedesk/sitedesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newNotifyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Derived alerts and the read ledger",
	}

	cmd.AddCommand(
		newNotifyListCmd(app),
		newNotifyReadCmd(app),
		newNotifyReadAllCmd(app),
	)

	return cmd
}

func newNotifyListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			list := app.Notifications.List(ctx, all)
			unread := app.Notifications.UnreadCount(ctx)
			fmt.Print(formatter.FormatNotifications(list, unread))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include already-read notifications")

	return cmd
}

func newNotifyReadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "read ID",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid notification ID %q", args[0])
			}
			if err := app.Notifications.MarkRead(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Marked %d as read\n", id)
			return nil
		},
	}
}

func newNotifyReadAllCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark every current notification as read",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Notifications.MarkAllRead(context.Background()); err != nil {
				return err
			}
			fmt.Println("All notifications marked as read")
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/sitedesk/sitedesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify dashboard credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" && app.interactive() {
				form := loginForm(&email, &password)
				if err := form.Run(); err != nil {
					return err
				}
			}

			user, err := app.Auth.Login(context.Background(), email, password)
			if err != nil {
				return err
			}

			fmt.Printf("Welcome, %s %s\n", user.Name, formatter.Dim("("+user.Role+")"))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")

	return cmd
}

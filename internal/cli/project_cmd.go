package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sitedesk/sitedesk/internal/cli/formatter"
	"github.com/sitedesk/sitedesk/internal/service"
	"github.com/spf13/cobra"
)

func parseProjectID(input string) (int64, error) {
	id, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid project ID %q", input)
	}
	return id, nil
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectRemoveCmd(app),
		newProjectListCmd(app),
		newProjectProgressCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, deadline string
	var sqFt float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if name == "" && app.interactive() {
				var sqFtStr string
				form := projectForm(&name, &deadline, &sqFtStr)
				if err := form.Run(); err != nil {
					return err
				}
				sqFt, _ = strconv.ParseFloat(sqFtStr, 64)
			}

			p, err := app.Projects.Add(ctx, service.AddProjectInput{
				Name:     name,
				Deadline: deadline,
				SqFt:     sqFt,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Added project %s (%d), due %s, crew needed: %d\n",
				p.Name, p.ID, p.Deadline, p.Workers)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name (must be unique, case-insensitive)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&sqFt, "sqft", 0, "Built-up area in square feet")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a project and release its crew",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProjectID(args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed project %d; assigned workers set back to available\n", id)
			return nil
		},
	}
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects := app.Projects.List(context.Background())
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, []string{
					strconv.FormatInt(p.ID, 10),
					p.Name,
					formatter.PhaseBadge(p.Phase()),
					formatter.RenderProgress(p.Progress, 12),
					p.Deadline.String(),
					strconv.FormatFloat(p.SqFt, 'f', -1, 64),
					strconv.Itoa(p.Workers),
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"ID", "NAME", "PHASE", "PROGRESS", "DEADLINE", "SQFT", "CREW"},
				rows,
			))
			return nil
		},
	}
}

func newProjectProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress ID DELTA",
		Short: "Adjust project progress by DELTA percent (clamped to 0-100)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProjectID(args[0])
			if err != nil {
				return err
			}
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid delta %q", args[1])
			}

			p, err := app.Projects.AdjustProgress(context.Background(), id, delta)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s %s\n", p.Name, formatter.RenderProgress(p.Progress, 20), formatter.PhaseBadge(p.Phase()))
			return nil
		},
	}
}

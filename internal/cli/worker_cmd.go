package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sitedesk/sitedesk/internal/cli/formatter"
	"github.com/sitedesk/sitedesk/internal/domain"
	"github.com/sitedesk/sitedesk/internal/service"
	"github.com/spf13/cobra"
)

func parseWorkerID(input string) (int64, error) {
	id, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid worker ID %q", input)
	}
	return id, nil
}

func findWorker(ctx context.Context, app *App, id int64) (*domain.Worker, error) {
	for _, w := range app.Workers.List(ctx) {
		if w.ID == id {
			return &w, nil
		}
	}
	return nil, fmt.Errorf("worker %d: %w", id, domain.ErrNotFound)
}

func newWorkerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Manage the crew",
	}

	cmd.AddCommand(
		newWorkerAddCmd(app),
		newWorkerEditCmd(app),
		newWorkerRemoveCmd(app),
		newWorkerListCmd(app),
	)

	return cmd
}

func newWorkerAddCmd(app *App) *cobra.Command {
	var name, role, project string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if name == "" && app.interactive() {
				form := workerForm(ctx, app, &name, &role, &project, nil)
				if err := form.Run(); err != nil {
					return err
				}
			}

			w, err := app.Workers.Add(ctx, service.AddWorkerInput{
				Name:    name,
				Role:    role,
				Project: project,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Added worker %s (%d) %s\n", w.Name, w.ID, formatter.WorkerStatusBadge(w.Status))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Worker name")
	cmd.Flags().StringVar(&role, "role", "", "Worker role (e.g. Mason, Electrician)")
	cmd.Flags().StringVar(&project, "project", "", "Project to assign (forces status to assigned)")

	return cmd
}

func newWorkerEditCmd(app *App) *cobra.Command {
	var name, role, project, status string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a worker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := parseWorkerID(args[0])
			if err != nil {
				return err
			}
			prior, err := findWorker(ctx, app, id)
			if err != nil {
				return err
			}

			// Unchanged flags keep the current values.
			if !cmd.Flags().Changed("name") {
				name = prior.Name
			}
			if !cmd.Flags().Changed("role") {
				role = prior.Role
			}
			if !cmd.Flags().Changed("project") {
				project = prior.ProjectName()
			}
			if !cmd.Flags().Changed("status") {
				status = string(prior.Status)
			}

			if cmd.Flags().NFlag() == 0 && app.interactive() {
				form := workerForm(ctx, app, &name, &role, &project, &status)
				if err := form.Run(); err != nil {
					return err
				}
			}

			w, err := app.Workers.Edit(ctx, service.EditWorkerInput{
				ID:      id,
				Name:    name,
				Role:    role,
				Project: project,
				Status:  status,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Updated worker %s (%d) %s\n", w.Name, w.ID, formatter.WorkerStatusBadge(w.Status))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Worker name")
	cmd.Flags().StringVar(&role, "role", "", "Worker role")
	cmd.Flags().StringVar(&project, "project", "", "Project to assign (empty clears the assignment)")
	cmd.Flags().StringVar(&status, "status", "", "Worker status (available|assigned|on-leave)")

	return cmd
}

func newWorkerRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a worker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseWorkerID(args[0])
			if err != nil {
				return err
			}
			if err := app.Workers.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed worker %d\n", id)
			return nil
		},
	}
}

func newWorkerListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the crew",
		RunE: func(cmd *cobra.Command, args []string) error {
			workers := app.Workers.List(context.Background())
			if len(workers) == 0 {
				fmt.Println("No workers found.")
				return nil
			}

			rows := make([][]string, 0, len(workers))
			for _, w := range workers {
				project := w.ProjectName()
				if project == "" {
					project = formatter.Dim("—")
				}
				rows = append(rows, []string{
					strconv.FormatInt(w.ID, 10),
					w.Name,
					w.Role,
					formatter.WorkerStatusBadge(w.Status),
					project,
				})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "NAME", "ROLE", "STATUS", "PROJECT"}, rows))
			return nil
		},
	}
}

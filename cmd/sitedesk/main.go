package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sitedesk/sitedesk/internal/cli"
	"github.com/sitedesk/sitedesk/internal/config"
	"github.com/sitedesk/sitedesk/internal/repository"
	"github.com/sitedesk/sitedesk/internal/service"
	"github.com/sitedesk/sitedesk/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	users, err := config.LoadUsers(cfg.UsersFile)
	if err != nil {
		return err
	}

	st, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	ctx := context.Background()

	// Wire repositories over the shared store.
	workerRepo, err := repository.NewStoreWorkerRepo(ctx, st)
	if err != nil {
		return fmt.Errorf("loading workers: %w", err)
	}
	projectRepo, err := repository.NewStoreProjectRepo(ctx, st)
	if err != nil {
		return fmt.Errorf("loading projects: %w", err)
	}
	materialRepo, err := repository.NewStoreMaterialRepo(ctx, st)
	if err != nil {
		return fmt.Errorf("loading materials: %w", err)
	}
	ledgerRepo, err := repository.NewStoreLedgerRepo(ctx, st)
	if err != nil {
		return fmt.Errorf("loading read ledger: %w", err)
	}

	// Wire services; use-case logging is opt-in.
	var observers []service.UseCaseObserver
	if cfg.Log {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	notifySvc := service.NewNotificationService(projectRepo, materialRepo, ledgerRepo, observers...)

	app := &cli.App{
		Workers:       service.NewWorkerService(workerRepo, observers...),
		Projects:      service.NewProjectService(projectRepo, workerRepo, observers...),
		Materials:     service.NewMaterialService(materialRepo, observers...),
		Notifications: notifySvc,
		Status:        service.NewStatusService(workerRepo, projectRepo, materialRepo, notifySvc),
		Auth:          service.NewAuthService(users),
	}

	// Interactive forms and the TUI need a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/juliakramer/slipway/internal/cli"
	"github.com/juliakramer/slipway/internal/db"
	"github.com/juliakramer/slipway/internal/repository"
	"github.com/juliakramer/slipway/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.slipway/slipway.db
	dbPath := os.Getenv("SLIPWAY_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".slipway", "slipway.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	personRepo := repository.NewSQLitePersonRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	assignmentRepo := repository.NewSQLiteAssignmentRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire unit of work for transactional project writes
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	var observers []service.PassObserver
	if os.Getenv("SLIPWAY_LOG_PASSES") != "" {
		observers = append(observers, service.NewLogPassObserver(os.Stderr))
	}

	app := &cli.App{
		People:      service.NewPersonService(personRepo),
		Projects:    service.NewProjectService(projectRepo, uow),
		Assignments: service.NewAssignmentService(assignmentRepo, personRepo, projectRepo),
		Settings:    service.NewSettingsService(settingsRepo),
		Forecast:    service.NewForecastService(projectRepo, personRepo, assignmentRepo, settingsRepo, observers...),
	}

	// Detect interactive terminal for the board entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmikkola/dayplan/internal/cli"
	"github.com/jmikkola/dayplan/internal/db"
	"github.com/jmikkola/dayplan/internal/planner"
	"github.com/jmikkola/dayplan/internal/repository"
	"github.com/jmikkola/dayplan/internal/schedule"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.dayplan/dayplan.db
	dbPath := os.Getenv("DAYPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".dayplan", "dayplan.db")
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	goalRepo := repository.NewSQLiteGoalLibraryRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	habitRepo := repository.NewSQLiteHabitRepo(database)
	habitEntryRepo := repository.NewSQLiteHabitEntryRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case telemetry goes to the file named by DAYPLAN_LOG, if set.
	var observer planner.UseCaseObserver = planner.NoopUseCaseObserver{}
	if logPath := os.Getenv("DAYPLAN_LOG"); logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer logFile.Close()
		observer = planner.NewLogUseCaseObserver(logFile)
	}

	alloc := schedule.NewAllocator(schedule.NewGrid(15))

	app := &cli.App{
		Composer:   planner.NewComposerService(planRepo, uow, observer),
		Scheduler:  planner.NewScheduleService(planRepo, alloc, uow, observer),
		Progress:   planner.NewProgressService(planRepo, observer),
		Goals:      planner.NewGoalLibraryService(goalRepo),
		Habits:     planner.NewHabitService(habitRepo, habitEntryRepo),
		Activities: planner.NewActivityService(activityRepo),
	}

	// Detect interactive terminal for confirmation prompts and the timeline.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

package cli

import (
	"time"

	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/jmikkola/dayplan/internal/planner"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Composer   planner.ComposerService
	Scheduler  planner.ScheduleService
	Progress   planner.ProgressService
	Goals      planner.GoalLibraryService
	Habits     planner.HabitService
	Activities planner.ActivityService

	// IsInteractive gates confirmation prompts; piped invocations never
	// block on a form.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// today returns the current plan date key.
func today() string {
	return domain.DateKey(time.Now())
}

// NewRootCmd creates the top-level "dayplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dayplan",
		Short: "Daily goal planner and schedule",
	}

	root.AddCommand(
		newPlanCmd(app),
		newGoalCmd(app),
		newHabitCmd(app),
		newActivityCmd(app),
		newScheduleCmd(app),
		newProgressCmd(app),
		newTimelineCmd(app),
	)

	return root
}

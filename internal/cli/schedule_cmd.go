package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jmikkola/dayplan/internal/cli/formatter"
	"github.com/jmikkola/dayplan/internal/planner"
	"github.com/jmikkola/dayplan/internal/schedule"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Place plan items on the daily time grid",
	}

	cmd.AddCommand(
		newScheduleSetCmd(app),
		newScheduleMoveCmd(app),
		newScheduleClearCmd(app),
		newScheduleFreeCmd(app),
		newScheduleDurationsCmd(app),
	)

	return cmd
}

// parseSlot parses an HH:MM flag into a grid slot.
func parseSlot(at string) (schedule.Slot, error) {
	clock, err := time.Parse("15:04", at)
	if err != nil {
		return schedule.Slot{}, fmt.Errorf("invalid time %q (expected HH:MM): %w", at, err)
	}
	return schedule.Slot{Hour: clock.Hour(), Minute: clock.Minute()}, nil
}

// reportSchedule prints the outcome of a schedule request, prompting to
// force past conflicts when the terminal is interactive.
func reportSchedule(app *App, result *planner.ScheduleResult, retry func(force bool) (*planner.ScheduleResult, error)) error {
	if !result.Applied {
		fmt.Printf("%s\n", formatter.FormatConflicts(result.Conflicts))
		if !app.confirm("Schedule anyway?") {
			fmt.Println("Left unscheduled.")
			return nil
		}
		var err error
		result, err = retry(true)
		if err != nil {
			return err
		}
	}

	fmt.Printf("Scheduled %q %s\n", result.Item.Title,
		formatter.ClockRange(result.Span.Start, result.Span.End))
	if result.Applied && len(result.Conflicts) > 0 {
		fmt.Printf("%s\n", formatter.Dim("Overlaps were kept as-is."))
	}
	return nil
}

func resolvePlanItem(ctx context.Context, app *App, date, input string) (string, error) {
	plan, err := app.Composer.GetOrCreate(ctx, date)
	if err != nil {
		return "", err
	}
	return resolveItemID(plan, input)
}

func newScheduleSetCmd(app *App) *cobra.Command {
	var date, at string
	var durationMin int
	var force bool

	cmd := &cobra.Command{
		Use:   "set ITEM",
		Short: "Give an item a time slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolvePlanItem(ctx, app, date, args[0])
			if err != nil {
				return err
			}
			slot, err := parseSlot(at)
			if err != nil {
				return err
			}

			result, err := app.Scheduler.Schedule(ctx, date, itemID, slot, durationMin, force)
			if err != nil {
				return err
			}
			return reportSchedule(app, result, func(force bool) (*planner.ScheduleResult, error) {
				return app.Scheduler.Schedule(ctx, date, itemID, slot, durationMin, force)
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", today(), "Plan date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&at, "at", "", "Start time (HH:MM)")
	cmd.Flags().IntVar(&durationMin, "for", 60, "Duration in minutes")
	cmd.Flags().BoolVar(&force, "force", false, "Schedule even when it overlaps")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func newScheduleMoveCmd(app *App) *cobra.Command {
	var date, at string
	var force bool

	cmd := &cobra.Command{
		Use:   "move ITEM",
		Short: "Move a scheduled item, keeping its duration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolvePlanItem(ctx, app, date, args[0])
			if err != nil {
				return err
			}
			slot, err := parseSlot(at)
			if err != nil {
				return err
			}

			result, err := app.Scheduler.Reschedule(ctx, date, itemID, slot, force)
			if err != nil {
				return err
			}
			return reportSchedule(app, result, func(force bool) (*planner.ScheduleResult, error) {
				return app.Scheduler.Reschedule(ctx, date, itemID, slot, force)
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", today(), "Plan date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&at, "at", "", "New start time (HH:MM)")
	cmd.Flags().BoolVar(&force, "force", false, "Move even when it overlaps")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func newScheduleClearCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "clear ITEM",
		Short: "Remove an item's time slot, keeping the item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolvePlanItem(ctx, app, date, args[0])
			if err != nil {
				return err
			}
			if err := app.Scheduler.ClearSchedule(ctx, date, itemID); err != nil {
				return err
			}
			fmt.Println("Cleared. The item stays on the plan.")
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", today(), "Plan date (YYYY-MM-DD)")

	return cmd
}

func newScheduleFreeCmd(app *App) *cobra.Command {
	var date string
	var durationMin, max int

	cmd := &cobra.Command{
		Use:   "free",
		Short: "Suggest free start times for a duration",
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := app.Scheduler.SuggestFreeSlots(context.Background(), date, durationMin, max)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatFreeSlots(slots, durationMin))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", today(), "Plan date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&durationMin, "for", 60, "Duration in minutes")
	cmd.Flags().IntVar(&max, "max", 5, "Maximum suggestions")

	return cmd
}

func newScheduleDurationsCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "durations ITEM",
		Short: "Suggest durations for an item based on its title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolvePlanItem(ctx, app, date, args[0])
			if err != nil {
				return err
			}
			durations, err := app.Scheduler.SuggestDurations(ctx, itemID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatDurations(durations))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", today(), "Plan date (YYYY-MM-DD)")

	return cmd
}

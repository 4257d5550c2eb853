package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jmikkola/dayplan/internal/cli/formatter"
	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "View and edit daily plans",
	}

	cmd.AddCommand(
		newPlanShowCmd(app),
		newPlanAddCmd(app),
		newPlanAdhocCmd(app),
		newPlanActivityCmd(app),
		newPlanDoneCmd(app),
		newPlanRemoveCmd(app),
	)

	return cmd
}

// spanFromFlags builds a scheduled span from --at/--for flags, or nil when
// --at was not given.
func spanFromFlags(date, at string, durationMin int) (*domain.TimeSpan, error) {
	if at == "" {
		return nil, nil
	}
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	clock, err := time.Parse("15:04", at)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q (expected HH:MM): %w", at, err)
	}
	if durationMin <= 0 {
		durationMin = 60
	}
	start := day.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute)
	return &domain.TimeSpan{Start: start, End: start.Add(time.Duration(durationMin) * time.Minute)}, nil
}

func newPlanShowCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the plan for a day, composing it if needed",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Composer.GetOrCreate(context.Background(), date)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatPlan(plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", today(), "Plan date (YYYY-MM-DD)")

	return cmd
}

func newPlanAddCmd(app *App) *cobra.Command {
	var date, at string
	var durationMin int

	cmd := &cobra.Command{
		Use:   "add GOAL",
		Short: "Add a library goal to a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}

			span, err := spanFromFlags(date, at, durationMin)
			if err != nil {
				return err
			}

			result, err := app.Composer.AddLibraryGoalToDate(ctx, goalID, date, span)
			if err != nil {
				return err
			}

			fmt.Printf("Added %q to %s\n", result.Item.Title, date)
			if len(result.Conflicts) > 0 {
				fmt.Printf("%s\n", formatter.FormatConflicts(result.Conflicts))
				fmt.Printf("%s\n", formatter.Dim("Added without a time slot. Use `dayplan schedule set` to place it."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", today(), "Plan date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&at, "at", "", "Start time (HH:MM)")
	cmd.Flags().IntVar(&durationMin, "for", 60, "Duration in minutes")

	return cmd
}

func newPlanAdhocCmd(app *App) *cobra.Command {
	var date, desc string

	cmd := &cobra.Command{
		Use:   "adhoc TITLE",
		Short: "Add a one-off goal to a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := app.Composer.AddAdHocGoal(context.Background(), date, args[0], desc)
			if err != nil {
				return err
			}
			fmt.Printf("Added %q to %s\n", item.Title, date)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", today(), "Plan date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")

	return cmd
}

func newPlanActivityCmd(app *App) *cobra.Command {
	var date, at string
	var durationMin int

	cmd := &cobra.Command{
		Use:   "activity ACTIVITY",
		Short: "Add a productive activity to a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			activityID, err := resolveActivityID(ctx, app, args[0])
			if err != nil {
				return err
			}

			span, err := spanFromFlags(date, at, durationMin)
			if err != nil {
				return err
			}

			result, err := app.Composer.AddActivityToDate(ctx, activityID, date, span)
			if err != nil {
				return err
			}

			fmt.Printf("Added %q to %s\n", result.Item.Title, date)
			if len(result.Conflicts) > 0 {
				fmt.Printf("%s\n", formatter.FormatConflicts(result.Conflicts))
				fmt.Printf("%s\n", formatter.Dim("Added without a time slot. Use `dayplan schedule set` to place it."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", today(), "Plan date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&at, "at", "", "Start time (HH:MM)")
	cmd.Flags().IntVar(&durationMin, "for", 60, "Duration in minutes")

	return cmd
}

func newPlanDoneCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "done ITEM",
		Short: "Toggle an item's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			plan, err := app.Composer.GetOrCreate(ctx, date)
			if err != nil {
				return err
			}
			itemID, err := resolveItemID(plan, args[0])
			if err != nil {
				return err
			}

			item, err := app.Composer.ToggleCompleted(ctx, date, itemID)
			if err != nil {
				return err
			}
			state := "not done"
			if item.Completed {
				state = "done"
			}
			fmt.Printf("Marked %q %s\n", item.Title, state)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", today(), "Plan date (YYYY-MM-DD)")

	return cmd
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "remove ITEM",
		Short: "Remove an item from a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			plan, err := app.Composer.GetOrCreate(ctx, date)
			if err != nil {
				return err
			}
			itemID, err := resolveItemID(plan, args[0])
			if err != nil {
				return err
			}

			if err := app.Composer.RemoveItem(ctx, date, itemID); err != nil {
				return err
			}
			fmt.Printf("Removed item %s from %s\n", itemID, date)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", today(), "Plan date (YYYY-MM-DD)")

	return cmd
}

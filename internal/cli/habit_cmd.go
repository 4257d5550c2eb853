package cli

import (
	"context"
	"fmt"

	"github.com/jmikkola/dayplan/internal/cli/formatter"
	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/spf13/cobra"
)

func newHabitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits",
	}

	cmd.AddCommand(
		newHabitAddCmd(app),
		newHabitListCmd(app),
		newHabitPauseCmd(app),
		newHabitResumeCmd(app),
		newHabitLogCmd(app),
		newHabitRemoveCmd(app),
	)

	return cmd
}

func newHabitAddCmd(app *App) *cobra.Command {
	var category, color, unit string
	var target int

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := &domain.Habit{
				Title:    args[0],
				Category: category,
				Color:    color,
				Unit:     unit,
			}
			if cmd.Flags().Changed("target") {
				h.TargetCount = &target
			}
			if err := app.Habits.Create(context.Background(), h); err != nil {
				return err
			}
			fmt.Printf("Created habit %q\n", h.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Category label")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex)")
	cmd.Flags().IntVar(&target, "target", 0, "Daily target count")
	cmd.Flags().StringVar(&unit, "unit", "", "Target unit (e.g. glasses)")

	return cmd
}

func newHabitListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, err := app.Habits.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(habits) == 0 {
				fmt.Println("No habits found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatHabitList(habits))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include paused habits")

	return cmd
}

func newHabitPauseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pause ID",
		Short: "Stop a habit from appearing on new days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			habitID, err := resolveHabitID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Habits.Pause(ctx, habitID); err != nil {
				return err
			}
			fmt.Println("Habit paused. Past days keep their instances.")
			return nil
		},
	}
}

func newHabitResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume ID",
		Short: "Resume a paused habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			habitID, err := resolveHabitID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Habits.Resume(ctx, habitID); err != nil {
				return err
			}
			fmt.Println("Habit resumed.")
			return nil
		},
	}
}

func newHabitLogCmd(app *App) *cobra.Command {
	var date string
	var count int
	var missed bool

	cmd := &cobra.Command{
		Use:   "log ID",
		Short: "Record a habit entry for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			habitID, err := resolveHabitID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var countPtr *int
			if cmd.Flags().Changed("count") {
				countPtr = &count
			}
			if err := app.Habits.RecordEntry(ctx, habitID, date, !missed, countPtr); err != nil {
				return err
			}
			fmt.Printf("Logged habit entry for %s\n", date)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", today(), "Entry date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&count, "count", 0, "Count toward the daily target")
	cmd.Flags().BoolVar(&missed, "missed", false, "Record the day as missed")

	return cmd
}

func newHabitRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a habit and its entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			habitID, err := resolveHabitID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Habits.Delete(ctx, habitID); err != nil {
				return err
			}
			fmt.Printf("Removed habit %s\n", habitID)
			return nil
		},
	}
}

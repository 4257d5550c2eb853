package cli

import (
	"context"
	"fmt"

	"github.com/jmikkola/dayplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show completion statistics",
	}

	cmd.AddCommand(
		newProgressDayCmd(app),
		newProgressWeekCmd(app),
		newProgressRollingCmd(app),
	)

	return cmd
}

func newProgressDayCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show one day's completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Progress.Daily(context.Background(), date)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatDayProgress(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", today(), "Date (YYYY-MM-DD)")

	return cmd
}

func newProgressWeekCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the week containing a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Progress.Week(context.Background(), date)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatRangeProgress(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", today(), "Any date in the week (YYYY-MM-DD)")

	return cmd
}

func newProgressRollingCmd(app *App) *cobra.Command {
	var date string
	var weeks int

	cmd := &cobra.Command{
		Use:   "rolling",
		Short: "Show a rolling window ending at a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Progress.Rolling(context.Background(), date, weeks)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatRangeProgress(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", today(), "Window end date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&weeks, "weeks", 1, "Window length in weeks")

	return cmd
}

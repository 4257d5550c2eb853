package cli

import (
	"context"
	"fmt"

	"github.com/jmikkola/dayplan/internal/cli/formatter"
	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/spf13/cobra"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage the goal library",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalUpdateCmd(app),
		newGoalAutomaticCmd(app),
		newGoalRemoveCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var desc string
	var automatic, timer bool

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a library goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := &domain.LibraryGoal{
				Title:       args[0],
				Description: desc,
				IsAutomatic: automatic,
				HasTimer:    timer,
			}
			if err := app.Goals.Create(context.Background(), g); err != nil {
				return err
			}
			fmt.Printf("Created goal %q\n", g.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().BoolVar(&automatic, "automatic", false, "Propagate to every day")
	cmd.Flags().BoolVar(&timer, "timer", false, "Track with a timer")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List library goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := app.Goals.List(context.Background())
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				fmt.Println("No goals in the library.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatGoalList(goals))
			return nil
		},
	}
}

func newGoalUpdateCmd(app *App) *cobra.Command {
	var title, desc string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a library goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			g, err := app.Goals.GetByID(ctx, goalID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				g.Title = title
			}
			if cmd.Flags().Changed("desc") {
				g.Description = desc
			}
			if err := app.Goals.Update(ctx, g); err != nil {
				return err
			}
			fmt.Printf("Updated goal %q\n", g.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&desc, "desc", "", "New description")

	return cmd
}

func newGoalAutomaticCmd(app *App) *cobra.Command {
	var off bool

	cmd := &cobra.Command{
		Use:   "automatic ID",
		Short: "Toggle daily propagation for a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Goals.SetAutomatic(ctx, goalID, !off); err != nil {
				return err
			}
			if off {
				fmt.Println("Goal no longer propagates to new days.")
			} else {
				fmt.Println("Goal now propagates to every composed day.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&off, "off", false, "Stop propagating instead")

	return cmd
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a library goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Goals.Delete(ctx, goalID); err != nil {
				return err
			}
			fmt.Printf("Removed goal %s\n", goalID)
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/jmikkola/dayplan/internal/cli/formatter"
	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage productive-activity templates",
	}

	cmd.AddCommand(
		newActivityAddCmd(app),
		newActivityListCmd(app),
		newActivityUpdateCmd(app),
		newActivityRetireCmd(app),
	)

	return cmd
}

func newActivityAddCmd(app *App) *cobra.Command {
	var category string
	var estimate int

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create an activity template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := &domain.ProductiveActivity{
				Name:     args[0],
				Category: category,
			}
			if cmd.Flags().Changed("estimate") {
				a.EstimatedMin = &estimate
			}
			if err := app.Activities.Create(context.Background(), a); err != nil {
				return err
			}
			fmt.Printf("Created activity %q\n", a.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Category label")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "Estimated minutes")

	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activity templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.Activities.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(activities) == 0 {
				fmt.Println("No activities found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatActivityList(activities))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include retired activities")

	return cmd
}

func newActivityUpdateCmd(app *App) *cobra.Command {
	var name, category string
	var estimate int

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an activity template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			activityID, err := resolveActivityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			a, err := app.Activities.GetByID(ctx, activityID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				a.Name = name
			}
			if cmd.Flags().Changed("category") {
				a.Category = category
			}
			if cmd.Flags().Changed("estimate") {
				a.EstimatedMin = &estimate
			}
			if err := app.Activities.Update(ctx, a); err != nil {
				return err
			}
			fmt.Printf("Updated activity %q\n", a.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&category, "category", "", "New category")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "Estimated minutes")

	return cmd
}

func newActivityRetireCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "retire ID",
		Short: "Retire an activity template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			activityID, err := resolveActivityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Activities.Deactivate(ctx, activityID); err != nil {
				return err
			}
			fmt.Printf("Retired activity %s\n", activityID)
			return nil
		},
	}
}

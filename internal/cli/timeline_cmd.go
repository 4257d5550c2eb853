package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Interactive day view",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("timeline requires an interactive terminal")
			}
			p := tea.NewProgram(newTimelineModel(app, date), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", today(), "Plan date (YYYY-MM-DD)")

	return cmd
}

package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Interactive delivery board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("board requires an interactive terminal; use `slipway forecast` instead")
			}

			p := tea.NewProgram(newBoardModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}

package cli

import (
	"github.com/juliakramer/slipway/internal/app"
	"github.com/juliakramer/slipway/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	People      service.PersonService
	Projects    service.ProjectService
	Assignments service.AssignmentService
	Settings    service.SettingsService
	Forecast    app.ForecastUseCase

	// IsInteractive reports whether stdin is a terminal; the board view
	// refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "slipway" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "slipway",
		Short: "Vacation-aware delivery forecaster for project portfolios",
	}

	root.AddCommand(
		newPersonCmd(app),
		newProjectCmd(app),
		newAssignCmd(app),
		newUnassignCmd(app),
		newForecastCmd(app),
		newBoardCmd(app),
		newConfigCmd(app),
	)

	return root
}

package cli

import (
	"time"

	"github.com/alexanderramin/shiftpace/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Settings service.SettingsService
	Actuals  service.ActualsService
	Pace     service.PaceService
	History  service.HistoryService

	// RefreshInterval drives the dashboard tick and the default watch period.
	RefreshInterval time.Duration

	// IsInteractive reports whether stdin is a terminal. Bare `shiftpace`
	// opens the dashboard only when it returns true.
	IsInteractive func() bool

	// Now is the wall clock; tests pin it to a fixed shift instant.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) refreshInterval() time.Duration {
	if a.RefreshInterval > 0 {
		return a.RefreshInterval
	}
	return 60 * time.Second
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "shiftpace" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "shiftpace",
		Short:         "Warehouse shift pace monitor for picking and packing",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runDashboard(cmd, app)
			}
			return runStatus(cmd, app, statusFlags{lastHour: true, checkpoints: true})
		},
	}

	root.AddCommand(
		newSettingsCmd(app),
		newUpdateCmd(app),
		newSaveCmd(app),
		newResetCmd(app),
		newCheckpointCmd(app),
		newStatusCmd(app),
		newWatchCmd(app),
		newHistoryCmd(app),
		newDashboardCmd(app),
	)

	return root
}

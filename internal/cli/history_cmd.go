package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/shiftpace/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var since time.Duration

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded pace snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			if since <= 0 {
				return fmt.Errorf("--since must be positive, got %s", since)
			}
			snaps, err := app.History.History(cmd.Context(), app.now().Add(-since))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(snaps))
			return nil
		},
	}

	cmd.Flags().DurationVar(&since, "since", 8*time.Hour, "How far back to look")
	return cmd
}

package cli

import (
	"fmt"

	"github.com/alexanderramin/shiftpace/internal/app"
	"github.com/alexanderramin/shiftpace/internal/cli/formatter"
	"github.com/spf13/cobra"
)

type statusFlags struct {
	at          string
	lastHour    bool
	record      bool
	checkpoints bool
}

func newStatusCmd(app *App) *cobra.Command {
	var flags statusFlags

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show deviations, required speeds and staffing advice",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.at, "at", "", "Evaluate at another time today (HH:MM)")
	cmd.Flags().BoolVar(&flags.lastHour, "last-hour", true, "Include last-hour staffing indicators")
	cmd.Flags().BoolVar(&flags.record, "record", false, "Store a pace snapshot for the history chart")
	cmd.Flags().BoolVar(&flags.checkpoints, "checkpoints", true, "Show the checkpoint table")

	return cmd
}

func runStatus(cmd *cobra.Command, a *App, flags statusFlags) error {
	resp, err := a.Pace.Status(cmd.Context(), flags.request(a))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, formatter.FormatPaceStatus(resp))
	if flags.checkpoints && resp.Configured && len(resp.Checkpoints) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, formatter.Header("Checkpoints"))
		fmt.Fprint(out, formatter.FormatCheckpoints(resp.Checkpoints))
	}
	if resp.SnapshotID != "" {
		fmt.Fprintln(out, formatter.Dim("Snapshot "+formatter.TruncID(resp.SnapshotID)+" recorded."))
	}
	return nil
}

func (f statusFlags) request(a *App) app.PaceRequest {
	req := app.NewPaceRequest()
	now := a.now()
	req.Now = &now
	req.At = f.at
	req.IncludeLastHour = f.lastHour
	req.RecordSnapshot = f.record
	return req
}

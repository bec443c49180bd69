package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/shiftpace/internal/app"
	"github.com/alexanderramin/shiftpace/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newUpdateCmd(app *App) *cobra.Command {
	var picked, packed int

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Record running totals of picked and packed orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := app.now()
			if !cmd.Flags().Changed("picked") || !cmd.Flags().Changed("packed") {
				current, err := app.Actuals.Get(ctx, now)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("picked") {
					picked = current.PickedActual
				}
				if !cmd.Flags().Changed("packed") {
					packed = current.PackedActual
				}
			}

			state, err := app.Actuals.UpdateTotals(ctx, picked, packed, now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Totals updated: picked %d, packed %d.\n", state.PickedActual, state.PackedActual)
			return nil
		},
	}

	cmd.Flags().IntVar(&picked, "picked", 0, "Orders picked so far")
	cmd.Flags().IntVar(&packed, "packed", 0, "Orders packed so far")
	cmd.MarkFlagsOneRequired("picked", "packed")

	return cmd
}

func newSaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save the current actuals and checkpoint records",
		RunE: func(cmd *cobra.Command, args []string) error {
			ack, err := app.Actuals.Save(cmd.Context(), app.now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSaveAck(ack))
			return nil
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear actuals and checkpoint records",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Actuals.Reset(cmd.Context()); err != nil {
				return err
			}
			if all {
				if err := app.Settings.Reset(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Actuals and shift settings cleared.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Actuals cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Also clear the shift settings")
	return cmd
}

func newCheckpointCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checkpoint",
		Aliases: []string{"cps"},
		Short:   "Inspect and edit checkpoint records",
	}

	cmd.AddCommand(
		newCheckpointListCmd(app),
		newCheckpointSetCmd(app),
		newCheckpointRmCmd(app),
	)

	return cmd
}

func newCheckpointListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List checkpoint records with planned and actual figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := app.Actuals.Get(cmd.Context(), app.now())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCheckpointRecords(state.CPData))
			return nil
		},
	}
}

func newCheckpointSetCmd(a *App) *cobra.Command {
	var at string
	var picked, packed int

	cmd := &cobra.Command{
		Use:   "set <number>",
		Short: "Edit a checkpoint's time or actual counts",
		Example: `  shiftpace checkpoint set 1 --picked 210 --packed 190
  shiftpace checkpoint set 2 --time 12:30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := checkpointIndex(args[0])
			if err != nil {
				return err
			}

			var edit app.CheckpointEdit
			if cmd.Flags().Changed("time") {
				edit.Time = &at
			}
			if cmd.Flags().Changed("picked") {
				edit.ActualPicked = &picked
			}
			if cmd.Flags().Changed("packed") {
				edit.ActualPacked = &packed
			}

			rec, err := a.Actuals.EditCheckpoint(cmd.Context(), pos, edit, a.now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Checkpoint #%d at %s: planned %.2f/%.2f, actual %d/%d.\n",
				pos+1, rec.Time, rec.PlannedPicking, rec.PlannedPacking, rec.ActualPicked, rec.ActualPacked)
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "time", "", "New checkpoint time (HH:MM); replans the targets")
	cmd.Flags().IntVar(&picked, "picked", 0, "Orders picked at the checkpoint")
	cmd.Flags().IntVar(&packed, "packed", 0, "Orders packed at the checkpoint")

	return cmd
}

func newCheckpointRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <number>",
		Short: "Delete a checkpoint record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := checkpointIndex(args[0])
			if err != nil {
				return err
			}
			if err := app.Actuals.DeleteCheckpoint(cmd.Context(), pos, app.now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Checkpoint #%d removed.\n", pos+1)
			return nil
		},
	}
}

// checkpointIndex converts the listed 1-based number into a record position.
// Range checks happen in the service.
func checkpointIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("checkpoint number must be a positive integer, got %q", arg)
	}
	return n - 1, nil
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/alexanderramin/shiftpace/internal/app"
	"github.com/alexanderramin/shiftpace/internal/cli/formatter"
	"github.com/alexanderramin/shiftpace/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"config"},
		Short:   "Manage the shift configuration",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
		newSettingsEditCmd(app),
		newSettingsImportCmd(app),
		newSettingsResetCmd(app),
		newBreakCmd(app),
		newControlPointCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current shift configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(cfg, app.now()))
			return nil
		},
	}
}

// shiftFlags are the scalar settings fields exposed as flags by `settings set`.
type shiftFlags struct {
	start, end   string
	orders       int
	speed        float64
	pickingSpeed float64
	packingSpeed float64
	staff        int
}

func (f *shiftFlags) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("shift", pflag.ContinueOnError)
	fs.StringVar(&f.start, "start", "", "Shift start (HH:MM)")
	fs.StringVar(&f.end, "end", "", "Shift end (HH:MM)")
	fs.IntVar(&f.orders, "orders", 0, "Expected orders for the shift")
	fs.Float64Var(&f.speed, "speed", 0, "Average speed for both processes (units/h per worker)")
	fs.Float64Var(&f.pickingSpeed, "picking-speed", 0, "Average picking speed (units/h per worker)")
	fs.Float64Var(&f.packingSpeed, "packing-speed", 0, "Average packing speed (units/h per worker)")
	fs.IntVar(&f.staff, "staff", 0, "Staff planned for the last hour")
	return fs
}

// apply copies every changed flag onto cfg. Uniform speed is applied before
// per-process overrides.
func (f *shiftFlags) apply(flags *pflag.FlagSet, cfg *domain.ShiftConfig) int {
	changed := 0
	mark := func(name string, set func()) {
		if flags.Changed(name) {
			set()
			changed++
		}
	}
	mark("start", func() { cfg.ShiftStart = f.start })
	mark("end", func() { cfg.ShiftEnd = f.end })
	mark("orders", func() { cfg.ExpectedOrders = f.orders })
	mark("speed", func() { cfg.SetUniformSpeed(f.speed) })
	mark("picking-speed", func() { cfg.AvgPickingSpeed = f.pickingSpeed })
	mark("packing-speed", func() { cfg.AvgPackingSpeed = f.packingSpeed })
	mark("staff", func() { cfg.StaffForLastPeriod = f.staff })
	return changed
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var flags shiftFlags

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update shift settings from flags",
		Example: `  shiftpace settings set --start 08:00 --end 16:00 --orders 800 --speed 25 --staff 2
  shiftpace settings set --packing-speed 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			if flags.apply(cmd.Flags(), cfg) == 0 {
				return fmt.Errorf("no settings changed; see --help for the available flags")
			}
			return saveSettings(cmd, app, cfg)
		},
	}

	cmd.Flags().AddFlagSet(flags.flagSet())
	return cmd
}

func newSettingsEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit shift settings in an interactive form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("settings edit needs a terminal; use `settings set` or `settings import`")
			}
			cfg, err := app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			values := settingsFormFrom(cfg)
			if err := newSettingsForm(values).Run(); err != nil {
				return err
			}
			edited, err := values.toConfig()
			if err != nil {
				return err
			}
			return saveSettings(cmd, app, edited)
		},
	}
}

func newSettingsImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace shift settings from a YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Settings.Import(cmd.Context(), args[0])
			if err != nil {
				return reportSettingsError(cmd.OutOrStdout(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported shift %s - %s (%d breaks, %d control points).\n",
				res.Settings.ShiftStart, res.Settings.ShiftEnd, res.BreakCount, res.CheckpointCount)
			return nil
		},
	}
}

func newSettingsResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the shift configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Shift settings cleared.")
			return nil
		},
	}
}

func newBreakCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "break",
		Short: "Manage shift breaks",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <start> <end>",
			Short: "Add a break",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := parseBreak(args[0], args[1])
				if err != nil {
					return err
				}
				return updateSettings(cmd, app, func(cfg *domain.ShiftConfig) error {
					cfg.Breaks = append(cfg.Breaks, b)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "rm <number>",
			Short: "Remove a break by its listed number",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return updateSettings(cmd, app, func(cfg *domain.ShiftConfig) error {
					i, err := parsePosition(args[0], len(cfg.Breaks), "break")
					if err != nil {
						return err
					}
					cfg.Breaks = append(cfg.Breaks[:i], cfg.Breaks[i+1:]...)
					return nil
				})
			},
		},
	)

	return cmd
}

func newControlPointCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cp",
		Aliases: []string{"control-point"},
		Short:   "Manage control points",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <time>",
			Short: "Add a control point",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				tod, err := domain.ParseTimeStrict(args[0])
				if err != nil {
					return err
				}
				return updateSettings(cmd, app, func(cfg *domain.ShiftConfig) error {
					cfg.ControlPoints = append(cfg.ControlPoints, domain.ControlPoint{Time: tod.String()})
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "rm <number>",
			Short: "Remove a control point by its listed number",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return updateSettings(cmd, app, func(cfg *domain.ShiftConfig) error {
					i, err := parsePosition(args[0], len(cfg.ControlPoints), "control point")
					if err != nil {
						return err
					}
					cfg.ControlPoints = append(cfg.ControlPoints[:i], cfg.ControlPoints[i+1:]...)
					return nil
				})
			},
		},
	)

	return cmd
}

func updateSettings(cmd *cobra.Command, a *App, fn func(cfg *domain.ShiftConfig) error) error {
	cfg, err := a.Settings.Get(cmd.Context())
	if err != nil {
		return err
	}
	if err := fn(cfg); err != nil {
		return err
	}
	return saveSettings(cmd, a, cfg)
}

func saveSettings(cmd *cobra.Command, a *App, cfg *domain.ShiftConfig) error {
	if err := a.Settings.Save(cmd.Context(), cfg); err != nil {
		return reportSettingsError(cmd.OutOrStdout(), err)
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(cfg, a.now()))
	return nil
}

// reportSettingsError prints every validation message before returning the error.
func reportSettingsError(w io.Writer, err error) error {
	var verr *app.SettingsValidationError
	if errors.As(err, &verr) {
		fmt.Fprint(w, formatter.FormatValidationError(verr))
	}
	return err
}

// parsePosition converts a 1-based listed number into a slice index.
func parsePosition(arg string, n int, what string) (int, error) {
	pos, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s number must be an integer, got %q", what, arg)
	}
	if pos < 1 || pos > n {
		return 0, fmt.Errorf("no %s #%d (have %d)", what, pos, n)
	}
	return pos - 1, nil
}

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alexanderramin/shiftpace/internal/cli/formatter"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

// watchParser accepts standard 5-field expressions and descriptors such as
// "@every 60s" or "@hourly".
var watchParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

func newWatchCmd(app *App) *cobra.Command {
	var every time.Duration
	var schedule string
	var times int
	var record bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reprint a one-line pace summary on a schedule until interrupted",
		Example: `  shiftpace watch --every 30s
  shiftpace watch --cron "*/15 * * * *" --record`,
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := watchSchedule(schedule, every, app.refreshInterval())
			if err != nil {
				return err
			}
			sched, err := watchParser.Parse(expr)
			if err != nil {
				return fmt.Errorf("invalid watch schedule %q: %w", expr, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, cmd, app, sched, times, statusFlags{lastHour: true, record: record})
		},
	}

	cmd.Flags().DurationVar(&every, "every", 0, "Refresh period (defaults to the configured refresh interval)")
	cmd.Flags().StringVar(&schedule, "cron", "", "Cron expression instead of a fixed period")
	cmd.Flags().IntVar(&times, "times", 0, "Stop after this many summaries (0 runs until interrupted)")
	cmd.Flags().BoolVar(&record, "record", false, "Store a pace snapshot on every refresh")
	cmd.MarkFlagsMutuallyExclusive("every", "cron")

	return cmd
}

func watchSchedule(expr string, every, fallback time.Duration) (string, error) {
	if expr = strings.TrimSpace(expr); expr != "" {
		return expr, nil
	}
	if every == 0 {
		every = fallback
	}
	if every < time.Second {
		return "", fmt.Errorf("watch period must be at least 1s, got %s", every)
	}
	return "@every " + every.String(), nil
}

// runWatch prints immediately, then on every scheduled activation. It returns
// when ctx is cancelled or after times summaries.
func runWatch(ctx context.Context, cmd *cobra.Command, a *App, sched cron.Schedule, times int, flags statusFlags) error {
	out := cmd.OutOrStdout()
	printed := 0
	for {
		resp, err := a.Pace.Status(ctx, flags.request(a))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, formatter.FormatPaceLine(resp))
		printed++
		if times > 0 && printed >= times {
			return nil
		}

		now := time.Now()
		timer := time.NewTimer(sched.Next(now).Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

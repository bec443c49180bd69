package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/shiftpace/internal/app"
)

const paceProgressBarWidth = 16

// FormatPaceStatus renders the pace status panel.
func FormatPaceStatus(resp *app.PaceResponse) string {
	var b strings.Builder

	if !resp.Configured {
		b.WriteString(PaceIndicator(resp.Overall) + "\n\n")
		b.WriteString(Dim(resp.PolicyMessage) + "\n")
		writeWarnings(&b, resp.Warnings)
		return RenderBox("Shift Pace", b.String())
	}

	c := resp.Clock
	b.WriteString(fmt.Sprintf("%s %s-%s   %s %s\n",
		Dim("Shift"), Bold(c.ShiftStart), Bold(c.ShiftEnd),
		Dim("Evaluated at"), Bold(resp.EvaluatedAt.Format("15:04")),
	))
	b.WriteString(fmt.Sprintf("%s %s  %s of %s worked, %s left",
		Dim("Time"),
		RenderProgress(c.ProgressPct/100, paceProgressBarWidth, StyleBlue),
		FormatHours(c.HoursPassed), FormatHours(c.TotalWorkTime), FormatHours(c.HoursLeft),
	))
	if c.BreakHours > 0 {
		b.WriteString(Dim(fmt.Sprintf(" (breaks %s)", FormatHours(c.BreakHours))))
	}
	b.WriteString("\n\n")

	headers := []string{"PROCESS", "TARGET", "ACTUAL", "EXPECTED", "DEVIATION", "REQ/H", "PROGRESS", "PACE"}
	rows := make([][]string, 0, len(resp.Processes))
	for _, p := range resp.Processes {
		rows = append(rows, []string{
			Bold(string(p.Process)),
			fmt.Sprintf("%d", p.Target),
			fmt.Sprintf("%d", p.Actual),
			fmt.Sprintf("%.2f", p.Expected),
			SignedStyled(p.Deviation),
			fmt.Sprintf("%.2f", p.RequiredSpeed),
			RenderFulfilment(float64(p.Actual), p.Expected, 10),
			PaceIndicator(p.PaceLevel),
		})
	}
	b.WriteString(RenderTableAligned(headers, rows, []bool{false, true, true, true, true, true}))

	b.WriteString("\n" + Header("Recommendations") + "\n")
	for _, p := range resp.Processes {
		b.WriteString("  " + PaceColor(p.PaceLevel).Render("›") + " " + p.Recommendation + "\n")
	}

	if hasLastHour(resp) {
		b.WriteString("\n" + Header("Last hour") + "\n")
		for _, p := range resp.Processes {
			if p.LastHour == nil {
				continue
			}
			b.WriteString("  " + formatLastHour(string(p.Process), p.LastHour) + "\n")
		}
	}

	b.WriteString("\n" + PaceIndicator(resp.Overall) + "  " + Dim(resp.PolicyMessage) + "\n")
	if resp.SnapshotID != "" {
		b.WriteString(Dim("Snapshot recorded ") + TruncID(resp.SnapshotID) + "\n")
	}
	writeWarnings(&b, resp.Warnings)

	return RenderBox("Shift Pace", b.String())
}

func hasLastHour(resp *app.PaceResponse) bool {
	for _, p := range resp.Processes {
		if p.LastHour != nil {
			return true
		}
	}
	return false
}

func formatLastHour(process string, lh *app.LastHourView) string {
	verdict := StyleGreen.Render("✔ will meet")
	if !lh.WillMeet {
		verdict = StyleRed.Render("✖ short")
	}
	return fmt.Sprintf("%-8s %.2f units for the final hour, %.2f staff needed (%d planned)  %s",
		process, lh.UnitsLeft, lh.RequiredStaff, lh.PlannedStaff, verdict)
}

func writeWarnings(b *strings.Builder, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	b.WriteString("\n")
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("  WARNING: "+w) + "\n")
	}
}

// FormatPaceLine is the one-line summary printed by watch on each tick.
func FormatPaceLine(resp *app.PaceResponse) string {
	if !resp.Configured {
		return fmt.Sprintf("%s %s", Dim(resp.GeneratedAt.Format("15:04:05")), resp.PolicyMessage)
	}
	parts := make([]string, 0, len(resp.Processes))
	for _, p := range resp.Processes {
		parts = append(parts, fmt.Sprintf("%s %d/%.0f (%s)", p.Process, p.Actual, p.Expected, FormatSigned(p.Deviation)))
	}
	return fmt.Sprintf("%s %s  %s", Dim(resp.GeneratedAt.Format("15:04:05")), PaceIndicator(resp.Overall), strings.Join(parts, "  "))
}

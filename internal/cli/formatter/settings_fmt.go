package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/shiftpace/internal/app"
	"github.com/alexanderramin/shiftpace/internal/domain"
)

// FormatSettings renders the shift configuration.
func FormatSettings(cfg *domain.ShiftConfig, now time.Time) string {
	if !cfg.IsConfigured() {
		return RenderBox("Shift Settings", Dim("Shift not configured. Run `shiftpace settings set` or `shiftpace settings edit`."))
	}

	var b strings.Builder
	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%-22s", label)), value))
	}

	field("Shift", Bold(cfg.ShiftStart+" - "+cfg.ShiftEnd))
	field("Expected orders", fmt.Sprintf("%d", cfg.ExpectedOrders))
	field("Picking speed", fmt.Sprintf("%.2f units/h per worker", cfg.AvgPickingSpeed))
	field("Packing speed", fmt.Sprintf("%.2f units/h per worker", cfg.AvgPackingSpeed))
	field("Staff for last hour", fmt.Sprintf("%d", cfg.StaffForLastPeriod))
	field("Updated", HumanTimestampFrom(cfg.UpdatedAt, now))

	b.WriteString("\n" + Header("Breaks") + "\n")
	if len(cfg.Breaks) == 0 {
		b.WriteString(Dim("  none") + "\n")
	}
	for i, br := range cfg.Breaks {
		b.WriteString(fmt.Sprintf("  %d. %s - %s\n", i+1, orDash(br.Start), orDash(br.End)))
	}

	b.WriteString("\n" + Header("Control points") + "\n")
	if len(cfg.ControlPoints) == 0 {
		b.WriteString(Dim("  none") + "\n")
	}
	for i, cp := range cfg.ControlPoints {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, orDash(cp.Time)))
	}

	return RenderBox("Shift Settings", b.String())
}

// FormatValidationError lists every broken settings rule.
func FormatValidationError(err *app.SettingsValidationError) string {
	var b strings.Builder
	b.WriteString(StyleRed.Render(fmt.Sprintf("Settings rejected (%d problems):", len(err.Messages))) + "\n")
	for _, m := range err.Messages {
		b.WriteString("  - " + m + "\n")
	}
	return b.String()
}

// FormatSaveAck is the confirmation shown after an explicit save.
func FormatSaveAck(ack *app.SaveAck) string {
	return StyleGreen.Render("✔ "+ack.Message()) +
		Dim(fmt.Sprintf("  picked %d, packed %d, %d checkpoints", ack.PickedActual, ack.PackedActual, ack.Checkpoints))
}

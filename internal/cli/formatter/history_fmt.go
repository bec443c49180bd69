package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/shiftpace/internal/domain"
)

// FormatHistory renders stored pace snapshots, oldest first.
func FormatHistory(snaps []*domain.PaceSnapshot) string {
	if len(snaps) == 0 {
		return Dim("No pace snapshots recorded. Use `shiftpace status --record` or `shiftpace watch`.") + "\n"
	}

	headers := []string{"TIME", "WORKED", "PICKED", "Δ PICK", "PACKED", "Δ PACK", "PACE"}
	rows := make([][]string, 0, len(snaps))
	picking := make([]float64, 0, len(snaps))
	packing := make([]float64, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, []string{
			s.TakenAt.Local().Format("Jan 2 15:04"),
			FormatHours(s.HoursPassed),
			fmt.Sprintf("%d", s.PickedActual),
			SignedStyled(s.DeviationPicking),
			fmt.Sprintf("%d", s.PackedActual),
			SignedStyled(s.DeviationPacking),
			PaceIndicator(s.PaceLevel),
		})
		picking = append(picking, s.DeviationPicking)
		packing = append(packing, s.DeviationPacking)
	}

	var b strings.Builder
	b.WriteString(RenderTableAligned(headers, rows, []bool{false, true, true, true, true, true}))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("picking "), Sparkline(picking)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("packing "), Sparkline(packing)))
	return b.String()
}

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Sparkline scales values onto block glyphs between their min and max.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	var b strings.Builder
	for _, v := range values {
		idx := len(sparkBlocks) / 2
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkBlocks)-1))
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}

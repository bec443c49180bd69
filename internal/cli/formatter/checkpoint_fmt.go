package formatter

import (
	"fmt"

	"github.com/alexanderramin/shiftpace/internal/app"
	"github.com/alexanderramin/shiftpace/internal/domain"
)

// FormatCheckpoints renders planned-vs-actual rows per checkpoint.
func FormatCheckpoints(views []app.CheckpointView) string {
	if len(views) == 0 {
		return Dim("No checkpoints configured.") + "\n"
	}

	headers := []string{"#", "TIME", "PLAN PICK", "PICKED", "Δ PICK", "PLAN PACK", "PACKED", "Δ PACK", ""}
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		marker := Dim("upcoming")
		pick, pack := Dim("--"), Dim("--")
		if v.Reached {
			marker = StyleGreen.Render("reached")
			pick, pack = SignedStyled(v.DeltaPicking), SignedStyled(v.DeltaPacking)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", v.Position+1),
			orDash(v.Time),
			fmt.Sprintf("%.2f", v.PlannedPicking),
			fmt.Sprintf("%d", v.ActualPicked),
			pick,
			fmt.Sprintf("%.2f", v.PlannedPacking),
			fmt.Sprintf("%d", v.ActualPacked),
			pack,
			marker,
		})
	}
	return RenderTableAligned(headers, rows, []bool{true, false, true, true, true, true, true, true})
}

// FormatCheckpointRecords renders stored records without evaluation context.
func FormatCheckpointRecords(records []domain.CheckpointRecord) string {
	views := make([]app.CheckpointView, len(records))
	for i, r := range records {
		views[i] = app.CheckpointView{
			Position:       i,
			Time:           r.Time,
			PlannedPicking: r.PlannedPicking,
			PlannedPacking: r.PlannedPacking,
			ActualPicked:   r.ActualPicked,
			ActualPacked:   r.ActualPacked,
			DeltaPicking:   float64(r.ActualPicked) - r.PlannedPicking,
			DeltaPacking:   float64(r.ActualPacked) - r.PlannedPacking,
			Reached:        true,
		}
	}
	return FormatCheckpoints(views)
}

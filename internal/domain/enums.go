package domain

type Process string

const (
	ProcessPicking Process = "picking"
	ProcessPacking Process = "packing"
)

// TrackedProcesses lists the processes in display order.
var TrackedProcesses = []Process{ProcessPicking, ProcessPacking}

type PaceLevel string

const (
	PaceAhead    PaceLevel = "ahead"
	PaceOnPlan   PaceLevel = "on_plan"
	PaceBehind   PaceLevel = "behind"
	PaceCritical PaceLevel = "critical"
	PaceUnknown  PaceLevel = "unknown"
)

package core

import "github.com/sayedbaharun/aura/pkg/models"

// Usage is the committed effort of one (date, slot) cell.
type Usage struct {
	UsedHours float64 `json:"used_hours"`
	TaskCount int     `json:"task_count"`
}

// CellUsage sums the estimated effort of the tasks in a cell. Tasks with
// no estimate count as zero hours. Pure reduction over the given slice.
func CellUsage(tasks []models.Task) Usage {
	u := Usage{TaskCount: len(tasks)}
	for _, t := range tasks {
		if t.EstEffort > 0 {
			u.UsedHours += t.EstEffort
		}
	}
	return u
}

// CapacityLevel grades how full a cell is.
type CapacityLevel string

const (
	LevelOK      CapacityLevel = "ok"
	LevelWarning CapacityLevel = "warning"
	LevelOver    CapacityLevel = "over"
)

// Thresholds are the ratio cut-offs for capacity levels. These are product
// tuning constants, not physical limits; they can be changed in config.
type Thresholds struct {
	Warn float64
	Over float64
}

// DefaultThresholds returns the stock warning (70%) and over (100%) ratios.
func DefaultThresholds() Thresholds {
	return Thresholds{Warn: 0.7, Over: 1.0}
}

// Status is the graded capacity state of a cell.
type Status struct {
	Ratio float64       `json:"ratio"`
	Level CapacityLevel `json:"level"`
}

// CapacityStatus grades used hours against a slot capacity. Zero-capacity
// slots never produce a NaN or Inf ratio: any positive usage is "over",
// otherwise "ok".
func CapacityStatus(used, capacity float64, th Thresholds) Status {
	if capacity <= 0 {
		if used > 0 {
			return Status{Ratio: 0, Level: LevelOver}
		}
		return Status{Ratio: 0, Level: LevelOK}
	}
	ratio := used / capacity
	switch {
	case ratio > th.Over:
		return Status{Ratio: ratio, Level: LevelOver}
	case ratio > th.Warn:
		return Status{Ratio: ratio, Level: LevelWarning}
	}
	return Status{Ratio: ratio, Level: LevelOK}
}

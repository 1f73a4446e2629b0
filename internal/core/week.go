package core

import "github.com/sayedbaharun/aura/pkg/models"

// Cell is one (date, slot) position of the weekly calendar together with
// the tasks assigned to it and its computed capacity state. Cells are
// derived views; they are recomputed from a task snapshot and never
// persisted.
type Cell struct {
	Date   models.Date
	Slot   string
	Tasks  []models.Task
	Usage  Usage
	Status Status
}

type cellKey struct {
	date models.Date
	slot string
}

// WeekGrid is the weekly calendar view: a date range crossed with the
// slot catalog. Built in one pass over a task snapshot and read-only
// afterwards.
type WeekGrid struct {
	Start   models.Date
	Days    int
	catalog *Catalog
	th      Thresholds
	cells   map[cellKey]*Cell
}

// BuildWeek groups a task snapshot into cells for the date range starting
// at start and spanning days calendar days. Tasks scheduled outside the
// range are ignored. Capacity state is computed per cell with the shared
// accounting functions, so all views agree on the numbers.
func BuildWeek(tasks []models.Task, start models.Date, days int, catalog *Catalog, th Thresholds) *WeekGrid {
	g := &WeekGrid{
		Start:   start,
		Days:    days,
		catalog: catalog,
		th:      th,
		cells:   make(map[cellKey]*Cell),
	}

	end := start.AddDays(days)
	for _, t := range tasks {
		if !t.Scheduled() || t.Status == models.StatusCancelled {
			continue
		}
		if models.DaysBetween(start, t.FocusDate) < 0 || models.DaysBetween(t.FocusDate, end) <= 0 {
			continue
		}
		k := cellKey{date: t.FocusDate, slot: t.FocusSlot}
		c, ok := g.cells[k]
		if !ok {
			c = &Cell{Date: t.FocusDate, Slot: t.FocusSlot}
			g.cells[k] = c
		}
		c.Tasks = append(c.Tasks, t)
	}

	for _, c := range g.cells {
		c.Usage = CellUsage(c.Tasks)
		c.Status = CapacityStatus(c.Usage.UsedHours, catalog.CapacityHours(c.Slot), th)
	}

	return g
}

// Dates returns the calendar dates the grid spans, in order.
func (g *WeekGrid) Dates() []models.Date {
	out := make([]models.Date, g.Days)
	for i := range out {
		out[i] = g.Start.AddDays(i)
	}
	return out
}

// Cell returns the cell at (date, slot). Empty cells are materialized on
// demand with ok-level status so callers can render a full grid without
// nil checks.
func (g *WeekGrid) Cell(date models.Date, slot string) Cell {
	if c, ok := g.cells[cellKey{date: date, slot: slot}]; ok {
		return *c
	}
	return Cell{
		Date:   date,
		Slot:   slot,
		Status: CapacityStatus(0, g.catalog.CapacityHours(slot), g.th),
	}
}

// DayUsage sums committed hours across every slot of one date.
func (g *WeekGrid) DayUsage(date models.Date) Usage {
	var u Usage
	for k, c := range g.cells {
		if k.date == date {
			u.UsedHours += c.Usage.UsedHours
			u.TaskCount += c.Usage.TaskCount
		}
	}
	return u
}

// Package core contains the scheduling logic for Aura: the slot catalog,
// task-to-slot assignment, capacity accounting, the unscheduled-task queue,
// and the due-date urgency classifier.
package core

import "github.com/sayedbaharun/aura/pkg/models"

// DefaultSlotCapacity is the capacity assumed for slot keys the catalog
// does not know. The backend may introduce new slot keys before this
// binary learns about them; treating them as a full working day keeps
// those cells renderable instead of erroring.
const DefaultSlotCapacity = 8.0

// Catalog is the static table of day slots. It is read-only after
// construction and safe for concurrent use.
type Catalog struct {
	slots           []models.Slot
	index           map[string]int
	defaultCapacity float64
}

// canonicalSlots is the nine-slot full-day catalog. An older four-slot
// catalog (morning/midday/afternoon/evening) existed in early data; tasks
// carrying those keys fall back to the default capacity rather than
// disappearing.
var canonicalSlots = []models.Slot{
	{Key: "early_morning", Label: "Early Morning", Start: "06:00", End: "08:00", CapacityHours: 2},
	{Key: "morning", Label: "Morning", Start: "08:00", End: "10:00", CapacityHours: 2},
	{Key: "late_morning", Label: "Late Morning", Start: "10:00", End: "12:00", CapacityHours: 2},
	{Key: "midday", Label: "Midday", Start: "12:00", End: "14:00", CapacityHours: 2},
	{Key: "afternoon", Label: "Afternoon", Start: "14:00", End: "16:00", CapacityHours: 2},
	{Key: "late_afternoon", Label: "Late Afternoon", Start: "16:00", End: "18:00", CapacityHours: 2},
	{Key: "evening", Label: "Evening", Start: "18:00", End: "20:00", CapacityHours: 2},
	{Key: "night", Label: "Night", Start: "20:00", End: "22:00", CapacityHours: 2},
	{Key: "late_night", Label: "Late Night", Start: "22:00", End: "24:00", CapacityHours: 2},
}

// CatalogOption adjusts a Catalog during construction.
type CatalogOption func(*Catalog)

// WithDefaultCapacity sets the capacity assumed for unknown slot keys.
func WithDefaultCapacity(hours float64) CatalogOption {
	return func(c *Catalog) {
		if hours > 0 {
			c.defaultCapacity = hours
		}
	}
}

// WithCapacityOverride changes the capacity of a single known slot.
// Unknown keys are ignored.
func WithCapacityOverride(key string, hours float64) CatalogOption {
	return func(c *Catalog) {
		if i, ok := c.index[key]; ok && hours >= 0 {
			c.slots[i].CapacityHours = hours
		}
	}
}

// NewCatalog builds the canonical nine-slot catalog.
func NewCatalog(opts ...CatalogOption) *Catalog {
	c := &Catalog{
		slots:           make([]models.Slot, len(canonicalSlots)),
		index:           make(map[string]int, len(canonicalSlots)),
		defaultCapacity: DefaultSlotCapacity,
	}
	copy(c.slots, canonicalSlots)
	for i, s := range c.slots {
		c.index[s.Key] = i
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CapacityHours returns the effort capacity of a slot in hours. Unknown
// slot keys return the default capacity, never an error.
func (c *Catalog) CapacityHours(key string) float64 {
	if i, ok := c.index[key]; ok {
		return c.slots[i].CapacityHours
	}
	return c.defaultCapacity
}

// Label returns the display label of a slot. Unknown keys are returned
// verbatim so forward-compatible keys still render.
func (c *Catalog) Label(key string) string {
	if i, ok := c.index[key]; ok {
		return c.slots[i].Label
	}
	return key
}

// IsValidSlot reports whether the key belongs to the canonical catalog.
func (c *Catalog) IsValidSlot(key string) bool {
	_, ok := c.index[key]
	return ok
}

// Slots returns the catalog entries in day order. The returned slice is a
// copy; callers may modify it freely.
func (c *Catalog) Slots() []models.Slot {
	out := make([]models.Slot, len(c.slots))
	copy(out, c.slots)
	return out
}

package models

// Slot is a static catalog entry describing one time block of the day.
// Start and End are display-only HH:MM strings; scheduling works purely
// on the slot key.
type Slot struct {
	Key           string  `yaml:"key"`
	Label         string  `yaml:"label"`
	Start         string  `yaml:"start"`
	End           string  `yaml:"end"`
	CapacityHours float64 `yaml:"capacity_hours"`
}

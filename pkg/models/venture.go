package models

// Venture is a long-running area of life or work that tasks roll up into.
// Ventures are used only for grouping and color-coding; they never affect
// scheduling decisions.
type Venture struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color,omitempty"`
	Icon  string `yaml:"icon,omitempty"`
}

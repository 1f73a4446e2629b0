package models

import "time"

// Day is the journal record for a single calendar date. Scheduled tasks
// reference it through the deterministically derived DayID; the record
// itself only carries the planning notes for that date.
type Day struct {
	ID               string    `yaml:"id"`
	Date             Date      `yaml:"date"`
	MorningIntention string    `yaml:"morning_intention,omitempty"`
	EveningReview    string    `yaml:"evening_review,omitempty"`
	Updated          time.Time `yaml:"updated"`
}

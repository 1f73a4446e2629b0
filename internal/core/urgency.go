package core

import (
	"fmt"

	"github.com/sayedbaharun/aura/pkg/models"
)

// UrgencyBucket names how close a due date is.
type UrgencyBucket string

const (
	BucketOverdue     UrgencyBucket = "overdue"
	BucketDueToday    UrgencyBucket = "due_today"
	BucketDueTomorrow UrgencyBucket = "due_tomorrow"
	BucketDueSoon     UrgencyBucket = "due_soon"
	BucketDueThisWeek UrgencyBucket = "due_this_week"
)

// UrgencyBadge is the display classification of a due date. Days is the
// whole-day distance: how many days overdue for BucketOverdue, days until
// due otherwise. Urgent drives visual emphasis in consuming views.
type UrgencyBadge struct {
	Bucket UrgencyBucket `json:"bucket"`
	Days   int           `json:"days"`
	Urgent bool          `json:"urgent"`
}

// Urgency classifies a due date relative to an injected "today". It never
// reads the clock; callers must pass the reference date so results stay
// reproducible. Returns nil for unset due dates and anything more than a
// week out (no badge shown).
func Urgency(due, today models.Date) *UrgencyBadge {
	if due.IsZero() {
		return nil
	}
	days := models.DaysBetween(today, due)
	switch {
	case days < 0:
		return &UrgencyBadge{Bucket: BucketOverdue, Days: -days, Urgent: true}
	case days == 0:
		return &UrgencyBadge{Bucket: BucketDueToday, Urgent: true}
	case days == 1:
		return &UrgencyBadge{Bucket: BucketDueTomorrow, Days: 1, Urgent: true}
	case days <= 3:
		return &UrgencyBadge{Bucket: BucketDueSoon, Days: days}
	case days <= 7:
		return &UrgencyBadge{Bucket: BucketDueThisWeek, Days: days}
	}
	return nil
}

// Label renders the badge as short human-readable text.
func (b *UrgencyBadge) Label() string {
	switch b.Bucket {
	case BucketOverdue:
		return fmt.Sprintf("%dd overdue", b.Days)
	case BucketDueToday:
		return "due today"
	case BucketDueTomorrow:
		return "due tomorrow"
	case BucketDueSoon, BucketDueThisWeek:
		return fmt.Sprintf("due in %dd", b.Days)
	}
	return string(b.Bucket)
}

package core

import (
	"testing"

	"github.com/sayedbaharun/aura/pkg/models"
)

func TestUrgencyBuckets(t *testing.T) {
	today := models.Date("2026-08-24")

	tests := []struct {
		name       string
		due        models.Date
		wantBucket UrgencyBucket
		wantDays   int
		wantUrgent bool
		wantNil    bool
	}{
		{name: "no due date", due: "", wantNil: true},
		{name: "two days overdue", due: "2026-08-22", wantBucket: BucketOverdue, wantDays: 2, wantUrgent: true},
		{name: "one day overdue", due: "2026-08-23", wantBucket: BucketOverdue, wantDays: 1, wantUrgent: true},
		{name: "due today", due: "2026-08-24", wantBucket: BucketDueToday, wantDays: 0, wantUrgent: true},
		{name: "due tomorrow", due: "2026-08-25", wantBucket: BucketDueTomorrow, wantDays: 1, wantUrgent: true},
		{name: "due in two days", due: "2026-08-26", wantBucket: BucketDueSoon, wantDays: 2, wantUrgent: false},
		{name: "due in three days", due: "2026-08-27", wantBucket: BucketDueSoon, wantDays: 3, wantUrgent: false},
		{name: "due in four days", due: "2026-08-28", wantBucket: BucketDueThisWeek, wantDays: 4, wantUrgent: false},
		{name: "due in seven days", due: "2026-08-31", wantBucket: BucketDueThisWeek, wantDays: 7, wantUrgent: false},
		{name: "due in eight days", due: "2026-09-01", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Urgency(tt.due, today)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("expected no badge, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a badge, got nil")
			}
			if got.Bucket != tt.wantBucket {
				t.Errorf("expected bucket %q, got %q", tt.wantBucket, got.Bucket)
			}
			if got.Days != tt.wantDays {
				t.Errorf("expected days %d, got %d", tt.wantDays, got.Days)
			}
			if got.Urgent != tt.wantUrgent {
				t.Errorf("expected urgent=%v, got %v", tt.wantUrgent, got.Urgent)
			}
		})
	}
}

func TestUrgencyCrossesMonthBoundary(t *testing.T) {
	got := Urgency("2026-09-02", "2026-08-31")
	if got == nil || got.Bucket != BucketDueSoon || got.Days != 2 {
		t.Fatalf("expected due_soon in 2 days across month boundary, got %+v", got)
	}
}

func TestUrgencyBadgeLabel(t *testing.T) {
	tests := []struct {
		badge UrgencyBadge
		want  string
	}{
		{UrgencyBadge{Bucket: BucketOverdue, Days: 3}, "3d overdue"},
		{UrgencyBadge{Bucket: BucketDueToday}, "due today"},
		{UrgencyBadge{Bucket: BucketDueTomorrow, Days: 1}, "due tomorrow"},
		{UrgencyBadge{Bucket: BucketDueSoon, Days: 2}, "due in 2d"},
		{UrgencyBadge{Bucket: BucketDueThisWeek, Days: 6}, "due in 6d"},
	}
	for _, tt := range tests {
		if got := tt.badge.Label(); got != tt.want {
			t.Errorf("badge %+v: expected label %q, got %q", tt.badge, tt.want, got)
		}
	}
}

package core

import (
	"testing"

	"github.com/sayedbaharun/aura/pkg/models"
	"pgregory.net/rapid"
)

// Feature: aura, Property: Capacity Additivity
// Usage of a union of disjoint task sets equals the sum of the parts.
func TestProperty_CapacityAdditivity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		effortGen := rapid.Float64Range(0, 12)

		n1 := rapid.IntRange(0, 30).Draw(rt, "n1")
		n2 := rapid.IntRange(0, 30).Draw(rt, "n2")

		var t1, t2 []models.Task
		for i := 0; i < n1; i++ {
			t1 = append(t1, models.Task{EstEffort: effortGen.Draw(rt, "e1")})
		}
		for i := 0; i < n2; i++ {
			t2 = append(t2, models.Task{EstEffort: effortGen.Draw(rt, "e2")})
		}

		union := append(append([]models.Task{}, t1...), t2...)

		got := CellUsage(union)
		want := CellUsage(t1).UsedHours + CellUsage(t2).UsedHours

		const eps = 1e-9
		if diff := got.UsedHours - want; diff > eps || diff < -eps {
			t.Fatalf("usage not additive: union=%g, parts sum=%g", got.UsedHours, want)
		}
		if got.TaskCount != n1+n2 {
			t.Fatalf("expected task count %d, got %d", n1+n2, got.TaskCount)
		}
	})
}

// Feature: aura, Property: Capacity level never decreases as usage grows.
func TestProperty_CapacityLevelMonotone(t *testing.T) {
	levelRank := map[CapacityLevel]int{LevelOK: 0, LevelWarning: 1, LevelOver: 2}

	rapid.Check(t, func(rt *rapid.T) {
		capacity := rapid.Float64Range(0.5, 16).Draw(rt, "capacity")
		used := rapid.Float64Range(0, 32).Draw(rt, "used")
		extra := rapid.Float64Range(0, 8).Draw(rt, "extra")

		th := DefaultThresholds()
		before := CapacityStatus(used, capacity, th)
		after := CapacityStatus(used+extra, capacity, th)

		if levelRank[after.Level] < levelRank[before.Level] {
			t.Fatalf("adding %g hours lowered level from %q to %q (capacity %g, used %g)",
				extra, before.Level, after.Level, capacity, used)
		}
	})
}

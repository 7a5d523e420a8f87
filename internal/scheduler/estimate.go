package scheduler

import "math"

// FallbackCapacity stands in when a role has nobody assigned, so an
// unstaffed project still yields a finite (if pessimistic) estimate.
const FallbackCapacity = 1.0

// RoleCapacity sums the allocation fractions of the given assignees.
func RoleCapacity(assignees []Assignee) float64 {
	var total float64
	for _, a := range assignees {
		total += a.AllocationFTE
	}
	return total
}

// EffectiveCapacity is RoleCapacity with the no-assignee fallback applied.
func EffectiveCapacity(assignees []Assignee) float64 {
	if c := RoleCapacity(assignees); c > 0 {
		return c
	}
	return FallbackCapacity
}

// FlatDays is the closed-form estimate: remaining effort divided by capacity,
// rounded up to whole working days. Zero remaining effort takes zero days.
func FlatDays(remainingEffort, capacity float64) int {
	if remainingEffort <= 0 {
		return 0
	}
	if capacity <= 0 {
		capacity = FallbackCapacity
	}
	return int(math.Ceil(remainingEffort / capacity))
}

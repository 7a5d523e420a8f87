package scheduler

import (
	"time"

	"github.com/juliakramer/slipway/internal/workcal"
)

// maxSimulationDays bounds the day-by-day walk. Twenty calendar years of
// zero progress means the inputs cannot produce a finite completion date.
const maxSimulationDays = 7300

// capacityEpsilon absorbs float accumulation error when fractional
// allocations (0.5 + 0.5, three 0.33s) sum toward the remaining effort.
const capacityEpsilon = 1e-9

// SimulateCompletion walks forward from start one calendar day at a time,
// draining remaining effort by the summed capacity of assignees who are not
// on vacation that day, and returns the date on which the effort is
// exhausted. Draining begins on the first working day after start, so a
// whole-day effort at 1.0 FTE lands exactly where AddWorkingDays would.
// Non-working days advance the cursor without draining effort. Returns a
// DivergenceError when the iteration ceiling is exceeded.
func (s *Scheduler) SimulateCompletion(start time.Time, remainingEffort float64, assignees []Assignee) (time.Time, error) {
	return s.simulate(start, remainingEffort, assignees, true)
}

// SimulateCompletionIgnoringVacations runs the same walk with vacation
// membership always false. Used solely as the baseline for reporting
// working days lost to time off.
func (s *Scheduler) SimulateCompletionIgnoringVacations(start time.Time, remainingEffort float64, assignees []Assignee) (time.Time, error) {
	return s.simulate(start, remainingEffort, assignees, false)
}

func (s *Scheduler) simulate(start time.Time, remainingEffort float64, assignees []Assignee, countVacations bool) (time.Time, error) {
	cursor := workcal.Midnight(start)
	remaining := remainingEffort
	if remaining <= capacityEpsilon {
		return cursor, nil
	}

	for i := 0; i < maxSimulationDays; i++ {
		cursor = cursor.AddDate(0, 0, 1)
		if !s.cal.IsWorkingDay(cursor) {
			continue
		}
		var capacity float64
		for _, a := range assignees {
			if countVacations && a.Person != nil && a.Person.OnVacation(cursor) {
				continue
			}
			capacity += a.AllocationFTE
		}
		// Capacity may be zero (everyone away); time still advances.
		remaining -= capacity
		if remaining <= capacityEpsilon {
			return cursor, nil
		}
	}

	return time.Time{}, &DivergenceError{
		Start:           workcal.Midnight(start),
		RemainingEffort: remaining,
	}
}

package workcal

import "time"

// AddWorkingDays advances from d one calendar day at a time until n working
// days have been counted, and returns the date of the nth one. n <= 0
// returns d unchanged (normalized to midnight UTC).
func (c *Calendar) AddWorkingDays(d time.Time, n int) time.Time {
	cursor := Midnight(d)
	for counted := 0; counted < n; {
		cursor = cursor.AddDate(0, 0, 1)
		if c.IsWorkingDay(cursor) {
			counted++
		}
	}
	return cursor
}

// NextWorkingDayAfter returns the first working day strictly after d.
func (c *Calendar) NextWorkingDayAfter(d time.Time) time.Time {
	return c.AddWorkingDays(d, 1)
}

// SignedWorkdayDiff returns the signed count of working days between a and b:
// zero when they are the same calendar date, positive when b is later,
// negative when b is earlier. The count excludes the earlier date's own day
// and includes the later one, so "deadline minus today" never double counts
// the current day.
func (c *Calendar) SignedWorkdayDiff(a, b time.Time) int {
	from, to := Midnight(a), Midnight(b)
	if from.Equal(to) {
		return 0
	}
	sign := 1
	if to.Before(from) {
		from, to = to, from
		sign = -1
	}
	count := 0
	for cursor := from.AddDate(0, 0, 1); !cursor.After(to); cursor = cursor.AddDate(0, 0, 1) {
		if c.IsWorkingDay(cursor) {
			count++
		}
	}
	return sign * count
}

// WorkingDaysBetween returns all working days in [a, b], ascending. The
// bounds are inclusive; an empty slice is returned when a is after b.
func (c *Calendar) WorkingDaysBetween(a, b time.Time) []time.Time {
	from, to := Midnight(a), Midnight(b)
	var days []time.Time
	for cursor := from; !cursor.After(to); cursor = cursor.AddDate(0, 0, 1) {
		if c.IsWorkingDay(cursor) {
			days = append(days, cursor)
		}
	}
	return days
}

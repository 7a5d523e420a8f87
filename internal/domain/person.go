package domain

import (
	"fmt"
	"time"
)

// VacationRange is an inclusive range of calendar days during which a person
// contributes zero capacity. Start and End are date-only values.
type VacationRange struct {
	ID       string
	PersonID string
	Start    time.Time
	End      time.Time
}

// Contains reports whether the given calendar date falls inside the range,
// boundaries included.
func (v VacationRange) Contains(d time.Time) bool {
	day := dateOnly(d)
	return !day.Before(dateOnly(v.Start)) && !day.After(dateOnly(v.End))
}

// Validate checks that the range is well-formed (start on or before end).
func (v VacationRange) Validate() error {
	if v.Start.IsZero() || v.End.IsZero() {
		return fmt.Errorf("vacation range requires both start and end dates")
	}
	if dateOnly(v.End).Before(dateOnly(v.Start)) {
		return fmt.Errorf("vacation range ends (%s) before it starts (%s)",
			v.End.Format("2006-01-02"), v.Start.Format("2006-01-02"))
	}
	return nil
}

// Person is a roster member with a default discipline and a fractional
// full-time-equivalent capacity.
type Person struct {
	ID        string
	Name      string
	Role      Role
	FTE       float64
	Vacations []VacationRange
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OnVacation reports whether the person is on vacation on the given date.
// Overlapping ranges union: any containing range counts.
func (p *Person) OnVacation(d time.Time) bool {
	for _, v := range p.Vacations {
		if v.Contains(d) {
			return true
		}
	}
	return false
}

// Validate checks identity, role, FTE, and all vacation ranges.
func (p *Person) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("person name is required")
	}
	if p.Role == "" {
		return fmt.Errorf("person %q requires a role", p.Name)
	}
	if p.FTE <= 0 {
		return fmt.Errorf("person %q has non-positive FTE %.2f", p.Name, p.FTE)
	}
	for _, v := range p.Vacations {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("person %q: %w", p.Name, err)
		}
	}
	return nil
}

// dateOnly truncates a timestamp to midnight UTC so that comparisons operate
// on calendar dates regardless of the incoming location or clock time.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestVacationRange_Contains(t *testing.T) {
	v := VacationRange{Start: day(2026, time.March, 2), End: day(2026, time.March, 6)}

	assert.True(t, v.Contains(day(2026, time.March, 2)), "start boundary")
	assert.True(t, v.Contains(day(2026, time.March, 6)), "end boundary")
	assert.True(t, v.Contains(day(2026, time.March, 4)))
	assert.False(t, v.Contains(day(2026, time.March, 1)))
	assert.False(t, v.Contains(day(2026, time.March, 7)))
}

func TestVacationRange_ContainsIgnoresClockAndZone(t *testing.T) {
	v := VacationRange{Start: day(2026, time.March, 2), End: day(2026, time.March, 2)}
	tokyo := time.FixedZone("UTC+9", 9*3600)

	assert.True(t, v.Contains(time.Date(2026, time.March, 2, 23, 59, 0, 0, time.UTC)))
	assert.True(t, v.Contains(time.Date(2026, time.March, 3, 8, 0, 0, 0, tokyo)))
}

func TestVacationRange_Validate(t *testing.T) {
	ok := VacationRange{Start: day(2026, time.March, 2), End: day(2026, time.March, 2)}
	assert.NoError(t, ok.Validate(), "single-day range is valid")

	inverted := VacationRange{Start: day(2026, time.March, 6), End: day(2026, time.March, 2)}
	assert.ErrorContains(t, inverted.Validate(), "ends")

	missing := VacationRange{Start: day(2026, time.March, 2)}
	assert.ErrorContains(t, missing.Validate(), "both start and end")
}

func TestPerson_OnVacationUnionsOverlappingRanges(t *testing.T) {
	p := &Person{
		Name: "Ann", Role: "backend", FTE: 1,
		Vacations: []VacationRange{
			{Start: day(2026, time.March, 2), End: day(2026, time.March, 4)},
			{Start: day(2026, time.March, 4), End: day(2026, time.March, 6)},
		},
	}

	for d := 2; d <= 6; d++ {
		assert.True(t, p.OnVacation(day(2026, time.March, d)), "March %d", d)
	}
	assert.False(t, p.OnVacation(day(2026, time.March, 9)))
}

func TestPerson_Validate(t *testing.T) {
	tests := []struct {
		name    string
		person  Person
		wantErr string
	}{
		{"valid", Person{Name: "Ann", Role: "backend", FTE: 1}, ""},
		{"fractional FTE", Person{Name: "Ann", Role: "backend", FTE: 0.25}, ""},
		{"missing name", Person{Role: "backend", FTE: 1}, "name is required"},
		{"missing role", Person{Name: "Ann", FTE: 1}, "requires a role"},
		{"zero FTE", Person{Name: "Ann", Role: "backend"}, "non-positive FTE"},
		{"negative FTE", Person{Name: "Ann", Role: "backend", FTE: -1}, "non-positive FTE"},
		{
			"bad vacation",
			Person{Name: "Ann", Role: "backend", FTE: 1, Vacations: []VacationRange{
				{Start: day(2026, time.March, 6), End: day(2026, time.March, 2)},
			}},
			`person "Ann"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.person.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

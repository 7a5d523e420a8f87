package workcal

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/au"
	"github.com/rickar/cal/v2/ca"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/es"
	"github.com/rickar/cal/v2/fr"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/it"
	"github.com/rickar/cal/v2/nl"
	"github.com/rickar/cal/v2/pl"
	"github.com/rickar/cal/v2/us"
)

// Config selects which days count as working days. The zero value means
// weekends-only: Saturday and Sunday off, no public holidays.
type Config struct {
	IncludeHolidays bool
	CountryCode     string
	SubdivisionCode string
}

// holidaySets maps country (and optionally "CC-SUB" region) codes to public
// holiday definitions. Regional variants can be registered under "CC-SUB"
// keys; lookup falls back to the bare country code.
var holidaySets = map[string][]*cal.Holiday{
	// The au package ships per-state sets only; NSW stands in for the
	// country-level default.
	"AU":     au.HolidaysNSW,
	"AU-VIC": au.HolidaysVIC,
	"AU-WA":  au.HolidaysWA,
	"CA":     ca.Holidays,
	"DE":     de.Holidays,
	"DE-BY":  de.HolidaysBY,
	"ES":     es.Holidays,
	"FR":     fr.Holidays,
	"GB":     gb.Holidays,
	"IT":     it.Holidays,
	"NL":     nl.Holidays,
	"PL":     pl.Holidays,
	"US":     us.Holidays,
}

// Countries lists the country codes with a bundled holiday calendar, sorted.
func Countries() []string {
	codes := make([]string, 0, len(holidaySets))
	for code := range holidaySets {
		if !strings.Contains(code, "-") {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// Calendar decides whether a calendar date counts as a working day. It is
// immutable after construction; build one per scheduling pass and share it
// freely across goroutines.
type Calendar struct {
	days *cal.BusinessCalendar
}

// New builds a Calendar from the given configuration. With IncludeHolidays
// unset the calendar skips weekends only. An unknown country code is an
// error rather than a silent weekends-only fallback.
func New(cfg Config) (*Calendar, error) {
	bc := cal.NewBusinessCalendar()
	if cfg.IncludeHolidays {
		holidays, err := lookupHolidays(cfg.CountryCode, cfg.SubdivisionCode)
		if err != nil {
			return nil, err
		}
		bc.AddHoliday(holidays...)
	}
	return &Calendar{days: bc}, nil
}

// Default returns a weekends-only calendar.
func Default() *Calendar {
	c, _ := New(Config{})
	return c
}

func lookupHolidays(country, subdivision string) ([]*cal.Holiday, error) {
	cc := strings.ToUpper(strings.TrimSpace(country))
	if cc == "" {
		return nil, fmt.Errorf("holiday calendar requested but no country code configured")
	}
	if sub := strings.ToUpper(strings.TrimSpace(subdivision)); sub != "" {
		if hs, ok := holidaySets[cc+"-"+sub]; ok {
			return hs, nil
		}
	}
	if hs, ok := holidaySets[cc]; ok {
		return hs, nil
	}
	return nil, fmt.Errorf("no holiday calendar available for country %q", country)
}

// IsWorkingDay reports whether the date is a working day: never on Saturday
// or Sunday, and never on a configured public holiday.
func (c *Calendar) IsWorkingDay(d time.Time) bool {
	return c.days.IsWorkday(Midnight(d))
}

// Midnight truncates a timestamp to midnight UTC. All workcal functions
// operate on date-only values.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date builds a date-only value, convenient for tests and fixtures.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

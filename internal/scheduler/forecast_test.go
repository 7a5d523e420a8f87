package scheduler

import (
	"math/rand"
	"testing"
	"time"

	"github.com/juliakramer/slipway/internal/domain"
	"github.com/juliakramer/slipway/internal/workcal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastChain_ReserveAndSlip(t *testing.T) {
	s := New(workcal.Default())
	today := workcal.Date(2026, time.March, 2) // Monday; 5-day project ends the next Monday

	comfortable := simpleProject("p1", "comfortable", 1, 5)
	requested := workcal.Date(2026, time.March, 13)
	comfortable.RequestedDelivery = &requested

	late := simpleProject("p2", "late", 2, 3) // starts Mar 9, ends Mar 12
	tight := workcal.Date(2026, time.March, 9)
	late.RequestedDelivery = &tight

	forecasts, err := s.ForecastChain([]ProjectInput{comfortable, late}, today)
	require.NoError(t, err)
	require.Len(t, forecasts, 2)

	assert.Equal(t, 4, forecasts[0].DiffWorkdays, "Monday to Friday is four working days of reserve")
	assert.Equal(t, -3, forecasts[1].DiffWorkdays, "ends Thursday, requested Monday: three days of slip")
}

func TestForecastChain_NoRequestedDateCountsFromToday(t *testing.T) {
	s := New(workcal.Default())
	today := workcal.Date(2026, time.March, 2)

	forecasts, err := s.ForecastChain([]ProjectInput{simpleProject("p1", "open-ended", 1, 5)}, today)
	require.NoError(t, err)

	assert.Nil(t, forecasts[0].RequestedDelivery)
	assert.Equal(t, 5, forecasts[0].DiffWorkdays, "Monday to the following Monday, excluding today")
}

func TestForecastChain_OnTimeIsZero(t *testing.T) {
	s := New(workcal.Default())
	today := workcal.Date(2026, time.March, 2)

	p := simpleProject("p1", "exact", 1, 5)
	requested := workcal.Date(2026, time.March, 9)
	p.RequestedDelivery = &requested

	forecasts, err := s.ForecastChain([]ProjectInput{p}, today)
	require.NoError(t, err)
	assert.Zero(t, forecasts[0].DiffWorkdays)
}

func TestForecastProject_UsesExplicitStart(t *testing.T) {
	s := New(workcal.Default())
	today := workcal.Date(2026, time.March, 2)

	p := simpleProject("p1", "pinned", 1, 2)
	start := workcal.Date(2026, time.March, 16)
	p.ExplicitStart = &start

	f, err := s.ForecastProject(p, today)
	require.NoError(t, err)

	assert.Equal(t, start, f.Start)
	assert.Equal(t, workcal.Date(2026, time.March, 18), f.End)
	assert.Empty(t, f.BlockingProject)
}

func TestForecastProject_DefaultsToToday(t *testing.T) {
	s := New(workcal.Default())
	today := workcal.Date(2026, time.March, 2)

	f, err := s.ForecastProject(simpleProject("p1", "adhoc", 1, 1), today)
	require.NoError(t, err)
	assert.Equal(t, today, f.Start)
}

// More effort can never produce an earlier end date.
func TestForecastProject_EffortMonotonicity(t *testing.T) {
	s := New(workcal.Default())
	today := workcal.Date(2026, time.March, 2)
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 100; trial++ {
		days := float64(rng.Intn(20) + 1)
		extra := float64(rng.Intn(10) + 1)

		small, err := s.ForecastProject(simpleProject("p", "grow", 1, days), today)
		require.NoError(t, err)
		big, err := s.ForecastProject(simpleProject("p", "grow", 1, days+extra), today)
		require.NoError(t, err)

		assert.False(t, big.End.Before(small.End),
			"trial %d: %v days ended %s but %v days ended %s", trial, days+extra, big.End, days, small.End)
	}
}

// Adding a vacation can never produce an earlier end date.
func TestForecastProject_VacationDominance(t *testing.T) {
	s := New(workcal.Default())
	today := workcal.Date(2026, time.March, 2)
	rng := rand.New(rand.NewSource(5))

	for trial := 0; trial < 100; trial++ {
		days := float64(rng.Intn(15) + 1)
		offStart := today.AddDate(0, 0, rng.Intn(30))
		offEnd := offStart.AddDate(0, 0, rng.Intn(7))

		working := graphProject("steady", days, fullTimer("ann"))
		away := graphProject("steady", days, vacationer("ann", offStart, offEnd))

		base, err := s.ForecastProject(working, today)
		require.NoError(t, err)
		delayed, err := s.ForecastProject(away, today)
		require.NoError(t, err)

		assert.False(t, delayed.End.Before(base.End),
			"trial %d: vacation %s-%s moved end from %s to %s", trial, offStart, offEnd, base.End, delayed.End)
		assert.GreaterOrEqual(t, delayed.LostWorkdaysToVacation, 0, "trial %d", trial)
	}
}

func graphProject(name string, days float64, a Assignee) ProjectInput {
	return ProjectInput{
		ID:        name,
		Name:      name,
		Status:    domain.ProjectInProgress,
		Efforts:   map[domain.Role]domain.RoleEffort{"backend": {TotalEffortDays: days}},
		Graph:     &domain.RoleGraph{},
		Assignees: map[domain.Role][]Assignee{"backend": {a}},
	}
}

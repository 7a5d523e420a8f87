package scheduler

import (
	"time"

	"github.com/juliakramer/slipway/internal/workcal"
)

// ForecastChain is the public entry point for a full scheduling pass: it
// chains all active projects and attaches the signed slip/reserve for each.
func (s *Scheduler) ForecastChain(projects []ProjectInput, today time.Time) ([]*Forecast, error) {
	schedules, err := s.ScheduleChain(projects, today)
	if err != nil {
		return nil, err
	}

	forecasts := make([]*Forecast, 0, len(schedules))
	byID := make(map[string]ProjectInput, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}
	for _, sched := range schedules {
		forecasts = append(forecasts, s.attachDiff(sched, byID[sched.ProjectID].RequestedDelivery, today))
	}
	return forecasts, nil
}

// ForecastProject schedules a single project outside the chain: it starts at
// its explicit start date if set, otherwise today.
func (s *Scheduler) ForecastProject(p ProjectInput, today time.Time) (*Forecast, error) {
	start := workcal.Midnight(today)
	if p.ExplicitStart != nil {
		start = workcal.Midnight(*p.ExplicitStart)
	}

	plan, err := s.PlanProject(p, start)
	if err != nil {
		return nil, err
	}

	sched := &ProjectSchedule{
		ProjectID:              p.ID,
		ProjectName:            p.Name,
		Start:                  plan.Start,
		End:                    plan.End,
		Roles:                  plan.Roles,
		LostWorkdaysToVacation: plan.LostWorkdaysToVacation,
		CycleDetected:          plan.CycleDetected,
	}
	return s.attachDiff(sched, p.RequestedDelivery, today), nil
}

// attachDiff computes the signed working-day distance for a schedule:
// against the requested delivery date when one exists (positive = reserve,
// negative = slip), otherwise from today to the computed end.
func (s *Scheduler) attachDiff(sched *ProjectSchedule, requested *time.Time, today time.Time) *Forecast {
	f := &Forecast{ProjectSchedule: *sched, RequestedDelivery: requested}
	if requested != nil {
		f.DiffWorkdays = s.cal.SignedWorkdayDiff(sched.End, *requested)
	} else {
		f.DiffWorkdays = s.cal.SignedWorkdayDiff(workcal.Midnight(today), sched.End)
	}
	return f
}

package scheduler

import (
	"time"

	"github.com/juliakramer/slipway/internal/workcal"
)

// ScheduleChain runs the priority chain: active projects are sorted into
// chaining order and granted the shared team's attention strictly one after
// another. Each project starts at its explicit start date if set, otherwise
// at the chain cursor; afterwards the cursor advances to the busier of
// (cursor, project end), so an early explicit start can never rewind the
// chain for later projects. Because effort drains starting the working day
// after a project's start, handing the next project the previous end date
// means its first worked day is the next working day, with no overlap and
// no idle day in between.
//
// The chain deliberately does not check whether consecutive projects share
// any assigned people; "priority order" means one timeline.
func (s *Scheduler) ScheduleChain(projects []ProjectInput, today time.Time) ([]*ProjectSchedule, error) {
	var active []ProjectInput
	for _, p := range projects {
		if p.Status.Active() {
			active = append(active, p)
		}
	}
	ChainOrder(active)

	cursor := workcal.Midnight(today)
	prevName := ""
	results := make([]*ProjectSchedule, 0, len(active))

	for _, p := range active {
		start := cursor
		blocking := prevName
		if p.ExplicitStart != nil {
			start = workcal.Midnight(*p.ExplicitStart)
			blocking = ""
		}

		plan, err := s.PlanProject(p, start)
		if err != nil {
			// A chain pass fails whole: later projects depend on this end date.
			return nil, err
		}

		results = append(results, &ProjectSchedule{
			ProjectID:              p.ID,
			ProjectName:            p.Name,
			Start:                  plan.Start,
			End:                    plan.End,
			Roles:                  plan.Roles,
			BlockingProject:        blocking,
			LostWorkdaysToVacation: plan.LostWorkdaysToVacation,
			CycleDetected:          plan.CycleDetected,
		})

		if plan.End.After(cursor) {
			cursor = plan.End
		}
		prevName = p.Name
	}

	return results, nil
}

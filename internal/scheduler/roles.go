package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/juliakramer/slipway/internal/domain"
	"github.com/juliakramer/slipway/internal/workcal"
)

// RolePlan is the outcome of scheduling one project's roles from a fixed
// start date, before any chain context is attached.
type RolePlan struct {
	Start                  time.Time
	End                    time.Time
	Roles                  []RoleSchedule
	LostWorkdaysToVacation int
	CycleDetected          bool
}

// CycleFallback resolves the end date for roles left unscheduled by an
// unresolvable (cyclic or inconsistent) dependency graph. It receives the
// project start and the unscheduled roles with their efforts and assignees.
type CycleFallback func(s *Scheduler, start time.Time, p ProjectInput, unscheduled []domain.Role) time.Time

// ParallelMaxFallback treats the unscheduled roles as running in parallel
// from the project start and returns the end of the longest remaining flat
// estimate among them.
func ParallelMaxFallback(s *Scheduler, start time.Time, p ProjectInput, unscheduled []domain.Role) time.Time {
	maxDays := 0
	for _, role := range unscheduled {
		days := FlatDays(p.Efforts[role].Remaining(), EffectiveCapacity(p.Assignees[role]))
		if days > maxDays {
			maxDays = days
		}
	}
	return s.cal.AddWorkingDays(start, maxDays)
}

// PlanProject schedules all of a project's roles from the given start date.
// Without a dependency graph every role runs in parallel from the start
// date and the slowest role sets the end. With a graph, roles are scheduled
// in dependency order with penalty shifts applied for blocked and waiting
// roles. Either way, roles whose assignees carry vacation ranges are
// simulated day-by-day so time off pushes their end dates out.
func (s *Scheduler) PlanProject(p ProjectInput, start time.Time) (*RolePlan, error) {
	start = workcal.Midnight(start)
	if p.Graph == nil {
		return s.planFlat(p, start)
	}
	return s.planWithGraph(p, start)
}

// planFlat schedules every role in parallel from the project start. Roles
// with no vacations in play keep the closed-form flat estimate; the rest
// run the walk twice so the lost-to-vacation delta can be reported.
func (s *Scheduler) planFlat(p ProjectInput, start time.Time) (*RolePlan, error) {
	plan := &RolePlan{Start: start, End: start}
	baseEnd := start

	for _, role := range sortedRoles(p.Efforts) {
		eff := p.Efforts[role].Remaining()
		assignees := p.Assignees[role]

		var end, base time.Time
		if anyVacations(assignees) {
			var err error
			end, err = s.simulate(start, eff, assignees, true)
			if err != nil {
				return nil, annotate(err, p.Name, role)
			}
			base, err = s.simulate(start, eff, assignees, false)
			if err != nil {
				return nil, annotate(err, p.Name, role)
			}
		} else {
			days := FlatDays(eff, EffectiveCapacity(assignees))
			end = s.cal.AddWorkingDays(start, days)
			base = end
		}

		plan.Roles = append(plan.Roles, RoleSchedule{Role: role, Start: start, End: end})
		if end.After(plan.End) {
			plan.End = end
		}
		if base.After(baseEnd) {
			baseEnd = base
		}
	}

	if lost := s.cal.SignedWorkdayDiff(baseEnd, plan.End); lost > 0 {
		plan.LostWorkdaysToVacation = lost
	}
	return plan, nil
}

func anyVacations(assignees []Assignee) bool {
	for _, a := range assignees {
		if a.Person != nil && len(a.Person.Vacations) > 0 {
			return true
		}
	}
	return false
}

func (s *Scheduler) planWithGraph(p ProjectInput, start time.Time) (*RolePlan, error) {
	plan := &RolePlan{Start: start}

	scheduled := make(map[domain.Role]window)
	starts := make(map[domain.Role]time.Time)
	roles := sortedRoles(p.Efforts)

	remaining := make([]domain.Role, len(roles))
	copy(remaining, roles)

	for len(remaining) > 0 {
		progressed := false
		var next []domain.Role

		for _, role := range remaining {
			roleStart, baseStart, ready := dependencyStarts(p.Graph, role, start, scheduled)
			if !ready {
				next = append(next, role)
				continue
			}

			eff := p.Efforts[role].Remaining()
			assignees := p.Assignees[role]

			var end, baseEnd time.Time
			if len(assignees) > 0 {
				var err error
				end, err = s.simulate(roleStart, eff, assignees, true)
				if err != nil {
					return nil, annotate(err, p.Name, role)
				}
				baseEnd, err = s.simulate(baseStart, eff, assignees, false)
				if err != nil {
					return nil, annotate(err, p.Name, role)
				}
			} else {
				// Nothing to simulate day-by-day without people: flat estimate.
				days := FlatDays(eff, FallbackCapacity)
				end = s.cal.AddWorkingDays(roleStart, days)
				baseEnd = s.cal.AddWorkingDays(baseStart, days)
			}

			scheduled[role] = window{end: end, baseEnd: baseEnd}
			starts[role] = roleStart
			progressed = true
		}

		if !progressed {
			// Cyclic or inconsistent graph: hand the leftovers to the
			// fallback strategy and flag the plan.
			plan.CycleDetected = true
			fallbackEnd := s.fallback(s, start, p, next)
			for _, role := range next {
				scheduled[role] = window{end: fallbackEnd, baseEnd: fallbackEnd}
				starts[role] = start
			}
			break
		}
		remaining = next
	}

	end, baseEnd := start, start
	for _, role := range roles {
		w := scheduled[role]
		plan.Roles = append(plan.Roles, RoleSchedule{Role: role, Start: starts[role], End: w.end})
		if w.end.After(end) {
			end = w.end
		}
		if w.baseEnd.After(baseEnd) {
			baseEnd = w.baseEnd
		}
	}

	// Penalty shifts accumulate additively and move both end dates the same
	// amount, leaving the lost-to-vacation delta untouched.
	penalty := s.penaltyDays(p.Graph)
	plan.End = s.cal.AddWorkingDays(end, penalty)
	baseEnd = s.cal.AddWorkingDays(baseEnd, penalty)

	if lost := s.cal.SignedWorkdayDiff(baseEnd, plan.End); lost > 0 {
		plan.LostWorkdaysToVacation = lost
	}
	return plan, nil
}

// window is a role's scheduled end in the vacation-aware timeline and in
// the no-vacation baseline.
type window struct {
	end     time.Time
	baseEnd time.Time
}

// dependencyStarts computes the vacation-aware and baseline start dates for
// a role: the project start when it has no dependencies, otherwise the
// latest end among them. ready is false while any dependency is unscheduled.
func dependencyStarts(g *domain.RoleGraph, role domain.Role, projectStart time.Time, scheduled map[domain.Role]window) (time.Time, time.Time, bool) {
	roleStart, baseStart := projectStart, projectStart
	for _, dep := range g.DependenciesOf(role) {
		w, ok := scheduled[dep]
		if !ok {
			return time.Time{}, time.Time{}, false
		}
		if w.end.After(roleStart) {
			roleStart = w.end
		}
		if w.baseEnd.After(baseStart) {
			baseStart = w.baseEnd
		}
	}
	return roleStart, baseStart, true
}

func (s *Scheduler) penaltyDays(g *domain.RoleGraph) int {
	total := 0
	for _, status := range g.Statuses {
		switch status {
		case domain.WorkerBlocked:
			total += s.blockedPenaltyDays
		case domain.WorkerWaiting:
			total += s.waitingPenaltyDays
		}
	}
	return total
}

func annotate(err error, project string, role domain.Role) error {
	if de, ok := err.(*DivergenceError); ok {
		de.ProjectName = project
		de.Role = role
		return de
	}
	return fmt.Errorf("scheduling project %q role %q: %w", project, role, err)
}

func sortedRoles(efforts map[domain.Role]domain.RoleEffort) []domain.Role {
	roles := make([]domain.Role, 0, len(efforts))
	for role := range efforts {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

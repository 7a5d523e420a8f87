package scheduler

import (
	"time"

	"github.com/juliakramer/slipway/internal/domain"
	"github.com/juliakramer/slipway/internal/workcal"
)

// Assignee pairs a roster member with the allocation fraction they give to
// one role on one project.
type Assignee struct {
	Person        *domain.Person
	AllocationFTE float64
}

// ProjectInput is the read-only snapshot of a project handed to a scheduling
// pass: efforts and graph from the project record, assignees joined from
// assignments and the roster.
type ProjectInput struct {
	ID                string
	Name              string
	Priority          int
	Status            domain.ProjectStatus
	ExplicitStart     *time.Time
	RequestedDelivery *time.Time
	CreatedAt         time.Time
	Efforts           map[domain.Role]domain.RoleEffort
	Graph             *domain.RoleGraph
	Assignees         map[domain.Role][]Assignee
}

// RoleSchedule is one role's computed window within a project.
type RoleSchedule struct {
	Role  domain.Role
	Start time.Time
	End   time.Time
}

// ProjectSchedule is the per-project output of a scheduling pass.
type ProjectSchedule struct {
	ProjectID   string
	ProjectName string
	Start       time.Time
	End         time.Time
	Roles       []RoleSchedule

	// BlockingProject names the chained predecessor whose completion produced
	// this project's start date. Empty for explicit starts and for the first
	// project in the chain.
	BlockingProject string

	// LostWorkdaysToVacation is how many working days later the project ends
	// compared to a baseline that ignores time off. Never negative.
	LostWorkdaysToVacation int

	// CycleDetected marks that the role dependency graph could not be fully
	// resolved and the parallel fallback produced a best-effort end date.
	CycleDetected bool
}

// Forecast compares a project's computed completion against its requested
// delivery date. Positive DiffWorkdays is reserve, negative is slip.
type Forecast struct {
	ProjectSchedule
	RequestedDelivery *time.Time
	DiffWorkdays      int
}

// Scheduler runs scheduling passes against a fixed working-day calendar.
// The calendar and penalty constants are bound at construction and never
// mutated mid-pass, so a Scheduler is safe for concurrent passes.
type Scheduler struct {
	cal      *workcal.Calendar
	fallback CycleFallback

	// Working-day penalties applied per role flagged in the dependency graph.
	blockedPenaltyDays int
	waitingPenaltyDays int
}

// Default penalty shifts for externally blocked and waiting roles.
const (
	DefaultBlockedPenaltyDays = 5
	DefaultWaitingPenaltyDays = 2
)

// New creates a Scheduler bound to the given calendar with the default
// cycle-fallback strategy and penalty constants.
func New(cal *workcal.Calendar) *Scheduler {
	return &Scheduler{
		cal:                cal,
		fallback:           ParallelMaxFallback,
		blockedPenaltyDays: DefaultBlockedPenaltyDays,
		waitingPenaltyDays: DefaultWaitingPenaltyDays,
	}
}

// WithFallback returns a copy of the scheduler using the given strategy for
// unresolvable dependency graphs.
func (s *Scheduler) WithFallback(f CycleFallback) *Scheduler {
	c := *s
	c.fallback = f
	return &c
}

// Calendar exposes the working-day calendar the scheduler was built with.
func (s *Scheduler) Calendar() *workcal.Calendar {
	return s.cal
}

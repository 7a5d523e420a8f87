package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/juliakramer/slipway/internal/domain"
)

// Person options
type PersonOption func(*domain.Person)

func WithFTE(fte float64) PersonOption {
	return func(p *domain.Person) {
		p.FTE = fte
	}
}

func WithVacation(start, end time.Time) PersonOption {
	return func(p *domain.Person) {
		p.Vacations = append(p.Vacations, domain.VacationRange{
			ID:       uuid.New().String(),
			PersonID: p.ID,
			Start:    start,
			End:      end,
		})
	}
}

func NewTestPerson(name string, role domain.Role, opts ...PersonOption) *domain.Person {
	now := time.Now().UTC()
	p := &domain.Person{
		ID:        uuid.New().String(),
		Name:      name,
		Role:      role,
		FTE:       1.0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Project options
type ProjectOption func(*domain.Project)

func WithPriority(prio int) ProjectOption {
	return func(p *domain.Project) {
		p.Priority = prio
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithExplicitStart(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.ExplicitStart = &d
	}
}

func WithRequestedDelivery(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.RequestedDelivery = &d
	}
}

func WithEffort(role domain.Role, totalDays, percentDone float64) ProjectOption {
	return func(p *domain.Project) {
		if p.Efforts == nil {
			p.Efforts = make(map[domain.Role]domain.RoleEffort)
		}
		p.Efforts[role] = domain.RoleEffort{TotalEffortDays: totalDays, PercentDone: percentDone}
	}
}

func WithEdge(from, to domain.Role, kind domain.DependencyKind) ProjectOption {
	return func(p *domain.Project) {
		if p.Graph == nil {
			p.Graph = &domain.RoleGraph{}
		}
		p.Graph.Edges = append(p.Graph.Edges, domain.DependencyEdge{From: from, To: to, Kind: kind})
	}
}

func WithWorkerStatus(role domain.Role, status domain.WorkerStatus) ProjectOption {
	return func(p *domain.Project) {
		if p.Graph == nil {
			p.Graph = &domain.RoleGraph{}
		}
		if p.Graph.Statuses == nil {
			p.Graph.Statuses = make(map[domain.Role]domain.WorkerStatus)
		}
		p.Graph.Statuses[role] = status
	}
}

func WithCreatedAt(t time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.CreatedAt = t
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    domain.ProjectNotStarted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestAssignment links a person to a role on a project at the given
// allocation.
func NewTestAssignment(personID, projectID string, role domain.Role, fte float64) *domain.Assignment {
	return &domain.Assignment{
		ID:            uuid.New().String(),
		PersonID:      personID,
		ProjectID:     projectID,
		Role:          role,
		AllocationFTE: fte,
		CreatedAt:     time.Now().UTC(),
	}
}

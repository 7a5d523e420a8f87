package domain

import (
	"fmt"
	"time"
)

// RoleEffort is the estimated work for one role on a project, in effort-days,
// together with how much of it is already done.
type RoleEffort struct {
	TotalEffortDays float64
	PercentDone     float64
}

// Remaining returns the effort-days still outstanding, never negative.
func (e RoleEffort) Remaining() float64 {
	rem := e.TotalEffortDays * (1 - e.PercentDone/100)
	if rem < 0 {
		return 0
	}
	return rem
}

// Validate checks effort bounds.
func (e RoleEffort) Validate() error {
	if e.TotalEffortDays < 0 {
		return fmt.Errorf("total effort must be >= 0, got %.2f", e.TotalEffortDays)
	}
	if e.PercentDone < 0 || e.PercentDone > 100 {
		return fmt.Errorf("percent done must be in [0,100], got %.2f", e.PercentDone)
	}
	return nil
}

// DependencyEdge expresses a hand-off between two roles on the same project:
// From must finish before To can start (for blocking and waiting kinds).
type DependencyEdge struct {
	From Role
	To   Role
	Kind DependencyKind
}

// RoleGraph is a project's workflow dependency graph: directed edges between
// roles plus a per-role worker status used for penalty shifts.
type RoleGraph struct {
	Edges    []DependencyEdge
	Statuses map[Role]WorkerStatus
}

// DependenciesOf returns the set of roles the given role directly depends on.
// Only ordering edges (blocking, waiting) count.
func (g *RoleGraph) DependenciesOf(role Role) []Role {
	var deps []Role
	for _, e := range g.Edges {
		if e.To == role && e.Kind.Ordering() {
			deps = append(deps, e.From)
		}
	}
	return deps
}

// Project is a unit of deliverable work with per-role effort estimates and an
// optional workflow dependency graph. Efforts, graph, and assignments are
// read-only inputs to a scheduling pass.
type Project struct {
	ID                string
	Name              string
	Priority          int
	Status            ProjectStatus
	ExplicitStart     *time.Time
	RequestedDelivery *time.Time
	Efforts           map[Role]RoleEffort
	Graph             *RoleGraph
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate checks the project's own fields and every role effort.
func (p *Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if !ValidProjectStatuses[string(p.Status)] {
		return fmt.Errorf("project %q has unknown status %q", p.Name, p.Status)
	}
	for role, effort := range p.Efforts {
		if role == "" {
			return fmt.Errorf("project %q has an effort entry with an empty role", p.Name)
		}
		if err := effort.Validate(); err != nil {
			return fmt.Errorf("project %q role %q: %w", p.Name, role, err)
		}
	}
	if p.Graph != nil {
		if err := p.validateGraph(); err != nil {
			return err
		}
	}
	return nil
}

// validateGraph checks that every role referenced by the graph has an effort
// entry, so role keys stay consistent before scheduling ever sees them.
func (p *Project) validateGraph() error {
	for _, e := range p.Graph.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("project %q has a dependency edge with an empty role", p.Name)
		}
		if e.From == e.To {
			return fmt.Errorf("project %q has a self-dependency on role %q", p.Name, e.From)
		}
		if _, ok := p.Efforts[e.From]; !ok {
			return fmt.Errorf("project %q dependency references unknown role %q", p.Name, e.From)
		}
		if _, ok := p.Efforts[e.To]; !ok {
			return fmt.Errorf("project %q dependency references unknown role %q", p.Name, e.To)
		}
	}
	for role, status := range p.Graph.Statuses {
		if _, ok := p.Efforts[role]; !ok {
			return fmt.Errorf("project %q worker status references unknown role %q", p.Name, role)
		}
		if !ValidWorkerStatuses[string(status)] {
			return fmt.Errorf("project %q role %q has unknown worker status %q", p.Name, role, status)
		}
	}
	return nil
}

// ValidateAssignments checks that every assignment for this project names a
// role the project actually estimates work for.
func (p *Project) ValidateAssignments(assignments []*Assignment) error {
	for _, a := range assignments {
		if a.ProjectID != p.ID {
			continue
		}
		if err := a.Validate(); err != nil {
			return fmt.Errorf("project %q: %w", p.Name, err)
		}
		if _, ok := p.Efforts[a.Role]; !ok {
			return fmt.Errorf("project %q assignment references unknown role %q", p.Name, a.Role)
		}
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/juliakramer/slipway/internal/domain"
	"github.com/juliakramer/slipway/internal/repository"
)

type assignmentService struct {
	assignments repository.AssignmentRepo
	people      repository.PersonRepo
	projects    repository.ProjectRepo
}

func NewAssignmentService(assignments repository.AssignmentRepo, people repository.PersonRepo, projects repository.ProjectRepo) AssignmentService {
	return &assignmentService{assignments: assignments, people: people, projects: projects}
}

// Assign validates the assignment against both sides of the link: the person
// must exist and the project must estimate work for the assigned role.
func (s *assignmentService) Assign(ctx context.Context, a *domain.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if _, err := s.people.GetByID(ctx, a.PersonID); err != nil {
		return fmt.Errorf("resolving person: %w", err)
	}
	project, err := s.projects.GetByID(ctx, a.ProjectID)
	if err != nil {
		return fmt.Errorf("resolving project: %w", err)
	}
	if _, ok := project.Efforts[a.Role]; !ok {
		return fmt.Errorf("project %q has no effort estimate for role %q", project.Name, a.Role)
	}

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	a.CreatedAt = time.Now().UTC()
	return s.assignments.Create(ctx, a)
}

func (s *assignmentService) ListByProject(ctx context.Context, projectID string) ([]*domain.Assignment, error) {
	return s.assignments.ListByProject(ctx, projectID)
}

func (s *assignmentService) Unassign(ctx context.Context, id string) error {
	return s.assignments.Delete(ctx, id)
}

package repository

import (
	"context"

	"github.com/juliakramer/slipway/internal/domain"
	"github.com/juliakramer/slipway/internal/workcal"
)

type PersonRepo interface {
	Create(ctx context.Context, p *domain.Person) error
	GetByID(ctx context.Context, id string) (*domain.Person, error)
	List(ctx context.Context) ([]*domain.Person, error)
	Update(ctx context.Context, p *domain.Person) error
	Delete(ctx context.Context, id string) error

	AddVacation(ctx context.Context, v *domain.VacationRange) error
	RemoveVacation(ctx context.Context, id string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByName(ctx context.Context, name string) (*domain.Project, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type AssignmentRepo interface {
	Create(ctx context.Context, a *domain.Assignment) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.Assignment, error)
	ListAll(ctx context.Context) ([]*domain.Assignment, error)
	Delete(ctx context.Context, id string) error
}

type SettingsRepo interface {
	GetCalendarConfig(ctx context.Context) (workcal.Config, error)
	SetCalendarConfig(ctx context.Context, cfg workcal.Config) error
}

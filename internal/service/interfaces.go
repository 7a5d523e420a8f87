package service

import (
	"context"

	"github.com/juliakramer/slipway/internal/app"
	"github.com/juliakramer/slipway/internal/domain"
	"github.com/juliakramer/slipway/internal/workcal"
)

type PersonService interface {
	Create(ctx context.Context, p *domain.Person) error
	GetByID(ctx context.Context, id string) (*domain.Person, error)
	List(ctx context.Context) ([]*domain.Person, error)
	Update(ctx context.Context, p *domain.Person) error
	Delete(ctx context.Context, id string) error
	AddVacation(ctx context.Context, v *domain.VacationRange) error
	RemoveVacation(ctx context.Context, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type AssignmentService interface {
	Assign(ctx context.Context, a *domain.Assignment) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.Assignment, error)
	Unassign(ctx context.Context, id string) error
}

type SettingsService interface {
	GetCalendarConfig(ctx context.Context) (workcal.Config, error)
	SetCalendarConfig(ctx context.Context, cfg workcal.Config) error
}

type ForecastService interface {
	Forecast(ctx context.Context, req app.ForecastRequest) (*app.ForecastResponse, error)
}

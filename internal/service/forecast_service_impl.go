package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/juliakramer/slipway/internal/app"
	"github.com/juliakramer/slipway/internal/domain"
	"github.com/juliakramer/slipway/internal/repository"
	"github.com/juliakramer/slipway/internal/scheduler"
	"github.com/juliakramer/slipway/internal/workcal"
)

type forecastService struct {
	projects    repository.ProjectRepo
	people      repository.PersonRepo
	assignments repository.AssignmentRepo
	settings    repository.SettingsRepo
	observer    PassObserver
}

func NewForecastService(
	projects repository.ProjectRepo,
	people repository.PersonRepo,
	assignments repository.AssignmentRepo,
	settings repository.SettingsRepo,
	observers ...PassObserver,
) ForecastService {
	return &forecastService{
		projects:    projects,
		people:      people,
		assignments: assignments,
		settings:    settings,
		observer:    passObserverOrNoop(observers),
	}
}

func (s *forecastService) Forecast(ctx context.Context, req app.ForecastRequest) (*app.ForecastResponse, error) {
	started := time.Now()
	resp, err := s.forecast(ctx, req)

	event := PassEvent{Duration: time.Since(started), Success: err == nil, Err: err, StartedAt: started}
	if resp != nil {
		event.ProjectCount = len(resp.Projects)
	}
	s.observer.ObservePass(ctx, event)

	return resp, err
}

func (s *forecastService) forecast(ctx context.Context, req app.ForecastRequest) (*app.ForecastResponse, error) {
	today := time.Now().UTC()
	if req.Now != nil {
		today = *req.Now
	}
	today = workcal.Midnight(today)

	cfg, err := s.settings.GetCalendarConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading calendar configuration: %w", err)
	}
	cal, err := workcal.New(cfg)
	if err != nil {
		return nil, &app.ForecastError{Code: app.ErrNoCalendar, Message: err.Error()}
	}

	inputs, err := s.loadInputs(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	sched := scheduler.New(cal)
	var forecasts []*scheduler.Forecast
	if req.ProjectID != "" {
		// Single ad-hoc project: scheduled outside the chain.
		f, err := sched.ForecastProject(inputs[0], today)
		if err != nil {
			return nil, mapSchedulerError(err)
		}
		forecasts = []*scheduler.Forecast{f}
	} else {
		forecasts, err = sched.ForecastChain(inputs, today)
		if err != nil {
			return nil, mapSchedulerError(err)
		}
	}

	resp := &app.ForecastResponse{
		GeneratedAt: today,
		Calendar:    cfg,
		Projects:    make([]app.ProjectForecast, 0, len(forecasts)),
	}
	for _, f := range forecasts {
		resp.Projects = append(resp.Projects, toProjectForecast(f))
	}
	return resp, nil
}

// loadInputs loads and validates every record a pass depends on, then joins
// assignments with the roster into scheduler inputs. Role-key consistency is
// enforced here, before the scheduler ever runs.
func (s *forecastService) loadInputs(ctx context.Context, projectID string) ([]scheduler.ProjectInput, error) {
	people, err := s.people.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}
	roster := make(map[string]*domain.Person, len(people))
	for _, p := range people {
		if err := p.Validate(); err != nil {
			return nil, invalidInput(err)
		}
		roster[p.ID] = p
	}

	projects, err := s.listProjects(ctx, projectID)
	if err != nil {
		return nil, err
	}

	inputs := make([]scheduler.ProjectInput, 0, len(projects))
	for _, project := range projects {
		if err := project.Validate(); err != nil {
			return nil, invalidInput(err)
		}

		assignments, err := s.assignments.ListByProject(ctx, project.ID)
		if err != nil {
			return nil, fmt.Errorf("loading assignments for %q: %w", project.Name, err)
		}
		if err := project.ValidateAssignments(assignments); err != nil {
			return nil, invalidInput(err)
		}

		assignees, err := joinAssignees(project.Name, assignments, roster)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, scheduler.ProjectInput{
			ID:                project.ID,
			Name:              project.Name,
			Priority:          project.Priority,
			Status:            project.Status,
			ExplicitStart:     project.ExplicitStart,
			RequestedDelivery: project.RequestedDelivery,
			CreatedAt:         project.CreatedAt,
			Efforts:           project.Efforts,
			Graph:             project.Graph,
			Assignees:         assignees,
		})
	}
	return inputs, nil
}

func (s *forecastService) listProjects(ctx context.Context, projectID string) ([]*domain.Project, error) {
	if projectID != "" {
		p, err := s.projects.GetByID(ctx, projectID)
		if err != nil {
			return nil, invalidInput(fmt.Errorf("loading project: %w", err))
		}
		return []*domain.Project{p}, nil
	}
	projects, err := s.projects.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	return projects, nil
}

func invalidInput(err error) error {
	return &app.ForecastError{Code: app.ErrInvalidInput, Message: err.Error()}
}

func mapSchedulerError(err error) error {
	var de *scheduler.DivergenceError
	if errors.As(err, &de) {
		return &app.ForecastError{Code: app.ErrDivergence, Message: de.Error()}
	}
	return err
}

func toProjectForecast(f *scheduler.Forecast) app.ProjectForecast {
	pf := app.ProjectForecast{
		ProjectID:              f.ProjectID,
		ProjectName:            f.ProjectName,
		StartDate:              f.Start,
		EndDate:                f.End,
		RequestedDelivery:      f.RequestedDelivery,
		DiffWorkdays:           f.DiffWorkdays,
		BlockingProject:        f.BlockingProject,
		LostWorkdaysToVacation: f.LostWorkdaysToVacation,
	}
	for _, r := range f.Roles {
		pf.Roles = append(pf.Roles, app.RoleForecast{
			Role:      string(r.Role),
			StartDate: r.Start,
			EndDate:   r.End,
		})
	}
	if f.CycleDetected {
		pf.Warnings = append(pf.Warnings, app.Warning{
			ProjectID:   f.ProjectID,
			ProjectName: f.ProjectName,
			Code:        app.WarnCyclicDependency,
			Message:     "role dependency graph could not be fully resolved; dates assume unresolved roles run in parallel",
		})
	}
	return pf
}

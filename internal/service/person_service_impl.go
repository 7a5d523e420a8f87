package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/juliakramer/slipway/internal/domain"
	"github.com/juliakramer/slipway/internal/repository"
)

type personService struct {
	people repository.PersonRepo
}

func NewPersonService(people repository.PersonRepo) PersonService {
	return &personService{people: people}
}

func (s *personService) Create(ctx context.Context, p *domain.Person) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.people.Create(ctx, p)
}

func (s *personService) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	return s.people.GetByID(ctx, id)
}

func (s *personService) List(ctx context.Context) ([]*domain.Person, error) {
	return s.people.List(ctx)
}

func (s *personService) Update(ctx context.Context, p *domain.Person) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.people.Update(ctx, p)
}

func (s *personService) Delete(ctx context.Context, id string) error {
	return s.people.Delete(ctx, id)
}

func (s *personService) AddVacation(ctx context.Context, v *domain.VacationRange) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return s.people.AddVacation(ctx, v)
}

func (s *personService) RemoveVacation(ctx context.Context, id string) error {
	return s.people.RemoveVacation(ctx, id)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/juliakramer/slipway/internal/domain"
	"github.com/juliakramer/slipway/internal/repository"
	"github.com/juliakramer/slipway/internal/testutil"
	"github.com/juliakramer/slipway/internal/workcal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonService_CreateAssignsIDAndTimestamps(t *testing.T) {
	svc := NewPersonService(repository.NewSQLitePersonRepo(testutil.NewTestDB(t)))
	ctx := context.Background()

	ann := &domain.Person{Name: "Ann", Role: "backend", FTE: 1}
	require.NoError(t, svc.Create(ctx, ann))
	require.NotEmpty(t, ann.ID)

	got, err := svc.GetByID(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestPersonService_CreateRejectsInvalid(t *testing.T) {
	svc := NewPersonService(repository.NewSQLitePersonRepo(testutil.NewTestDB(t)))

	err := svc.Create(context.Background(), &domain.Person{Name: "Ann", Role: "backend"})
	assert.ErrorContains(t, err, "non-positive FTE")
}

func TestPersonService_VacationLifecycle(t *testing.T) {
	svc := NewPersonService(repository.NewSQLitePersonRepo(testutil.NewTestDB(t)))
	ctx := context.Background()

	ann := &domain.Person{Name: "Ann", Role: "backend", FTE: 1}
	require.NoError(t, svc.Create(ctx, ann))

	v := &domain.VacationRange{
		PersonID: ann.ID,
		Start:    workcal.Date(2026, time.July, 6),
		End:      workcal.Date(2026, time.July, 17),
	}
	require.NoError(t, svc.AddVacation(ctx, v))
	require.NotEmpty(t, v.ID)

	inverted := &domain.VacationRange{
		PersonID: ann.ID,
		Start:    workcal.Date(2026, time.July, 17),
		End:      workcal.Date(2026, time.July, 6),
	}
	assert.Error(t, svc.AddVacation(ctx, inverted))

	got, err := svc.GetByID(ctx, ann.ID)
	require.NoError(t, err)
	require.Len(t, got.Vacations, 1)

	require.NoError(t, svc.RemoveVacation(ctx, v.ID))
	got, err = svc.GetByID(ctx, ann.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Vacations)
}

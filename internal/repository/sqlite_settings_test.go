package repository

import (
	"context"
	"testing"

	"github.com/juliakramer/slipway/internal/testutil"
	"github.com/juliakramer/slipway/internal/workcal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_UnsetYieldsZeroConfig(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))

	cfg, err := repo.GetCalendarConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, workcal.Config{}, cfg, "fresh workspace counts weekends only")
}

func TestSettingsRepo_RoundTrip(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	want := workcal.Config{IncludeHolidays: true, CountryCode: "US", SubdivisionCode: "CA"}
	require.NoError(t, repo.SetCalendarConfig(ctx, want))

	got, err := repo.GetCalendarConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsRepo_Overwrite(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SetCalendarConfig(ctx, workcal.Config{IncludeHolidays: true, CountryCode: "DE"}))
	require.NoError(t, repo.SetCalendarConfig(ctx, workcal.Config{}))

	got, err := repo.GetCalendarConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, workcal.Config{}, got, "disabling holidays clears the country too")
}

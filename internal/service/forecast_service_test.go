package service

import (
	"context"
	"testing"
	"time"

	"github.com/juliakramer/slipway/internal/app"
	"github.com/juliakramer/slipway/internal/domain"
	"github.com/juliakramer/slipway/internal/repository"
	"github.com/juliakramer/slipway/internal/testutil"
	"github.com/juliakramer/slipway/internal/workcal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type forecastFixture struct {
	people      *repository.SQLitePersonRepo
	projects    *repository.SQLiteProjectRepo
	assignments *repository.SQLiteAssignmentRepo
	settings    *repository.SQLiteSettingsRepo
	svc         ForecastService
}

func newForecastFixture(t *testing.T, observers ...PassObserver) *forecastFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	f := &forecastFixture{
		people:      repository.NewSQLitePersonRepo(database),
		projects:    repository.NewSQLiteProjectRepo(database),
		assignments: repository.NewSQLiteAssignmentRepo(database),
		settings:    repository.NewSQLiteSettingsRepo(database),
	}
	f.svc = NewForecastService(f.projects, f.people, f.assignments, f.settings, observers...)
	return f
}

func fixedNow() *time.Time {
	now := workcal.Date(2026, time.March, 2) // Monday
	return &now
}

func TestForecastService_ChainsActivePortfolio(t *testing.T) {
	f := newForecastFixture(t)
	ctx := context.Background()

	alpha := testutil.NewTestProject("alpha",
		testutil.WithPriority(1),
		testutil.WithEffort("backend", 5, 0),
	)
	requested := workcal.Date(2026, time.March, 9)
	beta := testutil.NewTestProject("beta",
		testutil.WithPriority(2),
		testutil.WithEffort("backend", 3, 0),
		testutil.WithRequestedDelivery(requested),
	)
	done := testutil.NewTestProject("shipped",
		testutil.WithPriority(0),
		testutil.WithProjectStatus(domain.ProjectDone),
	)
	require.NoError(t, f.projects.Create(ctx, alpha))
	require.NoError(t, f.projects.Create(ctx, beta))
	require.NoError(t, f.projects.Create(ctx, done))

	resp, err := f.svc.Forecast(ctx, app.ForecastRequest{Now: fixedNow()})
	require.NoError(t, err)
	require.Len(t, resp.Projects, 2, "done projects stay out of the chain")

	first, second := resp.Projects[0], resp.Projects[1]
	assert.Equal(t, "alpha", first.ProjectName)
	assert.Equal(t, workcal.Date(2026, time.March, 2), first.StartDate)
	assert.Equal(t, workcal.Date(2026, time.March, 9), first.EndDate)
	assert.Empty(t, first.BlockingProject)

	assert.Equal(t, "beta", second.ProjectName)
	assert.Equal(t, workcal.Date(2026, time.March, 9), second.StartDate)
	assert.Equal(t, workcal.Date(2026, time.March, 12), second.EndDate)
	assert.Equal(t, "alpha", second.BlockingProject)
	assert.Equal(t, -3, second.DiffWorkdays, "requested Monday, lands Thursday")

	assert.Equal(t, *fixedNow(), resp.GeneratedAt)
	assert.Equal(t, workcal.Config{}, resp.Calendar)
}

func TestForecastService_SingleProjectSkipsChain(t *testing.T) {
	f := newForecastFixture(t)
	ctx := context.Background()

	blocker := testutil.NewTestProject("blocker",
		testutil.WithPriority(1), testutil.WithEffort("backend", 10, 0))
	target := testutil.NewTestProject("target",
		testutil.WithPriority(2), testutil.WithEffort("backend", 2, 0))
	require.NoError(t, f.projects.Create(ctx, blocker))
	require.NoError(t, f.projects.Create(ctx, target))

	resp, err := f.svc.Forecast(ctx, app.ForecastRequest{ProjectID: target.ID, Now: fixedNow()})
	require.NoError(t, err)
	require.Len(t, resp.Projects, 1)

	got := resp.Projects[0]
	assert.Equal(t, "target", got.ProjectName)
	assert.Equal(t, workcal.Date(2026, time.March, 2), got.StartDate, "scheduled from today, not behind the queue")
	assert.Equal(t, workcal.Date(2026, time.March, 4), got.EndDate)
	assert.Empty(t, got.BlockingProject)
}

func TestForecastService_StaffedProjectLosesVacationDays(t *testing.T) {
	f := newForecastFixture(t)
	ctx := context.Background()

	ann := testutil.NewTestPerson("Ann", "backend",
		testutil.WithVacation(workcal.Date(2026, time.March, 2), workcal.Date(2026, time.March, 6)))
	require.NoError(t, f.people.Create(ctx, ann))

	p := testutil.NewTestProject("staffed",
		testutil.WithEffort("backend", 3, 0),
		testutil.WithWorkerStatus("backend", domain.WorkerActive),
	)
	require.NoError(t, f.projects.Create(ctx, p))
	require.NoError(t, f.assignments.Create(ctx, testutil.NewTestAssignment(ann.ID, p.ID, "backend", 1)))

	resp, err := f.svc.Forecast(ctx, app.ForecastRequest{Now: fixedNow()})
	require.NoError(t, err)
	require.Len(t, resp.Projects, 1)

	got := resp.Projects[0]
	assert.Equal(t, workcal.Date(2026, time.March, 11), got.EndDate, "vacation week pushes the work into the next")
	assert.Equal(t, 4, got.LostWorkdaysToVacation)
	require.Len(t, got.Roles, 1)
	assert.Equal(t, "backend", got.Roles[0].Role)
}

func TestForecastService_CycleProducesWarning(t *testing.T) {
	f := newForecastFixture(t)
	ctx := context.Background()

	p := testutil.NewTestProject("tangled",
		testutil.WithEffort("backend", 2, 0),
		testutil.WithEffort("frontend", 2, 0),
		testutil.WithEdge("backend", "frontend", domain.DependencyBlocking),
		testutil.WithEdge("frontend", "backend", domain.DependencyBlocking),
	)
	require.NoError(t, f.projects.Create(ctx, p))

	resp, err := f.svc.Forecast(ctx, app.ForecastRequest{Now: fixedNow()})
	require.NoError(t, err)
	require.Len(t, resp.Projects, 1)

	warnings := resp.Projects[0].Warnings
	require.Len(t, warnings, 1)
	assert.Equal(t, app.WarnCyclicDependency, warnings[0].Code)
	assert.Equal(t, "tangled", warnings[0].ProjectName)
}

func TestForecastService_UnknownCountryFailsWithCode(t *testing.T) {
	f := newForecastFixture(t)
	ctx := context.Background()

	require.NoError(t, f.settings.SetCalendarConfig(ctx,
		workcal.Config{IncludeHolidays: true, CountryCode: "ZZ"}))

	_, err := f.svc.Forecast(ctx, app.ForecastRequest{Now: fixedNow()})
	var fe *app.ForecastError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, app.ErrNoCalendar, fe.Code)
}

func TestForecastService_BadAssignmentFailsWithCode(t *testing.T) {
	f := newForecastFixture(t)
	ctx := context.Background()

	ann := testutil.NewTestPerson("Ann", "backend")
	require.NoError(t, f.people.Create(ctx, ann))

	p := testutil.NewTestProject("estimated", testutil.WithEffort("backend", 2, 0))
	require.NoError(t, f.projects.Create(ctx, p))

	// Bypass the assignment service: the row references a role the project
	// never estimated.
	require.NoError(t, f.assignments.Create(ctx, testutil.NewTestAssignment(ann.ID, p.ID, "qa", 1)))

	_, err := f.svc.Forecast(ctx, app.ForecastRequest{Now: fixedNow()})
	var fe *app.ForecastError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, app.ErrInvalidInput, fe.Code)
	assert.Contains(t, fe.Message, "qa")
}

func TestForecastService_EmptyPortfolio(t *testing.T) {
	f := newForecastFixture(t)

	resp, err := f.svc.Forecast(context.Background(), app.ForecastRequest{Now: fixedNow()})
	require.NoError(t, err)
	assert.Empty(t, resp.Projects)
}

type recordingObserver struct {
	events []PassEvent
}

func (r *recordingObserver) ObservePass(_ context.Context, event PassEvent) {
	r.events = append(r.events, event)
}

func TestForecastService_EmitsPassEvents(t *testing.T) {
	obs := &recordingObserver{}
	f := newForecastFixture(t, obs)
	ctx := context.Background()

	require.NoError(t, f.projects.Create(ctx, testutil.NewTestProject("solo",
		testutil.WithEffort("backend", 1, 0))))

	_, err := f.svc.Forecast(ctx, app.ForecastRequest{Now: fixedNow()})
	require.NoError(t, err)

	require.Len(t, obs.events, 1)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, 1, obs.events[0].ProjectCount)
	assert.NoError(t, obs.events[0].Err)
}

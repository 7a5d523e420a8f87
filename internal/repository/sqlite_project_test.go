package repository

import (
	"context"
	"testing"
	"time"

	"github.com/juliakramer/slipway/internal/domain"
	"github.com/juliakramer/slipway/internal/testutil"
	"github.com/juliakramer/slipway/internal/workcal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_RoundTripWithSatellites(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProject("checkout",
		testutil.WithPriority(2),
		testutil.WithExplicitStart(workcal.Date(2026, time.March, 2)),
		testutil.WithRequestedDelivery(workcal.Date(2026, time.April, 3)),
		testutil.WithEffort("backend", 10, 25),
		testutil.WithEffort("frontend", 5, 0),
		testutil.WithEdge("backend", "frontend", domain.DependencyBlocking),
		testutil.WithWorkerStatus("backend", domain.WorkerBlocked),
	)
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)

	assert.Equal(t, "checkout", got.Name)
	assert.Equal(t, 2, got.Priority)
	assert.Equal(t, domain.ProjectNotStarted, got.Status)
	require.NotNil(t, got.ExplicitStart)
	assert.Equal(t, workcal.Date(2026, time.March, 2), *got.ExplicitStart)
	require.NotNil(t, got.RequestedDelivery)
	assert.Equal(t, workcal.Date(2026, time.April, 3), *got.RequestedDelivery)

	assert.Equal(t, domain.RoleEffort{TotalEffortDays: 10, PercentDone: 25}, got.Efforts["backend"])
	assert.Equal(t, domain.RoleEffort{TotalEffortDays: 5}, got.Efforts["frontend"])

	require.NotNil(t, got.Graph)
	require.Len(t, got.Graph.Edges, 1)
	assert.Equal(t, domain.DependencyEdge{From: "backend", To: "frontend", Kind: domain.DependencyBlocking}, got.Graph.Edges[0])
	assert.Equal(t, domain.WorkerBlocked, got.Graph.Statuses["backend"])
}

func TestProjectRepo_NoGraphStaysNil(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProject("flat", testutil.WithEffort("backend", 3, 0))
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Graph)
}

func TestProjectRepo_GetByName(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProject("checkout")
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByName(ctx, "checkout")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = repo.GetByName(ctx, "missing")
	assert.ErrorContains(t, err, "project not found")
}

func TestProjectRepo_ListFiltersInactive(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("live",
		testutil.WithProjectStatus(domain.ProjectInProgress), testutil.WithPriority(1))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("shipped",
		testutil.WithProjectStatus(domain.ProjectDone), testutil.WithPriority(2))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("shelved",
		testutil.WithProjectStatus(domain.ProjectArchived), testutil.WithPriority(3))))

	active, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "live", active[0].Name)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestProjectRepo_UpdateReplacesSatellites(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProject("evolving",
		testutil.WithEffort("backend", 10, 0),
		testutil.WithEdge("backend", "frontend", domain.DependencyBlocking),
		testutil.WithEffort("frontend", 2, 0),
	)
	require.NoError(t, repo.Create(ctx, p))

	p.Efforts = map[domain.Role]domain.RoleEffort{"backend": {TotalEffortDays: 12, PercentDone: 50}}
	p.Graph = nil
	p.Status = domain.ProjectInProgress
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectInProgress, got.Status)
	assert.Len(t, got.Efforts, 1)
	assert.Equal(t, domain.RoleEffort{TotalEffortDays: 12, PercentDone: 50}, got.Efforts["backend"])
	assert.Nil(t, got.Graph, "dropped edges and statuses stay dropped")
}

func TestProjectRepo_DeleteCascades(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProject("doomed",
		testutil.WithEffort("backend", 1, 0),
		testutil.WithEdge("backend", "qa", domain.DependencyWaiting),
		testutil.WithEffort("qa", 1, 0),
		testutil.WithWorkerStatus("qa", domain.WorkerWaiting),
	)
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Delete(ctx, p.ID))

	for _, table := range []string{"role_efforts", "role_dependencies", "role_statuses"} {
		var count int
		require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&count))
		assert.Zero(t, count, table)
	}
}

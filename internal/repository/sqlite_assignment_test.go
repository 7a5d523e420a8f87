package repository

import (
	"context"
	"testing"

	"github.com/juliakramer/slipway/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentRepo_CreateAndListByProject(t *testing.T) {
	database := testutil.NewTestDB(t)
	people := NewSQLitePersonRepo(database)
	projects := NewSQLiteProjectRepo(database)
	repo := NewSQLiteAssignmentRepo(database)
	ctx := context.Background()

	ann := testutil.NewTestPerson("Ann", "backend")
	bob := testutil.NewTestPerson("Bob", "frontend")
	require.NoError(t, people.Create(ctx, ann))
	require.NoError(t, people.Create(ctx, bob))

	checkout := testutil.NewTestProject("checkout")
	search := testutil.NewTestProject("search")
	require.NoError(t, projects.Create(ctx, checkout))
	require.NoError(t, projects.Create(ctx, search))

	a1 := testutil.NewTestAssignment(ann.ID, checkout.ID, "backend", 1)
	a2 := testutil.NewTestAssignment(bob.ID, checkout.ID, "frontend", 0.5)
	a3 := testutil.NewTestAssignment(ann.ID, search.ID, "backend", 0.25)
	require.NoError(t, repo.Create(ctx, a1))
	require.NoError(t, repo.Create(ctx, a2))
	require.NoError(t, repo.Create(ctx, a3))

	got, err := repo.ListByProject(ctx, checkout.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a1.ID, got[0].ID, "ordered by role")
	assert.Equal(t, a2.ID, got[1].ID)
	assert.Equal(t, 0.5, got[1].AllocationFTE)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAssignmentRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	people := NewSQLitePersonRepo(database)
	projects := NewSQLiteProjectRepo(database)
	repo := NewSQLiteAssignmentRepo(database)
	ctx := context.Background()

	ann := testutil.NewTestPerson("Ann", "backend")
	require.NoError(t, people.Create(ctx, ann))
	p := testutil.NewTestProject("checkout")
	require.NoError(t, projects.Create(ctx, p))

	a := testutil.NewTestAssignment(ann.ID, p.ID, "backend", 1)
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Delete(ctx, a.ID))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAssignmentRepo_CascadesOnOwnerDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	people := NewSQLitePersonRepo(database)
	projects := NewSQLiteProjectRepo(database)
	repo := NewSQLiteAssignmentRepo(database)
	ctx := context.Background()

	ann := testutil.NewTestPerson("Ann", "backend")
	bob := testutil.NewTestPerson("Bob", "backend")
	require.NoError(t, people.Create(ctx, ann))
	require.NoError(t, people.Create(ctx, bob))
	p := testutil.NewTestProject("checkout")
	require.NoError(t, projects.Create(ctx, p))

	require.NoError(t, repo.Create(ctx, testutil.NewTestAssignment(ann.ID, p.ID, "backend", 1)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestAssignment(bob.ID, p.ID, "backend", 1)))

	require.NoError(t, people.Delete(ctx, ann.ID))
	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1, "deleting a person removes only their assignments")
	assert.Equal(t, bob.ID, got[0].PersonID)

	require.NoError(t, projects.Delete(ctx, p.ID))
	got, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got, "deleting a project removes the rest")
}

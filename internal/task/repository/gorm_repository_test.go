package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Real-Streeter/liberty-command/internal/task/domain"
	"github.com/Real-Streeter/liberty-command/internal/testutil"
	"github.com/Real-Streeter/liberty-command/pkg/apperr"
)

type placement = testutil.Placement

func at(columnID string, order int) placement {
	return placement{ColumnID: columnID, SortOrder: order}
}

func newBoard(t *testing.T) (TaskRepository, func() map[string]placement) {
	t.Helper()
	db := testutil.NewDB(t)
	testutil.SeedColumns(t, db, "col-a", "col-b")
	testutil.SeedTask(t, db, "T1", "col-a", 0)
	testutil.SeedTask(t, db, "T2", "col-a", 1)
	testutil.SeedTask(t, db, "T3", "col-b", 0)
	return NewGormTaskRepository(db), func() map[string]placement { return testutil.Placements(t, db) }
}

func TestReorderIntraColumnSwap(t *testing.T) {
	repo, state := newBoard(t)

	err := repo.Reorder(context.Background(), []domain.Move{
		{TaskID: "T2", ColumnID: "col-a", SortOrder: 0},
		{TaskID: "T1", ColumnID: "col-a", SortOrder: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]placement{
		"T1": at("col-a", 1),
		"T2": at("col-a", 0),
		"T3": at("col-b", 0),
	}, state())
}

func TestReorderCrossColumnMove(t *testing.T) {
	repo, state := newBoard(t)
	ctx := context.Background()

	// col-b needs two tasks for position 2 to be dense.
	require.NoError(t, repo.Create(ctx, &domain.Task{ID: "T4", ColumnID: "col-b", Content: "T4", Priority: domain.PriorityLow}))

	err := repo.Reorder(ctx, []domain.Move{
		{TaskID: "T2", ColumnID: "col-a", SortOrder: 0},
		{TaskID: "T3", ColumnID: "col-b", SortOrder: 0},
		{TaskID: "T4", ColumnID: "col-b", SortOrder: 1},
		{TaskID: "T1", ColumnID: "col-b", SortOrder: 2},
	})
	require.NoError(t, err)

	got := state()
	assert.Equal(t, at("col-b", 2), got["T1"])
	assert.Equal(t, at("col-a", 0), got["T2"])

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	var colA []string
	for _, task := range all {
		if task.ColumnID == "col-a" {
			colA = append(colA, task.ID)
		}
	}
	assert.Equal(t, []string{"T2"}, colA)
}

func TestReorderUnknownTaskRollsBack(t *testing.T) {
	repo, state := newBoard(t)
	before := state()

	err := repo.Reorder(context.Background(), []domain.Move{
		{TaskID: "T2", ColumnID: "col-a", SortOrder: 0},
		{TaskID: "T1", ColumnID: "col-b", SortOrder: 1},
		{TaskID: "ghost", ColumnID: "col-a", SortOrder: 1},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Contains(t, err.Error(), "ghost")

	assert.Equal(t, before, state())
}

func TestReorderUnknownColumnRollsBack(t *testing.T) {
	repo, state := newBoard(t)
	before := state()

	err := repo.Reorder(context.Background(), []domain.Move{
		{TaskID: "T1", ColumnID: "col-missing", SortOrder: 0},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Equal(t, before, state())
}

func TestReorderIsIdempotent(t *testing.T) {
	repo, state := newBoard(t)
	moves := []domain.Move{
		{TaskID: "T2", ColumnID: "col-a", SortOrder: 0},
		{TaskID: "T1", ColumnID: "col-b", SortOrder: 0},
		{TaskID: "T3", ColumnID: "col-b", SortOrder: 1},
	}

	require.NoError(t, repo.Reorder(context.Background(), moves))
	once := state()
	require.NoError(t, repo.Reorder(context.Background(), moves))

	assert.Equal(t, once, state())
}

func TestReorderEmptyIsNoop(t *testing.T) {
	repo, state := newBoard(t)
	before := state()

	require.NoError(t, repo.Reorder(context.Background(), nil))
	assert.Equal(t, before, state())
}

func TestCreateAppendsToColumn(t *testing.T) {
	repo, state := newBoard(t)
	ctx := context.Background()

	first := &domain.Task{ColumnID: "col-a", Content: "new", Priority: domain.PriorityStandard}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, 2, first.SortOrder)

	require.NoError(t, repo.Reorder(ctx, []domain.Move{{TaskID: "T3", ColumnID: "col-a", SortOrder: 3}}))

	empty := &domain.Task{ColumnID: "col-b", Content: "lonely", Priority: domain.PriorityStandard}
	require.NoError(t, repo.Create(ctx, empty))
	assert.Equal(t, 0, empty.SortOrder)
	assert.Equal(t, at("col-b", 0), state()[empty.ID])
}

func TestDeleteRenumbersSiblings(t *testing.T) {
	repo, state := newBoard(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &domain.Task{ID: "T4", ColumnID: "col-a", Content: "T4", Priority: domain.PriorityStandard}))

	deleted, err := repo.Delete(ctx, "T2")
	require.NoError(t, err)
	assert.True(t, deleted)

	got := state()
	assert.NotContains(t, got, "T2")
	assert.Equal(t, at("col-a", 0), got["T1"])
	assert.Equal(t, at("col-a", 1), got["T4"])
	assert.Equal(t, at("col-b", 0), got["T3"])

	deleted, err = repo.Delete(ctx, "T2")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestUpdateKeepsPlacement(t *testing.T) {
	repo, state := newBoard(t)
	ctx := context.Background()

	task, err := repo.FindByID(ctx, "T2")
	require.NoError(t, err)
	require.NotNil(t, task)

	owner := "Kevin"
	task.Content = "Lane Analysis"
	task.Owner = &owner
	task.SortOrder = 99
	require.NoError(t, repo.Update(ctx, task))

	reloaded, err := repo.FindByID(ctx, "T2")
	require.NoError(t, err)
	assert.Equal(t, "Lane Analysis", reloaded.Content)
	require.NotNil(t, reloaded.Owner)
	assert.Equal(t, "Kevin", *reloaded.Owner)
	assert.Equal(t, at("col-a", 1), state()["T2"])

	missing, err := repo.FindByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

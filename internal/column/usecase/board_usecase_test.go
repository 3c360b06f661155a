package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Real-Streeter/liberty-command/internal/column/domain"
	"github.com/Real-Streeter/liberty-command/internal/column/dto"
	columnrepo "github.com/Real-Streeter/liberty-command/internal/column/repository"
	"github.com/Real-Streeter/liberty-command/internal/seed"
	taskrepo "github.com/Real-Streeter/liberty-command/internal/task/repository"
	"github.com/Real-Streeter/liberty-command/internal/testutil"
)

func TestGetBoardGroupsTasksInOrder(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedColumns(t, db, "col-b", "col-a")
	testutil.SeedTask(t, db, "T2", "col-a", 1)
	testutil.SeedTask(t, db, "T1", "col-a", 0)
	testutil.SeedTask(t, db, "T3", "col-b", 0)

	uc := NewBoardUsecase(columnrepo.NewGormColumnRepository(db), taskrepo.NewGormTaskRepository(db))
	board, err := uc.GetBoard(context.Background())
	require.NoError(t, err)

	require.Len(t, board, 2)
	assert.Equal(t, "col-b", board[0].ID)
	assert.Equal(t, "col-a", board[1].ID)

	var ids []string
	for _, card := range board[1].Tasks {
		ids = append(ids, card.ID)
	}
	assert.Equal(t, []string{"T1", "T2"}, ids)
	assert.Len(t, board[0].Tasks, 1)
}

func TestEnsureDefaultColumnsIsRepeatable(t *testing.T) {
	db := testutil.NewDB(t)
	columns := columnrepo.NewGormColumnRepository(db)
	uc := NewBoardUsecase(columns, taskrepo.NewGormTaskRepository(db))
	ctx := context.Background()

	require.NoError(t, uc.EnsureDefaultColumns(ctx))
	require.NoError(t, uc.EnsureDefaultColumns(ctx))

	board, err := uc.GetBoard(ctx)
	require.NoError(t, err)
	require.Len(t, board, len(domain.DefaultColumns()))
	assert.Equal(t, domain.BacklogColumnID, board[0].ID)
	assert.NotNil(t, board[0].Tasks)
}

func TestSearchBoardFiltersTasks(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	_, err := seed.Run(ctx, db, "liberty")
	require.NoError(t, err)

	uc := NewBoardUsecase(columnrepo.NewGormColumnRepository(db), taskrepo.NewGormTaskRepository(db))
	count := func(board []dto.BoardColumn) (n int, ids map[string]bool) {
		ids = map[string]bool{}
		for _, col := range board {
			n += len(col.Tasks)
			for _, card := range col.Tasks {
				ids[card.ID] = true
			}
		}
		return n, ids
	}

	all, err := uc.SearchBoard(ctx, "   ")
	require.NoError(t, err)
	total, _ := count(all)
	assert.Equal(t, 40, total)

	// one typo in "Carrier"
	found, err := uc.SearchBoard(ctx, "carier")
	require.NoError(t, err)
	require.Len(t, found, len(all))
	n, ids := count(found)
	assert.Less(t, n, total)
	assert.True(t, ids["task-bl-3"])

	none, err := uc.SearchBoard(ctx, "zzzzqqq")
	require.NoError(t, err)
	n, _ = count(none)
	assert.Zero(t, n)
	for _, col := range none {
		assert.NotNil(t, col.Tasks)
	}
}

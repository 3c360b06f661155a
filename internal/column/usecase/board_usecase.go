package usecase

import (
	"context"

	"github.com/Real-Streeter/liberty-command/internal/column/domain"
	"github.com/Real-Streeter/liberty-command/internal/column/dto"
	"github.com/Real-Streeter/liberty-command/pkg/fuzzy"
	"github.com/Real-Streeter/liberty-command/pkg/logger"
)

var log = logger.Component("BoardUsecase")

type boardUsecase struct {
	columns ColumnStore
	tasks   TaskLister
}

// NewBoardUsecase creates a new instance of boardUsecase
func NewBoardUsecase(columns ColumnStore, tasks TaskLister) BoardUsecase {
	return &boardUsecase{columns: columns, tasks: tasks}
}

func (u *boardUsecase) GetBoard(ctx context.Context) ([]dto.BoardColumn, error) {
	columns, err := u.columns.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := u.tasks.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	board := make([]dto.BoardColumn, len(columns))
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		board[i] = dto.NewBoardColumn(c)
		index[c.ID] = i
	}
	// tasks arrive sorted by column then position, so appending keeps order
	for _, t := range tasks {
		i, ok := index[t.ColumnID]
		if !ok {
			log.WithField("task_id", t.ID).WithField("column_id", t.ColumnID).Warn("task references unknown column")
			continue
		}
		board[i].Tasks = append(board[i].Tasks, dto.NewTaskCard(t))
	}
	return board, nil
}

func (u *boardUsecase) SearchBoard(ctx context.Context, query string) ([]dto.BoardColumn, error) {
	board, err := u.GetBoard(ctx)
	if err != nil || fuzzy.Normalize(query) == "" {
		return board, err
	}

	for i := range board {
		kept := board[i].Tasks[:0]
		for _, card := range board[i].Tasks {
			if fuzzy.MatchAny(query, card.Content, deref(card.Owner), deref(card.Tag)) {
				kept = append(kept, card)
			}
		}
		board[i].Tasks = kept
	}
	return board, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (u *boardUsecase) EnsureDefaultColumns(ctx context.Context) error {
	if err := u.columns.EnsureColumns(ctx, domain.DefaultColumns()); err != nil {
		return err
	}
	log.Debug("default columns ensured")
	return nil
}

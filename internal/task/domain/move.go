package domain

import (
	"fmt"

	"github.com/Real-Streeter/liberty-command/pkg/apperr"
)

// Move is the final placement of one task in a reorder batch.
type Move struct {
	TaskID    string
	ColumnID  string
	SortOrder int
}

// ValidateMoves checks a move list before any storage is touched. Each task
// may be placed once and no two tasks may claim the same slot of a column.
func ValidateMoves(moves []Move) error {
	type slot struct {
		column string
		order  int
	}
	seenTasks := make(map[string]struct{}, len(moves))
	seenSlots := make(map[slot]string, len(moves))

	for i, m := range moves {
		if m.TaskID == "" {
			return apperr.Validation(fmt.Sprintf("moves[%d]: taskId is required", i))
		}
		if m.ColumnID == "" {
			return apperr.Validation(fmt.Sprintf("moves[%d]: columnId is required", i))
		}
		if m.SortOrder < 0 {
			return apperr.Validation(fmt.Sprintf("moves[%d]: sortOrder must not be negative", i))
		}
		if _, dup := seenTasks[m.TaskID]; dup {
			return apperr.Validation(fmt.Sprintf("moves[%d]: task %s appears more than once", i, m.TaskID))
		}
		seenTasks[m.TaskID] = struct{}{}

		s := slot{column: m.ColumnID, order: m.SortOrder}
		if other, dup := seenSlots[s]; dup {
			return apperr.Validation(fmt.Sprintf("moves[%d]: tasks %s and %s both claim position %d in %s",
				i, other, m.TaskID, m.SortOrder, m.ColumnID))
		}
		seenSlots[s] = m.TaskID
	}
	return nil
}

package boardclient

import (
	"context"

	"github.com/Real-Streeter/liberty-command/pkg/dragdrop"
)

// Board adapts a Client to dragdrop.Board. Item payloads are Cards.
type Board struct {
	Client *Client
}

func (b Board) Fetch(ctx context.Context) (dragdrop.Partition, error) {
	columns, err := b.Client.Columns(ctx)
	if err != nil {
		return dragdrop.Partition{}, err
	}
	return Partition(columns), nil
}

func (b Board) Reorder(ctx context.Context, moves []dragdrop.Move) error {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[i] = Move{TaskID: m.ItemID, ColumnID: m.GroupID, SortOrder: m.Position}
	}
	return b.Client.ReorderTasks(ctx, out)
}

// Partition converts fetched columns to a drag-and-drop partition.
func Partition(columns []Column) dragdrop.Partition {
	groups := make([]dragdrop.Group, len(columns))
	for i, col := range columns {
		items := make([]dragdrop.Item, len(col.Tasks))
		for j, card := range col.Tasks {
			items[j] = dragdrop.Item{ID: card.ID, Payload: card}
		}
		groups[i] = dragdrop.Group{ID: col.ID, Items: items}
	}
	return dragdrop.Partition{Groups: groups}
}

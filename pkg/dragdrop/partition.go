// Package dragdrop models a board being rearranged by drag and drop.
//
// The board is a Partition: ordered groups, each holding an ordered run of
// items. DragOver and DragEnd are pure functions from one partition to the
// next; Session wraps them with the optimistic update and reload cycle a
// client needs when it persists the result through a Board.
package dragdrop

// Item is one draggable card. Payload is carried along untouched.
type Item struct {
	ID      string
	Payload any
}

// Group is a column of items in display order.
type Group struct {
	ID    string
	Items []Item
}

// Partition is every group of the board in display order.
type Partition struct {
	Groups []Group
}

// Move is the final placement of one item.
type Move struct {
	ItemID   string
	GroupID  string
	Position int
}

// Clone returns a copy whose group and item slices can be changed freely.
func (p Partition) Clone() Partition {
	groups := make([]Group, len(p.Groups))
	for i, g := range p.Groups {
		items := make([]Item, len(g.Items))
		copy(items, g.Items)
		groups[i] = Group{ID: g.ID, Items: items}
	}
	return Partition{Groups: groups}
}

// Locate resolves id to a group index and an item index. When id names a
// group the item index is -1.
func (p Partition) Locate(id string) (group, index int, ok bool) {
	for gi, g := range p.Groups {
		if g.ID == id {
			return gi, -1, true
		}
		for ii, it := range g.Items {
			if it.ID == id {
				return gi, ii, true
			}
		}
	}
	return -1, -1, false
}

// Group returns the group with the given id.
func (p Partition) Group(id string) (Group, bool) {
	for _, g := range p.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return Group{}, false
}

// ItemIDs lists the item ids of a group in order; nil for an unknown group.
func (p Partition) ItemIDs(groupID string) []string {
	g, ok := p.Group(groupID)
	if !ok {
		return nil
	}
	ids := make([]string, len(g.Items))
	for i, it := range g.Items {
		ids[i] = it.ID
	}
	return ids
}

// MoveList places every item of every group at its current index.
func MoveList(p Partition) []Move {
	n := 0
	for _, g := range p.Groups {
		n += len(g.Items)
	}
	moves := make([]Move, 0, n)
	for _, g := range p.Groups {
		for i, it := range g.Items {
			moves = append(moves, Move{ItemID: it.ID, GroupID: g.ID, Position: i})
		}
	}
	return moves
}

func (p Partition) itemLocation(id string) (group, index int, ok bool) {
	gi, ii, ok := p.Locate(id)
	if !ok || ii < 0 {
		return -1, -1, false
	}
	return gi, ii, true
}

func removeAt(items []Item, i int) ([]Item, Item) {
	it := items[i]
	return append(items[:i], items[i+1:]...), it
}

func insertAt(items []Item, i int, it Item) []Item {
	if i > len(items) {
		i = len(items)
	}
	items = append(items, Item{})
	copy(items[i+1:], items[i:])
	items[i] = it
	return items
}

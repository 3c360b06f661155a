package dragdrop

// Target is what the pointer is over: an item id, or a group id when the
// pointer is over empty group space. The Y values feed the BelowFunc.
type Target struct {
	ID         string
	PointerY   float64
	TargetMidY float64
}

// BelowFunc reports whether the pointer is past the hovered item, in which
// case the dragged item goes after it instead of before.
type BelowFunc func(pointerY, targetMidY float64) bool

// BelowMidpoint puts the item after the target once the pointer crosses the
// target's vertical midpoint.
func BelowMidpoint(pointerY, targetMidY float64) bool {
	return pointerY > targetMidY
}

// Drag is an in-progress gesture.
type Drag struct {
	ActiveID    string
	OriginGroup string
	// Crossed is set once the item has been placed live into another group.
	// A drop then keeps that placement instead of reordering by index.
	Crossed bool
}

// DragStart begins dragging itemID. It fails when the item is not on the board.
func DragStart(p Partition, itemID string) (Drag, bool) {
	gi, _, ok := p.itemLocation(itemID)
	if !ok {
		return Drag{}, false
	}
	return Drag{ActiveID: itemID, OriginGroup: p.Groups[gi].ID}, true
}

// DragOver moves the active item into the hovered group when that group is
// not the one holding it. Hovering inside the item's own group changes
// nothing; that reorder happens at drop. The input partition is never
// modified, and repeating the same call returns the same partition.
func DragOver(p Partition, d Drag, over Target, below BelowFunc) (Partition, Drag) {
	if over.ID == "" || over.ID == d.ActiveID {
		return p, d
	}
	src, srcIdx, ok := p.itemLocation(d.ActiveID)
	if !ok {
		return p, d
	}
	dst, dstIdx, ok := p.Locate(over.ID)
	if !ok || src == dst {
		return p, d
	}
	if below == nil {
		below = BelowMidpoint
	}

	next := p.Clone()
	var it Item
	next.Groups[src].Items, it = removeAt(next.Groups[src].Items, srcIdx)

	insert := len(next.Groups[dst].Items)
	if dstIdx >= 0 {
		insert = dstIdx
		if below(over.PointerY, over.TargetMidY) {
			insert++
		}
	}
	next.Groups[dst].Items = insertAt(next.Groups[dst].Items, insert, it)

	d.Crossed = true
	return next, d
}

// DragEnd settles a drop on over and returns the final partition with the
// move list for every item on the board. A nil or unknown target is a
// cancelled drop: ok is false and the input partition is returned as is.
func DragEnd(p Partition, d Drag, over *Target, below BelowFunc) (Partition, []Move, bool) {
	if over == nil {
		return p, nil, false
	}
	if _, _, ok := p.Locate(over.ID); !ok {
		return p, nil, false
	}
	if _, _, ok := p.itemLocation(d.ActiveID); !ok {
		return p, nil, false
	}

	// a drop on another group without a preceding hover still lands there
	next, d := DragOver(p, d, *over, below)
	if d.Crossed {
		return next, MoveList(next), true
	}

	gi, from, _ := next.itemLocation(d.ActiveID)
	dst, to, _ := next.Locate(over.ID)
	if dst == gi {
		if to < 0 {
			to = len(next.Groups[gi].Items) - 1
		}
		if from != to {
			next = next.Clone()
			next.Groups[gi].Items = arrayMove(next.Groups[gi].Items, from, to)
		}
	}
	return next, MoveList(next), true
}

// arrayMove removes the item at from and reinserts it at to, shifting the
// items in between by one.
func arrayMove(items []Item, from, to int) []Item {
	items, it := removeAt(items, from)
	return insertAt(items, to, it)
}

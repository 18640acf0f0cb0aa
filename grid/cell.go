// Package grid resolves a table of placeholder cells into grid placements.
//
// A table is a slice of equally long rows. Each cell either holds a concrete
// item or a continuation marker telling that the item on its left (or above)
// extends over the cell. Resolve replaces the markers with the items they
// refer to and Placements derives, for every distinct item, the anchor
// position and the row and column span it covers.
//
// Items are compared with ==, so pointer types give identity semantics:
// two structurally equal but distinct items are treated as different widgets.
package grid

// Kind tells apart concrete items from continuation markers.
type Kind uint8

const (
	// Item is a cell holding a concrete item.
	Item Kind = iota
	// ContinueLeft reuses the item immediately to the left in the same row.
	ContinueLeft
	// ContinueUp reuses the item immediately above in the same column.
	ContinueUp
)

func (k Kind) String() string {
	switch k {
	case Item:
		return "item"
	case ContinueLeft:
		return "continue-left"
	case ContinueUp:
		return "continue-up"
	}
	return "unknown"
}

// Cell is one entry of the input table.
type Cell[T comparable] struct {
	kind Kind
	item T
}

// Of returns a cell holding the concrete item v.
func Of[T comparable](v T) Cell[T] {
	return Cell[T]{kind: Item, item: v}
}

// Left returns a cell continuing the item on its left.
func Left[T comparable]() Cell[T] {
	return Cell[T]{kind: ContinueLeft}
}

// Up returns a cell continuing the item above it.
func Up[T comparable]() Cell[T] {
	return Cell[T]{kind: ContinueUp}
}

// Kind returns the cell variant.
func (c Cell[T]) Kind() Kind { return c.kind }

// Item returns the concrete item. It reports false for markers.
func (c Cell[T]) Item() (T, bool) {
	return c.item, c.kind == Item
}

// Pos is a (row, column) position inside a table.
type Pos struct {
	Row, Col int
}

package grid

// Placement is the anchor position and span of one distinct item.
type Placement[T comparable] struct {
	Item    T
	Row     int
	Col     int
	RowSpan int
	ColSpan int
}

// Contains reports whether the placement rectangle covers the (row, col) cell.
func (p Placement[T]) Contains(row, col int) bool {
	return row >= p.Row && row < p.Row+p.RowSpan &&
		col >= p.Col && col < p.Col+p.ColSpan
}

// Placements returns one placement per distinct item of a resolved table,
// ordered by the first occurrence of each item in row-major order.
//
// The spans are measured independently on each axis starting from the anchor:
// the column span is the run of identical cells rightwards in the anchor row,
// the row span is the run of identical cells downwards in the anchor column.
// Repetitions which do not form a rectangle are not reported here; see Misplaced.
func Placements[T comparable](resolved [][]T) []Placement[T] {
	var (
		placed = make(map[T]struct{})
		out    []Placement[T]
	)
	for i, row := range resolved {
		for j, item := range row {
			if _, ok := placed[item]; ok {
				continue
			}
			placed[item] = struct{}{}

			colSpan := 1
			for jj := j + 1; jj < len(row) && row[jj] == item; jj++ {
				colSpan++
			}
			rowSpan := 1
			for ii := i + 1; ii < len(resolved) && j < len(resolved[ii]) && resolved[ii][j] == item; ii++ {
				rowSpan++
			}
			out = append(out, Placement[T]{
				Item:    item,
				Row:     i,
				Col:     j,
				RowSpan: rowSpan,
				ColSpan: colSpan,
			})
		}
	}
	return out
}

// Misplaced lists the cells of a resolved table which are not covered by
// their own item's placement alone: either the cell lies outside the rectangle
// of its item, or the rectangle of another item overlaps it. This happens with
// L-shaped or split repetitions. The result is in row-major order and is empty
// for well formed tables.
func Misplaced[T comparable](resolved [][]T, placements []Placement[T]) []Pos {
	var out []Pos
	for i, row := range resolved {
		for j, item := range row {
			own, other := false, false
			for _, p := range placements {
				if !p.Contains(i, j) {
					continue
				}
				if p.Item == item {
					own = true
				} else {
					other = true
				}
			}
			if !own || other {
				out = append(out, Pos{Row: i, Col: j})
			}
		}
	}
	return out
}

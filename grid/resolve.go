package grid

// CheckShape verifies that rows is a non empty table of equally long, non empty rows.
// It returns the column count.
func CheckShape[E any](rows [][]E) (int, error) {
	if len(rows) == 0 {
		return 0, &TableError{Row: -1}
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) == 0 {
			return 0, &TableError{Row: i, Len: 0, Want: cols}
		}
		if len(row) != cols {
			return 0, &TableError{Row: i, Len: len(row), Want: cols}
		}
	}
	return cols, nil
}

// Resolve replaces every continuation marker with the item it refers to.
// Cells are visited in row-major order, so a marker may point to a cell
// which was itself a marker. On error no table is returned.
func Resolve[T comparable](table [][]Cell[T]) ([][]T, error) {
	cols, err := CheckShape(table)
	if err != nil {
		return nil, err
	}

	out := make([][]T, len(table))
	for i, row := range table {
		out[i] = make([]T, cols)
		for j, c := range row {
			switch c.kind {
			case ContinueLeft:
				if j == 0 {
					return nil, &MarkerError{Row: i, Col: j, Kind: c.kind}
				}
				out[i][j] = out[i][j-1]
			case ContinueUp:
				if i == 0 {
					return nil, &MarkerError{Row: i, Col: j, Kind: c.kind}
				}
				out[i][j] = out[i-1][j]
			default:
				out[i][j] = c.item
			}
		}
	}
	return out, nil
}

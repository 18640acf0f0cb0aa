package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTable is matched by errors reporting an empty or non rectangular table.
	ErrMalformedTable = errors.New("malformed table")
	// ErrInvalidMarker is matched by errors reporting a marker without a referent.
	ErrInvalidMarker = errors.New("invalid continuation marker")
)

// TableError reports a table which is empty or whose rows differ in length.
// Row is -1 when the table has no rows at all.
type TableError struct {
	Row  int
	Len  int
	Want int
}

func (e *TableError) Error() string {
	switch {
	case e.Row < 0:
		return "malformed table: no rows"
	case e.Len == 0:
		return fmt.Sprintf("malformed table: row %d is empty", e.Row)
	}
	return fmt.Sprintf("malformed table: row %d has %d cells, expected %d", e.Row, e.Len, e.Want)
}

// Is makes TableError match ErrMalformedTable.
func (e *TableError) Is(target error) bool {
	return target == ErrMalformedTable
}

// MarkerError reports a continuation marker placed where it has nothing to continue:
// a ContinueLeft in the first column or a ContinueUp in the first row.
type MarkerError struct {
	Row, Col int
	Kind     Kind
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("invalid %s marker at (%d, %d)", e.Kind, e.Row, e.Col)
}

// Is makes MarkerError match ErrInvalidMarker.
func (e *MarkerError) Is(target error) bool {
	return target == ErrInvalidMarker
}

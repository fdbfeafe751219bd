package notebook

import (
	"errors"
	"fmt"
)

// ErrMalformedDocument indicates that the raw document could not be parsed as
// a JSON object with a cells array. Operations check this guard before any
// mutation, so a malformed document is never partially edited.
var ErrMalformedDocument = errors.New("malformed notebook document")

// CellRangeError indicates a cell index outside the valid range for the
// requested operation. It carries both the requested index and the actual
// cell count so callers can report them.
type CellRangeError struct {
	Index int
	Count int
}

func (e *CellRangeError) Error() string {
	return fmt.Sprintf("cell index %d out of range: notebook has %d cells", e.Index, e.Count)
}

// CellKindError indicates that the target cell is not a code cell. It carries
// the kind actually found at the index.
type CellKindError struct {
	Index int
	Kind  string
}

func (e *CellKindError) Error() string {
	return fmt.Sprintf("cell %d is a %q cell, not a code cell", e.Index, e.Kind)
}

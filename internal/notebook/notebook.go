package notebook

import (
	"encoding/json"
	"fmt"
)

// Document is a parsed notebook. The cell list is editable; every other
// top-level field (nbformat version, notebook metadata, and so on) is held as
// raw JSON and written back unchanged.
//
// A Document is not safe for concurrent mutation; each operation assumes
// exclusive ownership of the instance for its duration.
type Document struct {
	cells []*Cell
	extra map[string]json.RawMessage
}

// Parse parses raw notebook bytes. It returns ErrMalformedDocument when the
// data is not a JSON object containing a cells array of objects.
func Parse(data []byte) (*Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("%w: not a JSON object: %v", ErrMalformedDocument, err)
	}

	rawCells, ok := top[fieldCells]
	if !ok {
		return nil, fmt.Errorf("%w: missing cells array", ErrMalformedDocument)
	}

	var cells []*Cell
	if err := json.Unmarshal(rawCells, &cells); err != nil {
		return nil, fmt.Errorf("%w: invalid cells array: %v", ErrMalformedDocument, err)
	}
	delete(top, fieldCells)

	return &Document{
		cells: cells,
		extra: top,
	}, nil
}

// Bytes serializes the document back to notebook JSON. Cell content and
// ordering and all untouched fields round-trip exactly; only container
// whitespace may differ from the original bytes.
func (d *Document) Bytes() ([]byte, error) {
	top := make(map[string]interface{}, len(d.extra)+1)
	for k, v := range d.extra {
		top[k] = v
	}
	top[fieldCells] = d.cells

	data, err := json.MarshalIndent(top, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize notebook: %w", err)
	}
	return data, nil
}

// CellCount returns the number of cells in the document.
func (d *Document) CellCount() int {
	return len(d.cells)
}

// Cells returns the document's cells in display order. The slice is shared
// with the document; callers must not modify it.
func (d *Document) Cells() []*Cell {
	return d.cells
}

// Cell returns the cell at the given 0-based index, or a CellRangeError.
func (d *Document) Cell(index int) (*Cell, error) {
	if index < 0 || index >= len(d.cells) {
		return nil, &CellRangeError{Index: index, Count: len(d.cells)}
	}
	return d.cells[index], nil
}

// InsertCodeCell inserts a new code cell holding the given source text at the
// given position, shifting subsequent cells forward. Position must satisfy
// 0 <= position <= CellCount; anything else is a CellRangeError rather than a
// silent append.
func (d *Document) InsertCodeCell(code string, position int) error {
	if position < 0 || position > len(d.cells) {
		return &CellRangeError{Index: position, Count: len(d.cells)}
	}

	cell := newCodeCell(code)
	d.cells = append(d.cells, nil)
	copy(d.cells[position+1:], d.cells[position:])
	d.cells[position] = cell
	return nil
}

// AppendCodeCell adds a new code cell holding the given source text after the
// last cell. Equivalent to InsertCodeCell at index CellCount.
func (d *Document) AppendCodeCell(code string) {
	d.cells = append(d.cells, newCodeCell(code))
}

// ReplaceCodeCell replaces the source of the code cell at the given index.
// The cell's execution count is reset and its outputs are cleared; its
// metadata and any other fields are untouched. Fails with a CellRangeError
// for an out-of-range index and a CellKindError when the target is not a
// code cell, leaving the document unchanged in both cases.
func (d *Document) ReplaceCodeCell(index int, code string) error {
	cell, err := d.Cell(index)
	if err != nil {
		return err
	}

	if kind := cell.Type(); kind != CellTypeCode {
		return &CellKindError{Index: index, Kind: kind}
	}

	return cell.setSource(SourceLines(code))
}

package notebook

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Cell type values used by the nbformat cell_type field.
const (
	CellTypeCode     = "code"
	CellTypeMarkdown = "markdown"
	CellTypeRaw      = "raw"
)

// Names of the nbformat cell fields this package touches. All other fields
// are carried through untouched.
const (
	fieldCellType       = "cell_type"
	fieldSource         = "source"
	fieldExecutionCount = "execution_count"
	fieldOutputs        = "outputs"
	fieldMetadata       = "metadata"
	fieldCells          = "cells"
)

var (
	rawNull        = json.RawMessage("null")
	rawEmptyList   = json.RawMessage("[]")
	rawEmptyObject = json.RawMessage("{}")
)

// Cell is a single notebook cell. It holds the cell's JSON fields as raw
// messages so fields the editor never touches are preserved exactly as they
// were read.
type Cell struct {
	fields map[string]json.RawMessage
}

// newCodeCell builds a fresh code cell for the given source text with a null
// execution count, no outputs, and empty metadata.
func newCodeCell(code string) *Cell {
	source, _ := json.Marshal(SourceLines(code))
	return &Cell{
		fields: map[string]json.RawMessage{
			fieldCellType:       json.RawMessage(`"code"`),
			fieldExecutionCount: rawNull,
			fieldOutputs:        rawEmptyList,
			fieldMetadata:       rawEmptyObject,
			fieldSource:         source,
		},
	}
}

// Type returns the cell's kind (code, markdown, raw). Returns an empty string
// if the cell_type field is missing or not a string.
func (c *Cell) Type() string {
	var kind string
	if raw, ok := c.fields[fieldCellType]; ok {
		_ = json.Unmarshal(raw, &kind)
	}
	return kind
}

// SourceLines returns the cell source as line fragments. The nbformat schema
// allows source to be either an array of fragments or a single string; a
// single string is split into fragments with terminators preserved.
func (c *Cell) SourceLines() []string {
	raw, ok := c.fields[fieldSource]
	if !ok {
		return nil
	}

	var lines []string
	if err := json.Unmarshal(raw, &lines); err == nil {
		return lines
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return strings.SplitAfter(text, "\n")
	}

	return nil
}

// SourceText returns the cell source as a single string.
func (c *Cell) SourceText() string {
	return strings.Join(c.SourceLines(), "")
}

// Field returns the raw JSON value of a named cell field, or nil if absent.
func (c *Cell) Field(name string) json.RawMessage {
	return c.fields[name]
}

// setSource replaces the cell's source with the given line fragments and
// resets its execution state: the execution count becomes null and any prior
// outputs are cleared.
func (c *Cell) setSource(lines []string) error {
	source, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cell source: %w", err)
	}
	c.fields[fieldSource] = source
	c.fields[fieldExecutionCount] = rawNull
	c.fields[fieldOutputs] = rawEmptyList
	return nil
}

// MarshalJSON serializes the cell's fields. Keys are emitted in sorted order,
// which matches the conventional nbformat field order.
func (c *Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.fields)
}

// UnmarshalJSON parses a cell from its JSON object form.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	c.fields = fields
	return nil
}

// SourceLines encodes source text as nbformat line fragments: the text is
// split on newlines, each fragment keeps its trailing newline, a trailing
// blank line is dropped, and the final fragment carries no terminator.
//
// Edge cases: empty text encodes as a single empty fragment, and text with a
// trailing newline encodes identically to the same text without it.
func SourceLines(code string) []string {
	lines := strings.Split(code, "\n")

	fragments := make([]string, len(lines))
	for i, line := range lines {
		fragments[i] = line + "\n"
	}

	if len(fragments) > 1 && fragments[len(fragments)-1] == "\n" {
		fragments = fragments[:len(fragments)-1]
	}

	last := len(fragments) - 1
	fragments[last] = strings.TrimSuffix(fragments[last], "\n")

	return fragments
}

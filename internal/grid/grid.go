// Package grid provides the cell-grid boundary between workbook files and the
// import pipeline: named sheets exposed as a header row plus data rows of
// tagged raw cell values (text, number, boolean, or blank).
//
// The pipeline never touches spreadsheet files directly; it consumes a Source.
// Two implementations exist: an in-memory one (tests, programmatic input) and
// an XLSX adapter built on excelize (see xlsx.go).
package grid

import (
	"strconv"
	"strings"
)

// Kind tags the raw type of a cell value as it appeared in the workbook.
type Kind int

const (
	KindBlank Kind = iota
	KindText
	KindNumber
	KindBool
)

// Value is one raw cell. Exactly one of the payload fields is meaningful,
// selected by Kind.
type Value struct {
	Kind   Kind
	Text   string  // KindText
	Number float64 // KindNumber
	Bool   bool    // KindBool
}

// Blank is the zero Value, present for readability at call sites.
var Blank = Value{}

// TextValue wraps a string as a text cell.
func TextValue(s string) Value { return Value{Kind: KindText, Text: s} }

// NumberValue wraps a float64 as a numeric cell.
func NumberValue(f float64) Value { return Value{Kind: KindNumber, Number: f} }

// BoolValue wraps a bool as a boolean cell.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// IsBlank reports whether the cell carries no usable content.
// Text cells that are empty or whitespace-only count as blank.
func (v Value) IsBlank() bool {
	switch v.Kind {
	case KindBlank:
		return true
	case KindText:
		return strings.TrimSpace(v.Text) == ""
	}
	return false
}

// String returns the textual form of the cell: the trimmed text, the shortest
// decimal representation of a number, or "true"/"false" for booleans.
// Blank cells return "".
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return strings.TrimSpace(v.Text)
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	}
	return ""
}

// Sheet is one named table: a header row and the data rows below it.
// Rows are padded to the header width; trailing all-blank rows are dropped
// by the Source that produced the sheet.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]Value
}

// Source exposes a workbook as a collection of named sheets.
// Implementations must be safe for read-only concurrent use.
type Source interface {
	// SheetNames returns sheet names in workbook order.
	SheetNames() []string
	// Sheet returns the named sheet, or false if the workbook has no such sheet.
	Sheet(name string) (*Sheet, bool)
}

// Memory is an in-memory Source.
type Memory struct {
	order  []string
	sheets map[string]*Sheet
}

// NewMemory builds a Source from literal sheets. Trailing blank rows are
// trimmed and ragged rows padded to the header width, matching what the XLSX
// adapter produces.
func NewMemory(sheets ...*Sheet) *Memory {
	m := &Memory{sheets: make(map[string]*Sheet, len(sheets))}
	for _, s := range sheets {
		normalizeSheet(s)
		m.order = append(m.order, s.Name)
		m.sheets[s.Name] = s
	}
	return m
}

// SheetNames returns sheet names in insertion order.
func (m *Memory) SheetNames() []string { return m.order }

// Sheet returns the named sheet.
func (m *Memory) Sheet(name string) (*Sheet, bool) {
	s, ok := m.sheets[name]
	return s, ok
}

// normalizeSheet pads rows to the header width and drops trailing blank rows.
func normalizeSheet(s *Sheet) {
	width := len(s.Header)
	for i, row := range s.Rows {
		for len(row) < width {
			row = append(row, Blank)
		}
		s.Rows[i] = row
	}
	last := len(s.Rows)
	for last > 0 && rowBlank(s.Rows[last-1]) {
		last--
	}
	s.Rows = s.Rows[:last]
}

// rowBlank reports whether every cell in the row is blank.
func rowBlank(row []Value) bool {
	for _, v := range row {
		if !v.IsBlank() {
			return false
		}
	}
	return true
}

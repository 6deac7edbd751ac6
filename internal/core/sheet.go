package core

// sheet.go turns a raw grid sheet into field-keyed rows.
//
// Header matching is case-insensitive: the header row is lowercased and
// trimmed to build the field-name index, and rows become maps from that
// normalized field name to the raw cell. Columns outside the required set
// (notably attr:* columns on item sheets) are carried along untouched so the
// item parser can discover them by prefix.

import (
	"strings"

	"github.com/nordicpim/importer/internal/grid"
)

// SheetRow is one data row keyed by normalized field name. Num is the
// 1-based workbook row number (the header row is 1).
type SheetRow struct {
	Num    int
	Fields map[string]grid.Value
}

// Get returns the raw cell for a field, or a blank value when the column is
// absent from the sheet.
func (r SheetRow) Get(field string) grid.Value {
	return r.Fields[field]
}

// Blank reports whether every cell of the row is blank.
func (r SheetRow) Blank() bool {
	for _, v := range r.Fields {
		if !v.IsBlank() {
			return false
		}
	}
	return true
}

// SheetData is the result of reading one sheet against its required headers.
type SheetData struct {
	Name    string
	Present bool     // false when the workbook has no sheet of this name
	Header  []string // normalized header names in column order
	Missing []string // required headers absent from the sheet
	Rows    []SheetRow
}

// ReadSheet reads the named sheet and checks its header row against the
// required header set. An absent sheet yields Present=false with every
// required header reported missing and zero rows; the caller decides whether
// that is a hard error (mandatory sheets) or a default (Import_Config).
func ReadSheet(src grid.Source, name string, required []string) SheetData {
	data := SheetData{Name: name}

	sheet, ok := src.Sheet(name)
	if !ok {
		data.Missing = append(data.Missing, required...)
		return data
	}
	data.Present = true

	index := make(map[string]int, len(sheet.Header))
	for i, h := range sheet.Header {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		data.Header = append(data.Header, key)
		index[key] = i
	}

	for _, req := range required {
		if _, ok := index[req]; !ok {
			data.Missing = append(data.Missing, req)
		}
	}

	for i, row := range sheet.Rows {
		fields := make(map[string]grid.Value, len(index))
		for key, col := range index {
			if col < len(row) {
				fields[key] = row[col]
			}
		}
		data.Rows = append(data.Rows, SheetRow{
			Num:    i + 2, // 1-based, after the header row
			Fields: fields,
		})
	}

	return data
}

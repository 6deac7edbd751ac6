package grid

// xlsx.go adapts XLSX workbooks to the Source interface using excelize.
//
// All sheets are read eagerly into a Memory source; workbooks in this domain
// are catalog-sized (thousands of rows, not millions), so holding them in
// memory keeps the pipeline free of file handles and I/O errors mid-run.
// A failure to open or read the binary is the one terminal error the import
// pipeline recognizes; everything after this point is issue accumulation.

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// OpenReader reads an XLSX workbook from r and returns it as a Source.
func OpenReader(r io.Reader) (Source, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return fromFile(f)
}

// OpenFile reads an XLSX workbook from disk and returns it as a Source.
func OpenFile(path string) (Source, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return fromFile(f)
}

// fromFile converts every sheet of an open excelize file into Memory sheets.
func fromFile(f *excelize.File) (Source, error) {
	var sheets []*Sheet
	for _, name := range f.GetSheetList() {
		s, err := readSheet(f, name)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		sheets = append(sheets, s)
	}
	return NewMemory(sheets...), nil
}

// readSheet reads one sheet: formatted strings for the header row, typed
// values for the data rows.
func readSheet(f *excelize.File, name string) (*Sheet, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	s := &Sheet{Name: name}
	if len(rows) == 0 {
		return s, nil
	}

	for _, h := range rows[0] {
		s.Header = append(s.Header, strings.TrimSpace(h))
	}

	for r := 1; r < len(rows); r++ {
		row := make([]Value, len(s.Header))
		for c := range s.Header {
			v, err := readCell(f, name, c, r)
			if err != nil {
				return nil, err
			}
			row[c] = v
		}
		s.Rows = append(s.Rows, row)
	}
	return s, nil
}

// readCell converts one cell to a tagged Value. Column and row are 0-based.
func readCell(f *excelize.File, sheet string, col, row int) (Value, error) {
	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return Blank, fmt.Errorf("cell coordinates (%d,%d): %w", col, row, err)
	}

	raw, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
	if err != nil {
		return Blank, fmt.Errorf("cell %s: %w", axis, err)
	}
	if raw == "" {
		return Blank, nil
	}

	ct, err := f.GetCellType(sheet, axis)
	if err != nil {
		return Blank, fmt.Errorf("cell %s: %w", axis, err)
	}

	switch ct {
	case excelize.CellTypeBool:
		return BoolValue(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		// Untyped cells default to numeric storage in XLSX; fall back to
		// text when the raw value does not parse.
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return NumberValue(n), nil
		}
		return TextValue(raw), nil
	default:
		return TextValue(raw), nil
	}
}

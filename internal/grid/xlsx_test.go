package grid

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// TestOpenReader round-trips a workbook through excelize and checks that cell
// types survive: strings as text, numbers as numbers, booleans as booleans.
func TestOpenReader(t *testing.T) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "Data"); err != nil {
		t.Fatal(err)
	}
	rows := [][]any{
		{"identifier", "diameter", "coated", "note"},
		{"d1", 12.7, true, "  padded  "},
		{"d2"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Data", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}

	src, err := OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}

	sheet, ok := src.Sheet("Data")
	if !ok {
		t.Fatalf("sheet Data not found in %v", src.SheetNames())
	}
	if len(sheet.Header) != 4 || sheet.Header[0] != "identifier" {
		t.Fatalf("header = %v", sheet.Header)
	}
	if len(sheet.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(sheet.Rows))
	}

	first := sheet.Rows[0]
	if first[0].Kind != KindText || first[0].String() != "d1" {
		t.Errorf("identifier = %+v", first[0])
	}
	if first[1].Kind != KindNumber || first[1].Number != 12.7 {
		t.Errorf("diameter = %+v, want number 12.7", first[1])
	}
	if first[2].Kind != KindBool || !first[2].Bool {
		t.Errorf("coated = %+v, want bool true", first[2])
	}
	if first[3].String() != "padded" {
		t.Errorf("note = %q, want trimmed text", first[3].String())
	}

	// The short second row reads back padded with blanks.
	second := sheet.Rows[1]
	if second[0].String() != "d2" {
		t.Errorf("second row identifier = %q", second[0].String())
	}
	for c := 1; c < len(second); c++ {
		if !second[c].IsBlank() {
			t.Errorf("column %d = %+v, want blank", c, second[c])
		}
	}
}

func TestOpenReaderRejectsGarbage(t *testing.T) {
	_, err := OpenReader(strings.NewReader("this is not a workbook"))
	if err == nil {
		t.Fatal("expected error for non-XLSX input")
	}
}

package grid

import (
	"reflect"
	"testing"
)

// ----------------------------------------------------------------------------
// Value Tests
// ----------------------------------------------------------------------------

func TestValueIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		input Value
		want  bool
	}{
		{name: "zero value", input: Blank, want: true},
		{name: "empty text", input: TextValue(""), want: true},
		{name: "whitespace text", input: TextValue("   \t"), want: true},
		{name: "text", input: TextValue("x"), want: false},
		{name: "zero number", input: NumberValue(0), want: false},
		{name: "false bool", input: BoolValue(false), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.IsBlank(); got != tt.want {
				t.Errorf("IsBlank(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		input Value
		want  string
	}{
		{name: "trimmed text", input: TextValue("  hello  "), want: "hello"},
		{name: "integer number", input: NumberValue(42), want: "42"},
		{name: "decimal number", input: NumberValue(12.7), want: "12.7"},
		{name: "negative number", input: NumberValue(-0.5), want: "-0.5"},
		{name: "true", input: BoolValue(true), want: "true"},
		{name: "false", input: BoolValue(false), want: "false"},
		{name: "blank", input: Blank, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.String(); got != tt.want {
				t.Errorf("String(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// Memory Source Tests
// ----------------------------------------------------------------------------

func TestMemoryNormalization(t *testing.T) {
	sheet := &Sheet{
		Name:   "S",
		Header: []string{"a", "b", "c"},
		Rows: [][]Value{
			{TextValue("1")},                              // ragged, padded to 3
			{TextValue("2"), Blank, TextValue("x")},       // full width
			{Blank, TextValue("   "), Blank},              // blank, but not trailing
			{TextValue("3"), TextValue("y")},              // ragged
			{Blank, Blank},                                // trailing blank, trimmed
			{TextValue(""), TextValue("  "), Blank},       // trailing blank, trimmed
		},
	}
	src := NewMemory(sheet)

	got, ok := src.Sheet("S")
	if !ok {
		t.Fatal("sheet not found")
	}
	if len(got.Rows) != 4 {
		t.Fatalf("rows = %d, want 4 (trailing blanks trimmed)", len(got.Rows))
	}
	for i, row := range got.Rows {
		if len(row) != 3 {
			t.Errorf("row %d width = %d, want 3", i, len(row))
		}
	}
	// Interior blank rows survive so row numbering stays aligned with the file.
	if !got.Rows[2][0].IsBlank() || !got.Rows[2][1].IsBlank() {
		t.Error("interior blank row was altered")
	}
}

func TestMemorySheetNames(t *testing.T) {
	src := NewMemory(
		&Sheet{Name: "B"},
		&Sheet{Name: "A"},
		&Sheet{Name: "C"},
	)

	if got := src.SheetNames(); !reflect.DeepEqual(got, []string{"B", "A", "C"}) {
		t.Errorf("SheetNames() = %v, want insertion order [B A C]", got)
	}
	if _, ok := src.Sheet("missing"); ok {
		t.Error("Sheet(missing) reported ok")
	}
}

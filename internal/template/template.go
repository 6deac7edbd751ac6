// Package template generates the blank import workbook users fill in.
//
// The generated workbook carries exactly the sheets and header rows the
// import pipeline consumes plus a README sheet of human-readable rules.
// Headers come from the core contract constants, so the template and the
// validator cannot drift apart.
package template

import (
	"fmt"

	"github.com/nordicpim/importer/internal/core"
	"github.com/xuri/excelize/v2"
)

// SampleProductSheet is the name of the example product sheet included in
// the template. Real workbooks replace it with one sheet per product type.
const SampleProductSheet = "Products"

// sampleAttrColumns are example attr:* columns on the product sheet, matched
// by example attributes on the Attributes sheet.
var sampleAttrColumns = []string{
	core.AttrColumnPrefix + "material",
	core.AttrColumnPrefix + "cutting_diameter",
}

// Build produces the template workbook as XLSX bytes.
func Build() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	sheets := []struct {
		name    string
		headers []string
		rows    [][]any
	}{
		{core.SheetReadme, []string{"Catalog import workbook"}, readmeRows()},
		{core.SheetConfig, core.ConfigHeaders, [][]any{
			{core.ConfigKeyMode, "CREATE_UPDATE"},
			{core.ConfigKeyErrorPolicy, "PROCESS_WARN"},
			{core.ConfigKeyDefaultLanguage, "en"},
		}},
		{core.SheetGroups, core.GroupHeaders, [][]any{
			{"technical", "Technical data", 1, "TRUE", ""},
			{"marketing", "Marketing", 2, "TRUE", ""},
		}},
		{core.SheetTypes, core.TypeHeaders, [][]any{
			{"tool_family", "Tool family", "", "folder", "#4472C4", ""},
			{"drill", "Drill", "tool_family", "wrench", "", "FALSE"},
		}},
		{core.SheetBindings, core.BindingHeaders, [][]any{
			{"technical", "drill", "TRUE", "TRUE"},
			{"marketing", "drill", "FALSE", "TRUE"},
		}},
		{core.SheetAttributes, core.AttributeHeaders, [][]any{
			{"material", "Material", 1, "technical", 1, "FALSE", "FALSE", "FALSE", "", "", "", "", ""},
			{"cutting_diameter", "Cutting diameter", 4, "technical", 2, "FALSE", "FALSE", "FALSE", "", "", "", "drill", "drill"},
			{"description", "Description", 1, "marketing", 3, "TRUE", "TRUE", "TRUE", "", "", "", "", ""},
		}},
		{core.SheetItemParents, core.ItemHeaders, [][]any{
			{"family_0100", "Drill family 0100", "tool_family", "", "{}", "{}"},
		}},
		{SampleProductSheet, append(append([]string{}, core.ItemHeaders...), sampleAttrColumns...), [][]any{
			{"p0100-01", "Drill 12.7mm", "drill", "family_0100", "{}", "{}", "carbide", 12.7},
		}},
	}

	// NewFile starts with "Sheet1"; reuse it for the README instead of
	// leaving an empty sheet behind.
	if err := f.SetSheetName("Sheet1", core.SheetReadme); err != nil {
		return nil, fmt.Errorf("rename first sheet: %w", err)
	}

	for _, s := range sheets {
		if err := writeSheet(f, s.name, s.headers, s.rows, headerStyle); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeSheet creates one sheet with a styled header row and example rows.
func writeSheet(f *excelize.File, name string, headers []string, rows [][]any, headerStyle int) error {
	if name != core.SheetReadme {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
	}

	for col, h := range headers {
		axis, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("sheet %q header: %w", name, err)
		}
		if err := f.SetCellValue(name, axis, h); err != nil {
			return fmt.Errorf("sheet %q header: %w", name, err)
		}
	}

	endAxis, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return fmt.Errorf("sheet %q: %w", name, err)
	}
	if err := f.SetCellStyle(name, "A1", endAxis, headerStyle); err != nil {
		return fmt.Errorf("sheet %q: %w", name, err)
	}

	for r, row := range rows {
		for c, v := range row {
			axis, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("sheet %q row %d: %w", name, r+2, err)
			}
			if err := f.SetCellValue(name, axis, v); err != nil {
				return fmt.Errorf("sheet %q row %d: %w", name, r+2, err)
			}
		}
	}

	if err := f.SetColWidth(name, "A", "Z", 22); err != nil {
		return fmt.Errorf("sheet %q: %w", name, err)
	}
	return nil
}

// readmeRows is the human-readable rule summary shown on the README sheet.
func readmeRows() [][]any {
	lines := []string{
		"Fill in one row per entity on each sheet. The header rows must not be changed.",
		"",
		"Identifiers are case-insensitive and trimmed; they must be unique per sheet kind.",
		"Item identifiers share one namespace across Item_Parents and all product sheets.",
		"",
		core.SheetConfig + ": optional key/value settings (mode, error_policy, default_language).",
		core.SheetGroups + ": attribute groups; order and visible are optional.",
		core.SheetTypes + ": item types; parent_identifier builds the type tree.",
		core.SheetBindings + ": per (group, type) valid/visible flags, folded into attributes.",
		core.SheetAttributes + ": type_code is 1 TEXT, 2 BOOLEAN, 3 INTEGER, 4 FLOAT, 5 DATE, 6 TIME, 7 ENUM, 8 URL.",
		"Product sheets: the base item columns plus one attr:<identifier> column per attribute.",
		"",
		"Boolean cells accept TRUE/FALSE, yes/no, y/n, or 1/0.",
		"List cells (groups_csv, valid_types_csv, visible_types_csv) split on comma or semicolon.",
		"JSON cells (options_json, values_json, channels_json) must hold a JSON object or stay empty.",
		"Blank attribute cells are omitted from the import, they never overwrite existing values.",
	}
	rows := make([][]any, len(lines))
	for i, l := range lines {
		rows[i] = []any{l}
	}
	return rows
}

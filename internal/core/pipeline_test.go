package core

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/nordicpim/importer/internal/grid"
)

// ----------------------------------------------------------------------------
// Test Workbook Helpers
// ----------------------------------------------------------------------------

// trow builds a data row from literal strings; "" becomes a blank cell.
func trow(cells ...string) []grid.Value {
	row := make([]grid.Value, len(cells))
	for i, c := range cells {
		if c == "" {
			row[i] = grid.Blank
			continue
		}
		row[i] = grid.TextValue(c)
	}
	return row
}

// wb is a mutable workbook under construction, keyed by sheet name.
type wb map[string]*grid.Sheet

// baseWorkbook returns a small workbook that validates cleanly: two groups,
// a two-level type tree, one binding, three attributes, one parent item, and
// one product item on a "Drills" sheet with two attr:* columns.
func baseWorkbook() wb {
	drillHeader := append(append([]string{}, ItemHeaders...), "attr:material", "attr:diameter")
	return wb{
		SheetConfig: {
			Name:   SheetConfig,
			Header: append([]string{}, ConfigHeaders...),
			Rows: [][]grid.Value{
				trow("mode", "CREATE_UPDATE"),
				trow("default_language", "en"),
			},
		},
		SheetGroups: {
			Name:   SheetGroups,
			Header: append([]string{}, GroupHeaders...),
			Rows: [][]grid.Value{
				trow("g1", "General"),
				trow("g2", "Technical"),
			},
		},
		SheetTypes: {
			Name:   SheetTypes,
			Header: append([]string{}, TypeHeaders...),
			Rows: [][]grid.Value{
				trow("tool_family", "Tool Family"),
				trow("drill", "Drill", "tool_family"),
			},
		},
		SheetBindings: {
			Name:   SheetBindings,
			Header: append([]string{}, BindingHeaders...),
			Rows: [][]grid.Value{
				trow("g1", "drill", "TRUE", "TRUE"),
			},
		},
		SheetAttributes: {
			Name:   SheetAttributes,
			Header: append([]string{}, AttributeHeaders...),
			Rows: [][]grid.Value{
				trow("material", "Material", "1", "g1"),
				trow("diameter", "Diameter", "4", "g1"),
				trow("description", "Description", "1", "g2", "", "TRUE"),
			},
		},
		SheetItemParents: {
			Name:   SheetItemParents,
			Header: append([]string{}, ItemHeaders...),
			Rows: [][]grid.Value{
				trow("fam_0100", "Drill Family", "tool_family"),
			},
		},
		"Drills": {
			Name:   "Drills",
			Header: drillHeader,
			Rows: [][]grid.Value{
				trow("d0100-01", "Drill One", "drill", "fam_0100", "", "", "carbide", "12.7"),
			},
		},
	}
}

// sheetOrder fixes workbook order so product sheet discovery is stable.
var sheetOrder = []string{
	SheetConfig, SheetGroups, SheetTypes, SheetBindings,
	SheetAttributes, SheetItemParents, "Drills",
}

// source assembles the workbook into a grid.Source.
func (w wb) source() grid.Source {
	var sheets []*grid.Sheet
	for _, name := range sheetOrder {
		if s, ok := w[name]; ok {
			sheets = append(sheets, s)
		}
	}
	return grid.NewMemory(sheets...)
}

// findIssue returns the first issue for a sheet/field pair.
func findIssue(issues []Issue, sheet, field string) (Issue, bool) {
	for _, i := range issues {
		if i.Sheet == sheet && i.Field == field {
			return i, true
		}
	}
	return Issue{}, false
}

// ----------------------------------------------------------------------------
// Pipeline Tests
// ----------------------------------------------------------------------------

func TestRunValidWorkbook(t *testing.T) {
	res := Run(baseWorkbook().source(), Options{})

	if !res.Valid {
		t.Fatalf("expected valid workbook, got errors: %v", res.Errors)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("expected no warnings, got: %v", res.Warnings)
	}

	want := Summary{AttrGroups: 2, Attributes: 3, Types: 2, Items: 2}
	if res.Summary != want {
		t.Fatalf("summary = %+v, want %+v", res.Summary, want)
	}

	if res.Payload.Config.Mode != ModeCreateUpdate || res.Payload.Config.DefaultLanguage != "en" {
		t.Errorf("config = %+v", res.Payload.Config)
	}

	// The product item carries both attr:* column values, coerced per type.
	item := res.Payload.Items[1]
	if item.Identifier != "d0100-01" || item.Type != "drill" || item.Parent != "fam_0100" {
		t.Fatalf("item = %+v", item)
	}
	if got := item.Values["material"]; got != "carbide" {
		t.Errorf("material = %v (%T), want carbide", got, got)
	}
	if got := item.Values["diameter"]; got != 12.7 {
		t.Errorf("diameter = %v (%T), want 12.7", got, got)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	a, err := json.Marshal(Run(baseWorkbook().source(), Options{}))
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(Run(baseWorkbook().source(), Options{}))
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Errorf("two runs over the same workbook differ:\n%s\n%s", a, b)
	}
}

func TestRunBindingFoldsIntoTypeSets(t *testing.T) {
	res := Run(baseWorkbook().source(), Options{})

	// material is in g1; the (g1, drill) binding has valid and visible set.
	material := res.Payload.Attributes[0]
	if !reflect.DeepEqual(material.ValidTypes, []string{"drill"}) {
		t.Errorf("material.ValidTypes = %v, want [drill]", material.ValidTypes)
	}
	if !reflect.DeepEqual(material.VisibleTypes, []string{"drill"}) {
		t.Errorf("material.VisibleTypes = %v, want [drill]", material.VisibleTypes)
	}

	// description is in g2 only, which has no binding.
	desc := res.Payload.Attributes[2]
	if desc.ValidTypes != nil || desc.VisibleTypes != nil {
		t.Errorf("description type sets = %v / %v, want none", desc.ValidTypes, desc.VisibleTypes)
	}
}

func TestRunDuplicateGroupKeepsFirst(t *testing.T) {
	w := baseWorkbook()
	// Same identifier, different case: identifiers compare case-insensitively.
	w[SheetGroups].Rows = append(w[SheetGroups].Rows, trow("G1", "Shadow"))

	res := Run(w.source(), Options{})
	if res.Valid {
		t.Fatal("expected invalid workbook")
	}
	iss, ok := findIssue(res.Errors, SheetGroups, "identifier")
	if !ok {
		t.Fatalf("missing duplicate-group error, got: %v", res.Errors)
	}
	if iss.Row != 4 {
		t.Errorf("duplicate reported at row %d, want 4", iss.Row)
	}
	if res.Summary.AttrGroups != 2 {
		t.Errorf("groups = %d, want 2 (first occurrence kept)", res.Summary.AttrGroups)
	}
	if res.Payload.AttrGroups[0].Name["en"] != "General" {
		t.Errorf("first occurrence not kept: %+v", res.Payload.AttrGroups[0])
	}
}

func TestRunAttributeUnknownGroupDropsRow(t *testing.T) {
	w := baseWorkbook()
	w[SheetAttributes].Rows = append(w[SheetAttributes].Rows,
		trow("weight", "Weight", "4", "ghost"))

	res := Run(w.source(), Options{})
	if res.Valid {
		t.Fatal("expected invalid workbook")
	}
	iss, ok := findIssue(res.Errors, SheetAttributes, "groups_csv")
	if !ok {
		t.Fatalf("missing unknown-group error, got: %v", res.Errors)
	}
	if iss.Row != 5 {
		t.Errorf("error at row %d, want 5", iss.Row)
	}
	if res.Summary.Attributes != 3 {
		t.Errorf("attributes = %d, want 3 (bad row dropped)", res.Summary.Attributes)
	}
}

func TestRunBindingUnknownRefsWarn(t *testing.T) {
	w := baseWorkbook()
	w[SheetBindings].Rows = append(w[SheetBindings].Rows,
		trow("ghost_group", "drill", "TRUE", "TRUE"),
		trow("g1", "ghost_type", "TRUE", "TRUE"))

	res := Run(w.source(), Options{})
	if !res.Valid {
		t.Fatalf("unresolved binding refs must only warn, got errors: %v", res.Errors)
	}
	if _, ok := findIssue(res.Warnings, SheetBindings, "group_identifier"); !ok {
		t.Errorf("missing unknown-group warning: %v", res.Warnings)
	}
	if _, ok := findIssue(res.Warnings, SheetBindings, "type_identifier"); !ok {
		t.Errorf("missing unknown-type warning: %v", res.Warnings)
	}
}

func TestRunTypeSelfParent(t *testing.T) {
	w := baseWorkbook()
	w[SheetTypes].Rows = append(w[SheetTypes].Rows, trow("mill", "Mill", "mill"))

	res := Run(w.source(), Options{})
	if res.Valid {
		t.Fatal("expected invalid workbook")
	}
	if _, ok := findIssue(res.Errors, SheetTypes, "parent_identifier"); !ok {
		t.Fatalf("missing self-parent error: %v", res.Errors)
	}
	if res.Summary.Types != 2 {
		t.Errorf("types = %d, want 2 (self-parent row dropped)", res.Summary.Types)
	}
}

func TestRunTypeUnknownParentWarns(t *testing.T) {
	w := baseWorkbook()
	w[SheetTypes].Rows = append(w[SheetTypes].Rows, trow("mill", "Mill", "catalog_family"))

	res := Run(w.source(), Options{})
	if !res.Valid {
		t.Fatalf("unknown parent type must only warn, got errors: %v", res.Errors)
	}
	if _, ok := findIssue(res.Warnings, SheetTypes, "parent_identifier"); !ok {
		t.Errorf("missing unknown-parent warning: %v", res.Warnings)
	}
	if res.Summary.Types != 3 {
		t.Errorf("types = %d, want 3 (row kept)", res.Summary.Types)
	}
}

func TestRunItemRequiresParentForChildType(t *testing.T) {
	w := baseWorkbook()
	// drill's type has a parent type, so a drill item must name a parent item.
	w["Drills"].Rows = append(w["Drills"].Rows,
		trow("d0100-02", "Orphan Drill", "drill"))

	res := Run(w.source(), Options{})
	if res.Valid {
		t.Fatal("expected invalid workbook")
	}
	iss, ok := findIssue(res.Errors, "Drills", "parent_identifier")
	if !ok {
		t.Fatalf("missing required-parent error: %v", res.Errors)
	}
	if iss.Row != 3 {
		t.Errorf("error at row %d, want 3", iss.Row)
	}
	if res.Summary.Items != 2 {
		t.Errorf("items = %d, want 2 (orphan dropped)", res.Summary.Items)
	}
}

func TestRunItemSelfParent(t *testing.T) {
	w := baseWorkbook()
	w["Drills"].Rows = append(w["Drills"].Rows,
		trow("d0100-03", "Own Parent", "drill", "d0100-03"))

	res := Run(w.source(), Options{})
	if res.Valid {
		t.Fatal("expected invalid workbook")
	}
	if _, ok := findIssue(res.Errors, "Drills", "parent_identifier"); !ok {
		t.Fatalf("missing self-parent error: %v", res.Errors)
	}
}

func TestRunDuplicateItemAcrossSheets(t *testing.T) {
	w := baseWorkbook()
	// Reuses the Item_Parents identifier on a product sheet.
	w["Drills"].Rows = append(w["Drills"].Rows,
		trow("FAM_0100", "Impostor", "drill", "fam_0100"))

	res := Run(w.source(), Options{})
	if res.Valid {
		t.Fatal("expected invalid workbook")
	}
	iss, ok := findIssue(res.Errors, "Drills", "identifier")
	if !ok {
		t.Fatalf("missing duplicate-item error: %v", res.Errors)
	}
	if iss.Row != 3 {
		t.Errorf("error at row %d, want 3", iss.Row)
	}
	if res.Summary.Items != 2 {
		t.Errorf("items = %d, want 2 (second occurrence dropped)", res.Summary.Items)
	}
}

func TestRunUnresolvedParentItemWarns(t *testing.T) {
	w := baseWorkbook()
	w["Drills"].Rows[0] = trow("d0100-01", "Drill One", "drill", "catalog_parent", "", "", "carbide", "12.7")

	res := Run(w.source(), Options{})
	if !res.Valid {
		t.Fatalf("unresolved parent item must only warn, got errors: %v", res.Errors)
	}
	iss, ok := findIssue(res.Warnings, "Drills", "parent_identifier")
	if !ok {
		t.Fatalf("missing unresolved-parent warning: %v", res.Warnings)
	}
	if iss.Row != 2 {
		t.Errorf("warning at row %d, want 2", iss.Row)
	}
}

func TestRunParentDeclaredOnLaterSheet(t *testing.T) {
	w := baseWorkbook()
	// The drill references a parent declared on the product sheet itself,
	// after the referencing row. Resolution happens workbook-wide.
	w["Drills"].Rows = [][]grid.Value{
		trow("d0200-01", "Late Parent Drill", "drill", "fam_0200", "", "", "carbide", ""),
		trow("fam_0200", "Late Family", "tool_family"),
	}

	res := Run(w.source(), Options{})
	if !res.Valid {
		t.Fatalf("expected valid workbook, got errors: %v", res.Errors)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("expected no warnings, got: %v", res.Warnings)
	}
}

func TestRunValuesJSONAndColumnMerge(t *testing.T) {
	w := baseWorkbook()
	// values_json sets diameter and material; the attr:diameter column
	// overrides the object, the blank attr:material column does not.
	w["Drills"].Rows[0] = trow(
		"d0100-01", "Drill One", "drill", "fam_0100",
		`{"diameter": "3.5", "material": "hss"}`, "",
		"", "12.7",
	)

	res := Run(w.source(), Options{})
	if !res.Valid {
		t.Fatalf("expected valid workbook, got errors: %v", res.Errors)
	}
	item := res.Payload.Items[1]
	if got := item.Values["diameter"]; got != 12.7 {
		t.Errorf("diameter = %v, want 12.7 (column overrides values_json)", got)
	}
	if got := item.Values["material"]; got != "hss" {
		t.Errorf("material = %v, want hss (blank column leaves values_json value)", got)
	}
}

func TestRunBlankAttrColumnOmitted(t *testing.T) {
	w := baseWorkbook()
	w["Drills"].Rows[0] = trow(
		"d0100-01", "Drill One", "drill", "fam_0100", "", "",
		"   ", "12.7",
	)

	res := Run(w.source(), Options{})
	if !res.Valid {
		t.Fatalf("expected valid workbook, got errors: %v", res.Errors)
	}
	item := res.Payload.Items[1]
	if _, present := item.Values["material"]; present {
		t.Errorf("blank attr:material cell must be omitted, got %v", item.Values["material"])
	}
}

func TestRunUnknownAttributeValueKeepsRow(t *testing.T) {
	w := baseWorkbook()
	w["Drills"].Rows[0] = trow(
		"d0100-01", "Drill One", "drill", "fam_0100",
		`{"ghost_attr": "x"}`, "",
		"carbide", "12.7",
	)

	res := Run(w.source(), Options{})
	if res.Valid {
		t.Fatal("expected invalid workbook")
	}
	if _, ok := findIssue(res.Errors, "Drills", "values_json"); !ok {
		t.Fatalf("missing unknown-attribute error: %v", res.Errors)
	}
	// The row itself survives with its good values.
	if res.Summary.Items != 2 {
		t.Fatalf("items = %d, want 2 (row kept despite bad value)", res.Summary.Items)
	}
	item := res.Payload.Items[1]
	if item.Values["material"] != "carbide" || item.Values["diameter"] != 12.7 {
		t.Errorf("good values lost: %v", item.Values)
	}
	if _, present := item.Values["ghost_attr"]; present {
		t.Error("bad value must be omitted from the item")
	}
}

func TestRunBadCoercionKeepsRow(t *testing.T) {
	w := baseWorkbook()
	w["Drills"].Rows[0] = trow(
		"d0100-01", "Drill One", "drill", "fam_0100", "", "",
		"carbide", "wide",
	)

	res := Run(w.source(), Options{})
	if res.Valid {
		t.Fatal("expected invalid workbook")
	}
	iss, ok := findIssue(res.Errors, "Drills", "attr:diameter")
	if !ok {
		t.Fatalf("missing coercion error: %v", res.Errors)
	}
	if iss.Row != 2 {
		t.Errorf("error at row %d, want 2", iss.Row)
	}
	item := res.Payload.Items[1]
	if _, present := item.Values["diameter"]; present {
		t.Error("uncoercible value must be omitted")
	}
	if item.Values["material"] != "carbide" {
		t.Errorf("good value lost: %v", item.Values)
	}
}

func TestRunLanguageDependentValue(t *testing.T) {
	w := baseWorkbook()
	w["Drills"].Header = append(w["Drills"].Header, "attr:description")
	w["Drills"].Rows[0] = trow(
		"d0100-01", "Drill One", "drill", "fam_0100", "", "",
		"carbide", "12.7", "High performance drill",
	)

	res := Run(w.source(), Options{})
	if !res.Valid {
		t.Fatalf("expected valid workbook, got errors: %v", res.Errors)
	}
	item := res.Payload.Items[1]
	want := LocalizedText{"en": "High performance drill"}
	if !reflect.DeepEqual(item.Values["description"], want) {
		t.Errorf("description = %v, want %v", item.Values["description"], want)
	}
}

func TestRunMissingMandatorySheet(t *testing.T) {
	w := baseWorkbook()
	delete(w, SheetTypes)

	res := Run(w.source(), Options{})
	if res.Valid {
		t.Fatal("expected invalid workbook")
	}

	var found bool
	for _, iss := range res.Errors {
		if iss.Sheet == SheetTypes && iss.Row == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing sheet-level error for Types: %v", res.Errors)
	}

	// The remaining stages still run.
	if res.Summary.Types != 0 {
		t.Errorf("types = %d, want 0", res.Summary.Types)
	}
	if res.Summary.AttrGroups != 2 {
		t.Errorf("groups = %d, want 2", res.Summary.AttrGroups)
	}
	if res.Summary.Attributes != 3 {
		t.Errorf("attributes = %d, want 3", res.Summary.Attributes)
	}
	// Item type references now warn instead of resolving.
	if _, ok := findIssue(res.Warnings, SheetItemParents, "type_identifier"); !ok {
		t.Errorf("missing unknown-type warning on Item_Parents: %v", res.Warnings)
	}
}

func TestRunMissingRequiredColumn(t *testing.T) {
	w := baseWorkbook()
	w[SheetGroups].Header = []string{"identifier", "name_en"} // drops order, visible, options_json

	res := Run(w.source(), Options{})
	if res.Valid {
		t.Fatal("expected invalid workbook")
	}
	var count int
	for _, iss := range res.Errors {
		if iss.Sheet == SheetGroups && iss.Row == 0 {
			count++
		}
	}
	if count != 3 {
		t.Errorf("got %d missing-column errors, want 3: %v", count, res.Errors)
	}
	if res.Summary.AttrGroups != 0 {
		t.Errorf("groups = %d, want 0 (row parsing skipped)", res.Summary.AttrGroups)
	}
}

func TestRunExplicitProductSheets(t *testing.T) {
	w := baseWorkbook()
	// An extra non-reserved sheet that is NOT declared must be ignored.
	w["Notes"] = &grid.Sheet{
		Name:   "Notes",
		Header: []string{"anything"},
		Rows:   [][]grid.Value{trow("scratch")},
	}
	order := append(append([]string{}, sheetOrder...), "Notes")

	var sheets []*grid.Sheet
	for _, name := range order {
		sheets = append(sheets, w[name])
	}
	src := grid.NewMemory(sheets...)

	res := Run(src, Options{ProductSheets: []string{"Drills"}})
	if !res.Valid {
		t.Fatalf("expected valid workbook, got errors: %v", res.Errors)
	}
	if res.Summary.Items != 2 {
		t.Errorf("items = %d, want 2", res.Summary.Items)
	}
}

func TestRunExplicitProductSheetMissing(t *testing.T) {
	res := Run(baseWorkbook().source(), Options{ProductSheets: []string{"Mills"}})
	if res.Valid {
		t.Fatal("expected invalid workbook")
	}
	var found bool
	for _, iss := range res.Errors {
		if iss.Sheet == "Mills" && iss.Row == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing sheet-level error for Mills: %v", res.Errors)
	}
}

func TestRunConfigVariants(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]grid.Value
		want     ImportConfig
		wantErrs int
		wantWarn int
	}{
		{
			name: "defaults when sheet empty",
			rows: nil,
			want: DefaultConfig(),
		},
		{
			name: "all keys set",
			rows: [][]grid.Value{
				trow("mode", "create_only"),
				trow("error_policy", "WARN_REJECTED"),
				trow("default_language", "SV-se"),
			},
			want: ImportConfig{Mode: ModeCreateOnly, ErrorPolicy: PolicyWarnRejected, DefaultLanguage: "sv-SE"},
		},
		{
			name: "invalid mode keeps default and errors",
			rows: [][]grid.Value{
				trow("mode", "UPSERT"),
			},
			want:     DefaultConfig(),
			wantErrs: 1,
		},
		{
			name: "unknown key warns",
			rows: [][]grid.Value{
				trow("strictness", "high"),
			},
			want:     DefaultConfig(),
			wantWarn: 1,
		},
		{
			name: "bad language keeps default",
			rows: [][]grid.Value{
				trow("default_language", "english"),
			},
			want:     DefaultConfig(),
			wantErrs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := baseWorkbook()
			w[SheetConfig].Rows = tt.rows

			res := Run(w.source(), Options{})
			if res.Payload.Config != tt.want {
				t.Errorf("config = %+v, want %+v", res.Payload.Config, tt.want)
			}
			var errs, warns int
			for _, iss := range res.Errors {
				if iss.Sheet == SheetConfig {
					errs++
				}
			}
			for _, iss := range res.Warnings {
				if iss.Sheet == SheetConfig {
					warns++
				}
			}
			if errs != tt.wantErrs || warns != tt.wantWarn {
				t.Errorf("config issues = %d errors / %d warnings, want %d / %d",
					errs, warns, tt.wantErrs, tt.wantWarn)
			}
		})
	}
}

func TestRunMissingConfigSheetUsesDefaults(t *testing.T) {
	w := baseWorkbook()
	delete(w, SheetConfig)

	res := Run(w.source(), Options{})
	if !res.Valid {
		t.Fatalf("Import_Config is optional, got errors: %v", res.Errors)
	}
	if res.Payload.Config != DefaultConfig() {
		t.Errorf("config = %+v, want defaults", res.Payload.Config)
	}
}

// ----------------------------------------------------------------------------
// Sheet Reader Tests
// ----------------------------------------------------------------------------

func TestReadSheet(t *testing.T) {
	src := grid.NewMemory(&grid.Sheet{
		Name:   "People",
		Header: []string{"  Identifier ", "NAME_EN", "", "attr:Weight"},
		Rows: [][]grid.Value{
			trow("p1", "One", "", "80"),
			trow("p2"),
		},
	})

	data := ReadSheet(src, "People", []string{"identifier", "name_en"})
	if !data.Present {
		t.Fatal("sheet should be present")
	}
	if len(data.Missing) != 0 {
		t.Fatalf("missing = %v, want none", data.Missing)
	}
	if !reflect.DeepEqual(data.Header, []string{"identifier", "name_en", "attr:weight"}) {
		t.Errorf("header = %v", data.Header)
	}
	if len(data.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(data.Rows))
	}
	if data.Rows[0].Num != 2 || data.Rows[1].Num != 3 {
		t.Errorf("row numbers = %d, %d; want 2, 3", data.Rows[0].Num, data.Rows[1].Num)
	}
	if got := data.Rows[0].Get("attr:weight").String(); got != "80" {
		t.Errorf("attr:weight = %q, want 80", got)
	}
	// Padded cells read back blank through Get.
	if !data.Rows[1].Get("name_en").IsBlank() {
		t.Error("padded cell should be blank")
	}
}

func TestReadSheetAbsent(t *testing.T) {
	data := ReadSheet(grid.NewMemory(), "Ghost", []string{"a", "b"})
	if data.Present {
		t.Fatal("absent sheet reported present")
	}
	if !reflect.DeepEqual(data.Missing, []string{"a", "b"}) {
		t.Errorf("missing = %v, want [a b]", data.Missing)
	}
	if len(data.Rows) != 0 {
		t.Errorf("rows = %d, want 0", len(data.Rows))
	}
}

func TestReadSheetMissingHeaders(t *testing.T) {
	src := grid.NewMemory(&grid.Sheet{
		Name:   "Partial",
		Header: []string{"identifier"},
		Rows:   [][]grid.Value{trow("x")},
	})

	data := ReadSheet(src, "Partial", []string{"identifier", "name_en", "order"})
	if !data.Present {
		t.Fatal("sheet should be present")
	}
	if !reflect.DeepEqual(data.Missing, []string{"name_en", "order"}) {
		t.Errorf("missing = %v, want [name_en order]", data.Missing)
	}
}

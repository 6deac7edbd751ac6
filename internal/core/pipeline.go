package core

// pipeline.go is the orchestrator: it runs the entity parsers in dependency
// order, threads each stage's lookup tables into the next, and assembles the
// final ValidationResult.
//
// The order is fixed and load-bearing: Config -> Attribute Groups -> Types ->
// Type-Group Bindings -> Attributes -> Item_Parents -> product sheets. Later
// stages consume lookup tables built by earlier ones, never the reverse.

import "github.com/nordicpim/importer/internal/grid"

// Options controls a single pipeline run.
type Options struct {
	// ProductSheets declares the product sheets to parse, in order. When
	// empty, every non-reserved sheet in the workbook is treated as a
	// product sheet, in workbook order.
	ProductSheets []string
}

// Run validates a workbook and produces the normalized import payload plus
// the accumulated issue lists. It never fails: problems with the workbook's
// content are reported as issues, and a missing mandatory sheet disables
// only the stages that depend on it.
func Run(src grid.Source, opts Options) *ValidationResult {
	var issues []Issue

	productSheets := opts.ProductSheets
	if len(productSheets) == 0 {
		productSheets = discoverProductSheets(src)
	}

	// Upfront existence check for every mandatory sheet, so row-level
	// parsing below can assume the sheets it was given exist.
	mandatory := make([]string, 0, len(MandatorySheets)+len(opts.ProductSheets))
	mandatory = append(mandatory, MandatorySheets...)
	mandatory = append(mandatory, opts.ProductSheets...)
	for _, name := range mandatory {
		if _, ok := src.Sheet(name); !ok {
			issues = append(issues, sheetError(name, "required sheet is missing"))
		}
	}

	cfg, iss := parseConfig(ReadSheet(src, SheetConfig, ConfigHeaders))
	issues = append(issues, iss...)

	var (
		groups   []AttributeGroupRequest
		groupIDs = map[string]bool{}
	)
	if data, ok := readEntitySheet(src, SheetGroups, GroupHeaders, &issues); ok {
		groups, groupIDs, iss = parseGroups(data, cfg)
		issues = append(issues, iss...)
	}

	var (
		typeList []TypeRequest
		types    = map[string]TypeRequest{}
	)
	if data, ok := readEntitySheet(src, SheetTypes, TypeHeaders, &issues); ok {
		typeList, types, iss = parseTypes(data, cfg)
		issues = append(issues, iss...)
	}

	var bindings []binding
	if data, ok := readEntitySheet(src, SheetBindings, BindingHeaders, &issues); ok {
		bindings, iss = parseBindings(data, groupIDs, types)
		issues = append(issues, iss...)
	}

	var (
		attributes []AttributeRequest
		refs       = map[string]attributeRef{}
	)
	if data, ok := readEntitySheet(src, SheetAttributes, AttributeHeaders, &issues); ok {
		attributes, refs, iss = parseAttributes(data, cfg, groupIDs, types, bindings)
		issues = append(issues, iss...)
	}

	// Item sheets share one identifier namespace: parents first, then the
	// product sheets in declared order.
	var (
		items      []ItemRequest
		parentRefs []parentRef
		seen       = map[string]bool{}
	)
	itemSheets := append([]string{SheetItemParents}, productSheets...)
	for _, name := range itemSheets {
		data, ok := readEntitySheet(src, name, ItemHeaders, &issues)
		if !ok {
			continue
		}
		sheetItems, sheetParents, iss := parseItems(data, cfg, refs, types, seen)
		items = append(items, sheetItems...)
		parentRefs = append(parentRefs, sheetParents...)
		issues = append(issues, iss...)
	}

	// Parent items may be declared on any item sheet, so resolve references
	// only after all of them are read. Unresolved parents warn: they may
	// already exist in the external catalog.
	for _, ref := range parentRefs {
		if !seen[ref.parent] {
			issues = append(issues, warnAt(ref.sheet, ref.row, "parent_identifier",
				"parent item %q is not declared in this workbook", ref.parent))
		}
	}

	errs, warns := partition(issues)
	if errs == nil {
		errs = []Issue{}
	}
	if warns == nil {
		warns = []Issue{}
	}

	return &ValidationResult{
		Payload: Payload{
			Config:     cfg,
			AttrGroups: groups,
			Attributes: attributes,
			Types:      typeList,
			Items:      items,
		},
		Summary: Summary{
			AttrGroups: len(groups),
			Attributes: len(attributes),
			Types:      len(typeList),
			Items:      len(items),
			Errors:     len(errs),
			Warnings:   len(warns),
		},
		Errors:   errs,
		Warnings: warns,
		Valid:    len(errs) == 0,
	}
}

// readEntitySheet reads a mandatory sheet and reports structural problems.
// It returns ok=false when the sheet is absent (already reported by the
// upfront existence check) or when required headers are missing, in which
// case row parsing for that sheet is skipped entirely.
func readEntitySheet(src grid.Source, name string, required []string, issues *[]Issue) (SheetData, bool) {
	data := ReadSheet(src, name, required)
	if !data.Present {
		return data, false
	}
	if len(data.Missing) > 0 {
		for _, m := range data.Missing {
			*issues = append(*issues, sheetError(name, "required column %q is missing", m))
		}
		return data, false
	}
	return data, true
}

// discoverProductSheets returns every non-reserved sheet in workbook order.
func discoverProductSheets(src grid.Source) []string {
	var out []string
	for _, name := range src.SheetNames() {
		if !reservedSheets[name] {
			out = append(out, name)
		}
	}
	return out
}

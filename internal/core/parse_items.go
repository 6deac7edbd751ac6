package core

// parse_items.go parses the Item_Parents sheet and every product sheet.
//
// All item sheets share one identifier namespace: the namespace map is
// threaded through every call so a product item cannot reuse a parent item's
// identifier (or one from another product sheet). Attribute values arrive
// from two sources, the values_json object and dedicated attr:* columns,
// with columns applied last so they win when both name the same attribute.
//
// Parent item references are resolved only after every item sheet has been
// read (see pipeline.go): a parent declared on a later sheet is still a
// legitimate in-workbook reference.

import (
	"errors"
	"sort"
	"strings"

	"github.com/nordicpim/importer/internal/grid"
)

// parentRef records a kept item's parent reference for the resolution pass.
type parentRef struct {
	sheet  string
	row    int
	parent string
}

// parseItems reads one item sheet. seen is the shared cross-sheet identifier
// namespace and is mutated as rows are accepted.
func parseItems(data SheetData, cfg ImportConfig, refs map[string]attributeRef, types map[string]TypeRequest, seen map[string]bool) ([]ItemRequest, []parentRef, []Issue) {
	var (
		out     []ItemRequest
		parents []parentRef
		issues  []Issue
	)

	for _, row := range data.Rows {
		if row.Blank() {
			continue
		}

		id := normalizeIdentifier(row.Get("identifier").String())
		if id == "" {
			issues = append(issues, errorAt(data.Name, row.Num, "identifier", "identifier is required"))
			continue
		}
		if seen[id] {
			issues = append(issues, errorAt(data.Name, row.Num, "identifier",
				"duplicate item identifier %q", id))
			continue
		}
		seen[id] = true

		typeID := normalizeIdentifier(row.Get("type_identifier").String())
		if typeID == "" {
			issues = append(issues, errorAt(data.Name, row.Num, "type_identifier", "type identifier is required"))
			continue
		}
		typ, typeKnown := types[typeID]
		if !typeKnown {
			issues = append(issues, warnAt(data.Name, row.Num, "type_identifier",
				"type %q is not declared in this workbook", typeID))
		}

		parent := normalizeIdentifier(row.Get("parent_identifier").String())
		if parent == id {
			issues = append(issues, errorAt(data.Name, row.Num, "parent_identifier",
				"item %q cannot be its own parent", id))
			continue
		}
		if typeKnown && typ.Parent != "" && parent == "" {
			issues = append(issues, errorAt(data.Name, row.Num, "parent_identifier",
				"type %q requires a parent item of type %q", typeID, typ.Parent))
			continue
		}

		rawValues, err := CoerceJSONObject(row.Get("values_json"), true)
		if err != nil {
			issues = append(issues, errorAt(data.Name, row.Num, "values_json", "%s", err))
			continue
		}
		channels, err := CoerceJSONObject(row.Get("channels_json"), true)
		if err != nil {
			issues = append(issues, errorAt(data.Name, row.Num, "channels_json", "%s", err))
			continue
		}

		values, valueIssues := buildValues(data, row, rawValues, refs, cfg.DefaultLanguage)
		issues = append(issues, valueIssues...)

		if parent != "" {
			parents = append(parents, parentRef{sheet: data.Name, row: row.Num, parent: parent})
		}
		out = append(out, ItemRequest{
			Identifier: id,
			Name:       localizedName(row.Get("name_en"), cfg.DefaultLanguage),
			Type:       typeID,
			Parent:     parent,
			Values:     values,
			Channels:   channels,
		})
	}

	return out, parents, issues
}

// buildValues merges the values_json object with the sheet's attr:* columns
// into one coerced values map. Column values are applied after the object,
// so a column overrides the object when both name the same attribute.
// Value-level problems (unknown attribute, coercion failure) are errors but
// do not drop the item: the bad value is simply omitted.
func buildValues(data SheetData, row SheetRow, rawValues map[string]any, refs map[string]attributeRef, lang string) (map[string]any, []Issue) {
	values := make(map[string]any)
	var issues []Issue

	// values_json keys, sorted so issue order is deterministic.
	keys := make([]string, 0, len(rawValues))
	for k := range rawValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		aid := normalizeIdentifier(k)
		ref, ok := refs[aid]
		if !ok {
			issues = append(issues, errorAt(data.Name, row.Num, "values_json",
				"unknown attribute %q", aid))
			continue
		}
		v, keep, err := coerceCandidate(ref, rawValues[k], lang)
		if err != nil {
			issues = append(issues, errorAt(data.Name, row.Num, "values_json",
				"attribute %q: %s", aid, err))
			continue
		}
		if keep {
			values[aid] = v
		}
	}

	// attr:* columns in header order.
	for _, field := range data.Header {
		if !strings.HasPrefix(field, AttrColumnPrefix) {
			continue
		}
		cell := row.Get(field)
		if cell.IsBlank() {
			continue // omitted, never an empty-string value
		}
		aid := normalizeIdentifier(strings.TrimPrefix(field, AttrColumnPrefix))
		ref, ok := refs[aid]
		if !ok {
			issues = append(issues, errorAt(data.Name, row.Num, field,
				"unknown attribute %q", aid))
			continue
		}
		v, keep, err := coerceCandidate(ref, cell, lang)
		if err != nil {
			issues = append(issues, errorAt(data.Name, row.Num, field, "%s", err))
			continue
		}
		if keep {
			values[aid] = v
		}
	}

	if len(values) == 0 {
		return nil, issues
	}
	return values, issues
}

// coerceCandidate coerces one raw candidate value according to the
// attribute's declared type. keep=false with a nil error means the value was
// blank and is omitted from the item.
func coerceCandidate(ref attributeRef, raw any, lang string) (v any, keep bool, err error) {
	var cell grid.Value
	switch t := raw.(type) {
	case grid.Value:
		cell = t
	case string:
		cell = grid.TextValue(t)
	case float64:
		cell = grid.NumberValue(t)
	case bool:
		cell = grid.BoolValue(t)
	case nil:
		return nil, false, nil
	case map[string]any:
		// Object-shaped values pass through only for language-dependent
		// attributes, where they are a pre-localized text map.
		if ref.languageDependent {
			return t, true, nil
		}
		return nil, false, errors.New("must be a scalar value")
	default:
		return nil, false, errors.New("must be a scalar value")
	}

	if cell.IsBlank() {
		return nil, false, nil
	}

	if ref.languageDependent {
		return LocalizedText{lang: cell.String()}, true, nil
	}

	switch ref.typeCode {
	case TypeBoolean:
		b, err := CoerceBool(cell)
		if err != nil {
			return nil, false, err
		}
		return b, true, nil
	case TypeInteger:
		n, err := CoerceInt(cell)
		if err != nil {
			return nil, false, err
		}
		return n, true, nil
	case TypeFloat:
		f, err := CoerceFloat(cell)
		if err != nil {
			return nil, false, err
		}
		return f, true, nil
	default:
		// TEXT, DATE, TIME, ENUM, URL all store the trimmed text form.
		return cell.String(), true, nil
	}
}

package core

// parse_attributes.go parses the Attributes sheet and folds the type-group
// bindings into each attribute's effective valid/visible type sets.
//
// Group membership is workbook-authoritative: an attribute referencing a
// group that was not declared is an error and the row is dropped. Type
// identifiers reaching the valid/visible sets (explicit CSV columns or
// binding propagation) may legitimately live only in the external catalog,
// so unresolved ones warn.

import (
	"sort"
	"strings"
)

// parseAttributes reads attribute rows. The returned refs map is the reduced
// projection (type code + language dependence) consumed by item parsing.
func parseAttributes(data SheetData, cfg ImportConfig, groupIDs map[string]bool, types map[string]TypeRequest, bindings []binding) ([]AttributeRequest, map[string]attributeRef, []Issue) {
	var (
		out    []AttributeRequest
		issues []Issue
	)
	refs := make(map[string]attributeRef)

	for _, row := range data.Rows {
		if row.Blank() {
			continue
		}

		id := normalizeIdentifier(row.Get("identifier").String())
		if id == "" {
			issues = append(issues, errorAt(data.Name, row.Num, "identifier", "identifier is required"))
			continue
		}
		if _, dup := refs[id]; dup {
			issues = append(issues, errorAt(data.Name, row.Num, "identifier",
				"duplicate attribute identifier %q", id))
			continue
		}

		typeCell := row.Get("type_code")
		if typeCell.IsBlank() {
			issues = append(issues, errorAt(data.Name, row.Num, "type_code", "type code is required"))
			continue
		}
		code, err := CoerceInt(typeCell)
		if err != nil || !AttributeType(code).Known() {
			issues = append(issues, errorAt(data.Name, row.Num, "type_code",
				"type code must be a whole number between 1 and 8"))
			continue
		}
		attrType := AttributeType(code)

		groups := CoerceList(row.Get("groups_csv"))
		if len(groups) == 0 {
			issues = append(issues, errorAt(data.Name, row.Num, "groups_csv",
				"at least one attribute group is required"))
			continue
		}
		var unknownGroups []string
		for _, g := range groups {
			if !groupIDs[g] {
				unknownGroups = append(unknownGroups, g)
			}
		}
		if len(unknownGroups) > 0 {
			issues = append(issues, errorAt(data.Name, row.Num, "groups_csv",
				"unknown attribute group(s): %s", strings.Join(unknownGroups, ", ")))
			continue
		}

		order, err := optionalInt(row.Get("order"))
		if err != nil {
			issues = append(issues, errorAt(data.Name, row.Num, "order", "%s", err))
			continue
		}

		langDep, err := flagBool(row.Get("language_dependent"))
		if err != nil {
			issues = append(issues, errorAt(data.Name, row.Num, "language_dependent", "%s", err))
			continue
		}
		richText, err := flagBool(row.Get("rich_text"))
		if err != nil {
			issues = append(issues, errorAt(data.Name, row.Num, "rich_text", "%s", err))
			continue
		}
		multiLine, err := flagBool(row.Get("multi_line"))
		if err != nil {
			issues = append(issues, errorAt(data.Name, row.Num, "multi_line", "%s", err))
			continue
		}

		options, err := optionalObject(row.Get("options_json"))
		if err != nil {
			issues = append(issues, errorAt(data.Name, row.Num, "options_json", "%s", err))
			continue
		}

		validTypes := foldTypes(CoerceList(row.Get("valid_types_csv")), groups, bindings, func(b binding) bool { return b.valid })
		visibleTypes := foldTypes(CoerceList(row.Get("visible_types_csv")), groups, bindings, func(b binding) bool { return b.visible })

		if unknown := unknownTypes(validTypes, types); len(unknown) > 0 {
			issues = append(issues, warnAt(data.Name, row.Num, "valid_types_csv",
				"valid type(s) not declared in this workbook: %s", strings.Join(unknown, ", ")))
		}
		if unknown := unknownTypes(visibleTypes, types); len(unknown) > 0 {
			issues = append(issues, warnAt(data.Name, row.Num, "visible_types_csv",
				"visible type(s) not declared in this workbook: %s", strings.Join(unknown, ", ")))
		}

		refs[id] = attributeRef{typeCode: attrType, languageDependent: langDep}
		out = append(out, AttributeRequest{
			Identifier:        id,
			Name:              localizedName(row.Get("name_en"), cfg.DefaultLanguage),
			Type:              attrType,
			Groups:            groups,
			Order:             order,
			LanguageDependent: langDep,
			RichText:          richText,
			MultiLine:         multiLine,
			Pattern:           row.Get("pattern").String(),
			ListOfValues:      normalizeIdentifier(row.Get("lov_identifier").String()),
			Options:           options,
			ValidTypes:        validTypes,
			VisibleTypes:      visibleTypes,
		})
	}

	return out, refs, issues
}

// foldTypes unions the attribute's explicit type list with every binding
// whose group the attribute belongs to and whose flag is set. The result is
// deduplicated and sorted for deterministic output.
func foldTypes(explicit []string, groups []string, bindings []binding, flag func(binding) bool) []string {
	set := make(map[string]bool, len(explicit))
	for _, t := range explicit {
		set[t] = true
	}

	member := make(map[string]bool, len(groups))
	for _, g := range groups {
		member[g] = true
	}
	for _, b := range bindings {
		if member[b.group] && flag(b) {
			set[b.typ] = true
		}
	}

	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// unknownTypes returns the sorted subset of ids absent from the Types table.
func unknownTypes(ids []string, types map[string]TypeRequest) []string {
	var out []string
	for _, id := range ids {
		if _, ok := types[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

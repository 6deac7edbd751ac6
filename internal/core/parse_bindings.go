package core

// parse_bindings.go parses the Type_Group_Bindings sheet.
//
// Bindings are not a standalone output entity: each (group, type) pair with
// its valid/visible flags is folded into the attributes that declare
// membership in the group (see parse_attributes.go). Unknown groups or types
// in a binding row only warn, since either side may already exist in the
// external catalog.

// binding is one (group, type) validity/visibility declaration.
type binding struct {
	group   string
	typ     string
	valid   bool
	visible bool
}

// parseBindings reads binding rows against the groups and types declared in
// this workbook.
func parseBindings(data SheetData, groupIDs map[string]bool, types map[string]TypeRequest) ([]binding, []Issue) {
	var (
		out    []binding
		issues []Issue
	)

	for _, row := range data.Rows {
		if row.Blank() {
			continue
		}

		group := normalizeIdentifier(row.Get("group_identifier").String())
		if group == "" {
			issues = append(issues, errorAt(data.Name, row.Num, "group_identifier", "group identifier is required"))
			continue
		}
		typ := normalizeIdentifier(row.Get("type_identifier").String())
		if typ == "" {
			issues = append(issues, errorAt(data.Name, row.Num, "type_identifier", "type identifier is required"))
			continue
		}

		valid, err := optionalBool(row.Get("valid"))
		if err != nil {
			issues = append(issues, errorAt(data.Name, row.Num, "valid", "%s", err))
			continue
		}
		visible, err := optionalBool(row.Get("visible"))
		if err != nil {
			issues = append(issues, errorAt(data.Name, row.Num, "visible", "%s", err))
			continue
		}

		if !groupIDs[group] {
			issues = append(issues, warnAt(data.Name, row.Num, "group_identifier",
				"attribute group %q is not declared in this workbook", group))
		}
		if _, ok := types[typ]; !ok {
			issues = append(issues, warnAt(data.Name, row.Num, "type_identifier",
				"type %q is not declared in this workbook", typ))
		}

		b := binding{group: group, typ: typ, valid: true, visible: true}
		if valid != nil {
			b.valid = *valid
		}
		if visible != nil {
			b.visible = *visible
		}
		out = append(out, b)
	}

	return out, issues
}

package core

// parse_groups.go parses the Attribute_Groups sheet.
//
// Groups are the first entity stage: they depend only on the configuration
// and produce the identifier set that attribute parsing resolves group
// memberships against.

// parseGroups reads attribute group rows. The returned set contains the
// identifiers of every emitted group.
func parseGroups(data SheetData, cfg ImportConfig) ([]AttributeGroupRequest, map[string]bool, []Issue) {
	var (
		out    []AttributeGroupRequest
		issues []Issue
	)
	ids := make(map[string]bool)

	for _, row := range data.Rows {
		if row.Blank() {
			continue
		}

		id := normalizeIdentifier(row.Get("identifier").String())
		if id == "" {
			issues = append(issues, errorAt(data.Name, row.Num, "identifier", "identifier is required"))
			continue
		}
		if ids[id] {
			issues = append(issues, errorAt(data.Name, row.Num, "identifier",
				"duplicate attribute group identifier %q", id))
			continue
		}

		order, err := optionalInt(row.Get("order"))
		if err != nil {
			issues = append(issues, errorAt(data.Name, row.Num, "order", "%s", err))
			continue
		}
		visible, err := optionalBool(row.Get("visible"))
		if err != nil {
			issues = append(issues, errorAt(data.Name, row.Num, "visible", "%s", err))
			continue
		}
		options, err := optionalObject(row.Get("options_json"))
		if err != nil {
			issues = append(issues, errorAt(data.Name, row.Num, "options_json", "%s", err))
			continue
		}

		ids[id] = true
		out = append(out, AttributeGroupRequest{
			Identifier: id,
			Name:       localizedName(row.Get("name_en"), cfg.DefaultLanguage),
			Order:      order,
			Visible:    visible,
			Options:    options,
		})
	}

	return out, ids, issues
}

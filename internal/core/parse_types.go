package core

// parse_types.go parses the Types sheet.
//
// Types form a tree via parent_identifier. Direct self-parenting is rejected;
// a parent that is simply absent from this workbook only warns, because the
// type may already exist in the external catalog. Longer parent cycles
// (a -> b -> a) are not detected here.

// typeEntry pairs a parsed type with its source row so the parent resolution
// pass can point warnings at the right place.
type typeEntry struct {
	req TypeRequest
	row int
}

// parseTypes reads type rows. The returned map is keyed by identifier and is
// consumed by binding folding and item parsing.
func parseTypes(data SheetData, cfg ImportConfig) ([]TypeRequest, map[string]TypeRequest, []Issue) {
	var (
		entries []typeEntry
		issues  []Issue
	)
	byID := make(map[string]TypeRequest)

	for _, row := range data.Rows {
		if row.Blank() {
			continue
		}

		id := normalizeIdentifier(row.Get("identifier").String())
		if id == "" {
			issues = append(issues, errorAt(data.Name, row.Num, "identifier", "identifier is required"))
			continue
		}
		if _, dup := byID[id]; dup {
			issues = append(issues, errorAt(data.Name, row.Num, "identifier",
				"duplicate type identifier %q", id))
			continue
		}

		parent := normalizeIdentifier(row.Get("parent_identifier").String())
		if parent == id {
			issues = append(issues, errorAt(data.Name, row.Num, "parent_identifier",
				"type %q cannot be its own parent", id))
			continue
		}

		file, err := optionalBool(row.Get("is_file"))
		if err != nil {
			issues = append(issues, errorAt(data.Name, row.Num, "is_file", "%s", err))
			continue
		}

		req := TypeRequest{
			Identifier: id,
			Name:       localizedName(row.Get("name_en"), cfg.DefaultLanguage),
			Parent:     parent,
			Icon:       row.Get("icon").String(),
			IconColor:  row.Get("icon_color").String(),
			File:       file,
		}
		byID[id] = req
		entries = append(entries, typeEntry{req: req, row: row.Num})
	}

	// Parents may be declared lower in the sheet, so resolve only after the
	// whole sheet is read. Unresolved parents warn: they may pre-exist in
	// the external catalog.
	out := make([]TypeRequest, 0, len(entries))
	for _, e := range entries {
		if e.req.Parent != "" {
			if _, ok := byID[e.req.Parent]; !ok {
				issues = append(issues, warnAt(data.Name, e.row, "parent_identifier",
					"parent type %q is not declared in this workbook", e.req.Parent))
			}
		}
		out = append(out, e.req)
	}

	return out, byID, issues
}

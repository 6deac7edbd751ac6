package core

// contract.go is the single source of truth for the workbook contract:
// sheet names, required header rows, and configuration keys. The sheet
// reader, the entity parsers, and the template generator all consume these
// constants, which keeps the read and write sides byte-for-byte consistent.

// Fixed sheet names.
const (
	SheetConfig      = "Import_Config"
	SheetGroups      = "Attribute_Groups"
	SheetTypes       = "Types"
	SheetBindings    = "Type_Group_Bindings"
	SheetAttributes  = "Attributes"
	SheetItemParents = "Item_Parents"
	SheetReadme      = "README"
)

// AttrColumnPrefix marks item-sheet columns that carry a single attribute
// value; the remainder of the header is the attribute identifier.
const AttrColumnPrefix = "attr:"

// Import_Config keys.
const (
	ConfigKeyMode            = "mode"
	ConfigKeyErrorPolicy     = "error_policy"
	ConfigKeyDefaultLanguage = "default_language"
)

// Required header rows per sheet, in template column order.
var (
	ConfigHeaders = []string{"key", "value"}

	GroupHeaders = []string{
		"identifier", "name_en", "order", "visible", "options_json",
	}

	TypeHeaders = []string{
		"identifier", "name_en", "parent_identifier", "icon", "icon_color", "is_file",
	}

	BindingHeaders = []string{
		"group_identifier", "type_identifier", "valid", "visible",
	}

	AttributeHeaders = []string{
		"identifier", "name_en", "type_code", "groups_csv", "order",
		"language_dependent", "rich_text", "multi_line", "pattern",
		"lov_identifier", "options_json", "valid_types_csv", "visible_types_csv",
	}

	// ItemHeaders are the base columns shared by Item_Parents and every
	// product sheet; product sheets may add any number of attr:* columns.
	ItemHeaders = []string{
		"identifier", "name_en", "type_identifier", "parent_identifier",
		"values_json", "channels_json",
	}
)

// MandatorySheets are checked for existence before any row parsing begins.
// Import_Config is deliberately absent: it falls back to defaults.
var MandatorySheets = []string{
	SheetGroups,
	SheetTypes,
	SheetBindings,
	SheetAttributes,
	SheetItemParents,
}

// reservedSheets is the set of names that are never treated as product
// sheets during discovery.
var reservedSheets = map[string]bool{
	SheetConfig:      true,
	SheetGroups:      true,
	SheetTypes:       true,
	SheetBindings:    true,
	SheetAttributes:  true,
	SheetItemParents: true,
	SheetReadme:      true,
}

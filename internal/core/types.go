// Package core provides the business logic for catalog workbook imports.
package core

// ImportMode controls whether the downstream import may create entities,
// update existing ones, or both.
type ImportMode string

const (
	ModeCreateOnly   ImportMode = "CREATE_ONLY"
	ModeUpdateOnly   ImportMode = "UPDATE_ONLY"
	ModeCreateUpdate ImportMode = "CREATE_UPDATE"
)

// ErrorPolicy controls how the downstream import treats rows that were
// rejected during validation.
type ErrorPolicy string

const (
	PolicyProcessWarn  ErrorPolicy = "PROCESS_WARN"
	PolicyWarnRejected ErrorPolicy = "WARN_REJECTED"
)

// ImportConfig is the workbook-level configuration, built once from the
// Import_Config sheet and read-only thereafter. Defaults apply when the sheet
// or individual keys are absent.
type ImportConfig struct {
	Mode            ImportMode  `json:"mode"`
	ErrorPolicy     ErrorPolicy `json:"errorPolicy"`
	DefaultLanguage string      `json:"defaultLanguage"`
}

// DefaultConfig returns the configuration used when the Import_Config sheet
// is missing or silent.
func DefaultConfig() ImportConfig {
	return ImportConfig{
		Mode:            ModeCreateUpdate,
		ErrorPolicy:     PolicyProcessWarn,
		DefaultLanguage: "en",
	}
}

// AttributeType is the declared value type of an attribute (type_code column).
type AttributeType int

const (
	TypeText AttributeType = iota + 1
	TypeBoolean
	TypeInteger
	TypeFloat
	TypeDate
	TypeTime
	TypeEnum
	TypeURL
)

// Known reports whether the type code is within the declared 1..8 range.
func (t AttributeType) Known() bool {
	return t >= TypeText && t <= TypeURL
}

// String returns the symbolic name of the type code.
func (t AttributeType) String() string {
	switch t {
	case TypeText:
		return "TEXT"
	case TypeBoolean:
		return "BOOLEAN"
	case TypeInteger:
		return "INTEGER"
	case TypeFloat:
		return "FLOAT"
	case TypeDate:
		return "DATE"
	case TypeTime:
		return "TIME"
	case TypeEnum:
		return "ENUM"
	case TypeURL:
		return "URL"
	}
	return "UNKNOWN"
}

// LocalizedText maps a language tag to a text value. Workbooks carry a single
// default language, so these maps normally have one entry.
type LocalizedText map[string]string

// AttributeGroupRequest is one normalized attribute group row.
type AttributeGroupRequest struct {
	Identifier string         `json:"identifier"`
	Name       LocalizedText  `json:"name,omitempty"`
	Order      *int           `json:"order,omitempty"`
	Visible    *bool          `json:"visible,omitempty"`
	Options    map[string]any `json:"options,omitempty"`
}

// TypeRequest is one normalized item-type row. Types form a tree via Parent.
type TypeRequest struct {
	Identifier string        `json:"identifier"`
	Name       LocalizedText `json:"name,omitempty"`
	Parent     string        `json:"parentIdentifier,omitempty"`
	Icon       string        `json:"icon,omitempty"`
	IconColor  string        `json:"iconColor,omitempty"`
	File       *bool         `json:"isFile,omitempty"`
}

// AttributeRequest is one normalized attribute row, including the effective
// valid/visible type sets after type-group binding propagation.
type AttributeRequest struct {
	Identifier        string         `json:"identifier"`
	Name              LocalizedText  `json:"name,omitempty"`
	Type              AttributeType  `json:"typeCode"`
	Groups            []string       `json:"groups"`
	Order             *int           `json:"order,omitempty"`
	LanguageDependent bool           `json:"languageDependent"`
	RichText          bool           `json:"richText"`
	MultiLine         bool           `json:"multiLine"`
	Pattern           string         `json:"pattern,omitempty"`
	ListOfValues      string         `json:"lovIdentifier,omitempty"`
	Options           map[string]any `json:"options,omitempty"`
	ValidTypes        []string       `json:"validTypes,omitempty"`
	VisibleTypes      []string       `json:"visibleTypes,omitempty"`
}

// ItemRequest is one normalized item row. Parent items and product items
// share this shape; their identifiers share one namespace.
type ItemRequest struct {
	Identifier string         `json:"identifier"`
	Name       LocalizedText  `json:"name,omitempty"`
	Type       string         `json:"typeIdentifier"`
	Parent     string         `json:"parentIdentifier,omitempty"`
	Values     map[string]any `json:"values,omitempty"`
	Channels   map[string]any `json:"channels,omitempty"`
}

// attributeRef is the reduced attribute projection retained for item parsing:
// just enough to pick a coercer for each item value.
type attributeRef struct {
	typeCode          AttributeType
	languageDependent bool
}

// Payload is the assembled import payload handed downstream when validation
// succeeds.
type Payload struct {
	Config     ImportConfig            `json:"config"`
	AttrGroups []AttributeGroupRequest `json:"attrGroups"`
	Attributes []AttributeRequest      `json:"attributes"`
	Types      []TypeRequest           `json:"types"`
	Items      []ItemRequest           `json:"items"`
}

// Summary holds per-entity and per-severity counts for one pipeline run.
type Summary struct {
	AttrGroups int `json:"attrGroups"`
	Attributes int `json:"attributes"`
	Types      int `json:"types"`
	Items      int `json:"items"`
	Errors     int `json:"errors"`
	Warnings   int `json:"warnings"`
}

// ValidationResult is the terminal artifact of a pipeline run: the payload,
// the issue lists split by severity, and the run-level verdict. Valid is true
// exactly when no errors were recorded; warnings never block an import.
type ValidationResult struct {
	Payload  Payload `json:"payload"`
	Summary  Summary `json:"summary"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
	Valid    bool    `json:"valid"`
}

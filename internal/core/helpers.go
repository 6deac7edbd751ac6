package core

// helpers.go holds small field-level helpers shared by the entity parsers.

import "github.com/nordicpim/importer/internal/grid"

// localizedName wraps a raw name cell as localized text tagged with the
// workbook's default language. Blank names yield nil.
func localizedName(v grid.Value, lang string) LocalizedText {
	if v.IsBlank() {
		return nil
	}
	return LocalizedText{lang: v.String()}
}

// optionalInt coerces an optional integer cell: blank yields nil.
func optionalInt(v grid.Value) (*int, error) {
	if v.IsBlank() {
		return nil, nil
	}
	n, err := CoerceInt(v)
	if err != nil {
		return nil, err
	}
	i := int(n)
	return &i, nil
}

// optionalBool coerces an optional boolean cell: blank yields nil.
func optionalBool(v grid.Value) (*bool, error) {
	if v.IsBlank() {
		return nil, nil
	}
	b, err := CoerceBool(v)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// flagBool coerces a boolean flag cell: blank yields false.
func flagBool(v grid.Value) (bool, error) {
	if v.IsBlank() {
		return false, nil
	}
	return CoerceBool(v)
}

// optionalObject coerces an optional JSON-object cell: blank yields nil.
func optionalObject(v grid.Value) (map[string]any, error) {
	if v.IsBlank() {
		return nil, nil
	}
	return CoerceJSONObject(v, false)
}

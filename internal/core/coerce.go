package core

// coerce.go provides scalar coercion from raw cells to typed values.
//
// These functions handle the messy reality of user-edited spreadsheets:
// booleans written as yes/no, numbers stored as text, identifier lists
// separated by commas or semicolons, JSON pasted into a single cell.
//
// All coercers are pure and total: they never panic and report failure as an
// ordinary error carrying the rejection reason. Callers turn that reason into
// a validation issue; nothing here knows about sheets or rows.

import (
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/nordicpim/importer/internal/grid"
)

// integerRegex accepts an optional sign followed by digits only. Thousands
// separators and decimals are deliberately rejected for integer columns.
var integerRegex = regexp.MustCompile(`^-?\d+$`)

var errInvalidJSONObject = errors.New("invalid JSON object")

// CoerceBool converts a raw cell to a boolean. Native booleans pass through,
// numeric cells accept 1/0, and text accepts true/false, yes/no, y/n, 1/0
// case-insensitively.
func CoerceBool(v grid.Value) (bool, error) {
	switch v.Kind {
	case grid.KindBool:
		return v.Bool, nil
	case grid.KindNumber:
		if v.Number == 1 {
			return true, nil
		}
		if v.Number == 0 {
			return false, nil
		}
	case grid.KindText:
		switch strings.ToLower(strings.TrimSpace(v.Text)) {
		case "true", "1", "yes", "y":
			return true, nil
		case "false", "0", "no", "n":
			return false, nil
		}
	}
	return false, errors.New("must be true/false, yes/no, or 1/0")
}

// CoerceInt converts a raw cell to an int64. Native numbers must be integral;
// text must consist of an optional sign and digits.
func CoerceInt(v grid.Value) (int64, error) {
	switch v.Kind {
	case grid.KindNumber:
		if v.Number == math.Trunc(v.Number) && !math.IsInf(v.Number, 0) {
			return int64(v.Number), nil
		}
	case grid.KindText:
		s := strings.TrimSpace(v.Text)
		if integerRegex.MatchString(s) {
			n, err := strconv.ParseInt(s, 10, 64)
			if err == nil {
				return n, nil
			}
		}
	}
	return 0, errors.New("must be a whole number")
}

// CoerceFloat converts a raw cell to a float64. Native finite numbers pass
// through; text is parsed as a decimal.
func CoerceFloat(v grid.Value) (float64, error) {
	switch v.Kind {
	case grid.KindNumber:
		if !math.IsInf(v.Number, 0) && !math.IsNaN(v.Number) {
			return v.Number, nil
		}
	case grid.KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
		if err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return f, nil
		}
	}
	return 0, errors.New("must be a decimal number")
}

// CoerceList splits a raw cell into normalized identifier tokens. Commas and
// semicolons both separate tokens; each token is trimmed and lowercased and
// empty tokens are dropped. A blank cell yields an empty list, never an error.
func CoerceList(v grid.Value) []string {
	if v.IsBlank() {
		return nil
	}
	fields := strings.FieldsFunc(v.String(), func(r rune) bool {
		return r == ',' || r == ';'
	})
	var out []string
	for _, f := range fields {
		f = normalizeIdentifier(f)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// CoerceJSONObject parses a raw cell as a JSON object. Blank cells yield an
// empty object when allowBlank is set and an error otherwise. Arrays, nulls,
// and scalars are rejected.
func CoerceJSONObject(v grid.Value, allowBlank bool) (map[string]any, error) {
	if v.IsBlank() {
		if allowBlank {
			return map[string]any{}, nil
		}
		return nil, errInvalidJSONObject
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(v.String()), &obj); err != nil || obj == nil {
		return nil, errInvalidJSONObject
	}
	return obj, nil
}

// normalizeIdentifier lowercases and trims an identifier. All identifier
// comparison and storage in this package goes through here.
func normalizeIdentifier(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

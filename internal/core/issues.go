package core

// issues.go defines the validation issue record and its helpers.
//
// Issues are append-only values threaded through every parser: each stage
// returns the issues it found and the pipeline concatenates them. Nothing in
// the pipeline ever mutates an issue after creation.

import "fmt"

// Severity classifies an issue as blocking (error) or advisory (warning).
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single validation finding tied to a sheet, and optionally to a
// row and field. Row is the 1-based workbook row (the header is row 1); zero
// means the issue concerns the sheet as a whole.
type Issue struct {
	Severity Severity `json:"severity"`
	Sheet    string   `json:"sheet"`
	Row      int      `json:"row,omitempty"`
	Field    string   `json:"field,omitempty"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	s := fmt.Sprintf("%s: sheet %q", i.Severity, i.Sheet)
	if i.Row > 0 {
		s += fmt.Sprintf(", row %d", i.Row)
	}
	if i.Field != "" {
		s += fmt.Sprintf(", field %q", i.Field)
	}
	return s + ": " + i.Message
}

// errorAt builds an error issue for a row/field.
func errorAt(sheet string, row int, field, format string, args ...any) Issue {
	return Issue{
		Severity: SeverityError,
		Sheet:    sheet,
		Row:      row,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	}
}

// warnAt builds a warning issue for a row/field.
func warnAt(sheet string, row int, field, format string, args ...any) Issue {
	return Issue{
		Severity: SeverityWarning,
		Sheet:    sheet,
		Row:      row,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	}
}

// sheetError builds a sheet-level error issue (no row, no field).
func sheetError(sheet, format string, args ...any) Issue {
	return Issue{
		Severity: SeverityError,
		Sheet:    sheet,
		Message:  fmt.Sprintf(format, args...),
	}
}

// partition splits issues into errors and warnings, preserving order.
func partition(issues []Issue) (errs, warns []Issue) {
	for _, i := range issues {
		if i.Severity == SeverityError {
			errs = append(errs, i)
		} else {
			warns = append(warns, i)
		}
	}
	return errs, warns
}

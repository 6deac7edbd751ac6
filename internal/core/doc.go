// Package core implements the catalog workbook import pipeline.
//
// This package is the heart of the importer, containing all domain logic
// independent of any UI or transport layer. It can be used by web handlers,
// CLI tools, or tests without modification.
//
// # Architecture
//
// The package is organized around several key concepts:
//
//   - Contract: the fixed sheet-name and header contract a workbook must
//     follow (see contract.go). Template generation reads the same constants,
//     so the two surfaces cannot drift.
//   - Scalar coercion: total functions turning raw cells into booleans,
//     integers, floats, identifier lists, and JSON objects (coerce.go).
//   - Sheet reading: a sheet plus its required headers becomes field-keyed
//     rows and a missing-header set (sheet.go).
//   - Entity parsing: one parser per sheet kind, each consuming the lookup
//     tables built by earlier stages (parse_*.go).
//   - The pipeline: Run wires the parsers in dependency order and assembles
//     the final ValidationResult (pipeline.go).
//
// # Error Handling
//
// Problems found in a workbook are never returned as Go errors. Every parser
// appends Issue values instead, so a whole workbook's worth of problems is
// reported in one pass:
//
//   - errors: the row or field violates a within-workbook invariant (missing
//     identifier, duplicate, malformed value, unknown group or attribute).
//     The offending row is dropped from the payload.
//   - warnings: a reference that cannot be verified inside this workbook but
//     may be satisfied by the external catalog (unresolved parent type,
//     unresolved type in a binding, unresolved parent item). The row is kept.
//
// The only terminal failure is the inability to open the workbook itself,
// which happens at the grid boundary before Run is called.
//
// # Usage
//
//	src, err := grid.OpenReader(file)
//	if err != nil {
//	    return err // unreadable workbook
//	}
//	result := core.Run(src, core.Options{})
//	if result.Valid {
//	    // hand result.Payload to the import executor
//	}
package core

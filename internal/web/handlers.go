package web

// handlers.go implements the validation API endpoints.
//
// The HTTP layer stays thin: it opens the uploaded workbook at the grid
// boundary, runs the core pipeline, and serializes the ValidationResult.
// All domain decisions live in internal/core.

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nordicpim/importer/internal/core"
	"github.com/nordicpim/importer/internal/grid"
	"github.com/nordicpim/importer/internal/logging"
	"github.com/nordicpim/importer/internal/template"
)

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]string{"status": "ok"})
}

// handleValidate accepts a multipart workbook upload, runs the validation
// pipeline, and returns the full ValidationResult. The result is returned
// for invalid workbooks too: the caller gets every error and warning in one
// response instead of one problem at a time.
//
// Form fields:
//   - file: the workbook (required)
//   - product_sheets: comma-separated product sheet names in parse order
//     (optional; defaults to the server configuration, then to discovery)
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize)

	if err := r.ParseMultipartForm(s.cfg.Upload.MaxFileSize); err != nil {
		writeError(w, r, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	productSheets := s.cfg.Import.ProductSheets
	if raw := r.FormValue("product_sheets"); raw != "" {
		productSheets = splitSheetList(raw)
	}

	src, err := grid.OpenReader(file)
	if err != nil {
		// The one terminal failure: the binary itself is unreadable.
		writeError(w, r, http.StatusUnprocessableEntity, "workbook could not be opened")
		return
	}

	runID := uuid.NewString()
	logger := logging.WithFields(r.Context(), "run_id", runID, "file", header.Filename)

	start := time.Now()
	result := core.Run(src, core.Options{ProductSheets: productSheets})
	logger.Info("workbook validated",
		"valid", result.Valid,
		"errors", result.Summary.Errors,
		"warnings", result.Summary.Warnings,
		"items", result.Summary.Items,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	w.Header().Set("X-Run-ID", runID)
	writeJSON(w, r, result)
}

// handleTemplate serves the generated import template workbook.
func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	data, err := template.Build()
	if err != nil {
		logging.FromContext(r.Context()).Error("template generation failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "template generation failed")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="catalog-import-template.xlsx"`)
	w.Write(data)
}

// contractSheet describes one sheet of the workbook contract.
type contractSheet struct {
	Name      string   `json:"name"`
	Headers   []string `json:"headers"`
	Mandatory bool     `json:"mandatory"`
	Notes     string   `json:"notes,omitempty"`
}

// handleContract returns the sheet/header contract as JSON, primarily for
// UI clients that render upload guidance.
func (s *Server) handleContract(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, []contractSheet{
		{Name: core.SheetConfig, Headers: core.ConfigHeaders, Mandatory: false,
			Notes: "key/value settings; defaults apply when absent"},
		{Name: core.SheetGroups, Headers: core.GroupHeaders, Mandatory: true},
		{Name: core.SheetTypes, Headers: core.TypeHeaders, Mandatory: true},
		{Name: core.SheetBindings, Headers: core.BindingHeaders, Mandatory: true},
		{Name: core.SheetAttributes, Headers: core.AttributeHeaders, Mandatory: true},
		{Name: core.SheetItemParents, Headers: core.ItemHeaders, Mandatory: true},
		{Name: "<product sheets>", Headers: core.ItemHeaders, Mandatory: false,
			Notes: "one sheet per product type; add attr:<identifier> columns per attribute"},
	})
}

// splitSheetList splits a comma-separated sheet list, dropping empties.
// Sheet names keep their case: workbook sheet lookup is exact.
func splitSheetList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

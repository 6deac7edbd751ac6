package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nordicpim/importer/internal/core"
	"github.com/nordicpim/importer/internal/grid"
	"github.com/spf13/cobra"
)

var (
	productSheets []string
	summaryOnly   bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <workbook.xlsx>",
	Short: "Validate a catalog workbook and print the result as JSON",
	Long: `Validate runs the full import pipeline over a workbook: cross-sheet
reference resolution, uniqueness and hierarchy checks, and attribute value
coercion. All errors and warnings are accumulated and printed together.

The exit code is 0 when the workbook is valid (warnings allowed) and 1 when
any error was found or the workbook could not be opened.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := grid.OpenFile(args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		result := core.Run(src, core.Options{ProductSheets: productSheets})

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if summaryOnly {
			out := struct {
				Summary core.Summary `json:"summary"`
				Valid   bool         `json:"valid"`
			}{result.Summary, result.Valid}
			if err := enc.Encode(out); err != nil {
				return err
			}
		} else if err := enc.Encode(result); err != nil {
			return err
		}

		if !result.Valid {
			// Issues are already in the JSON output; just signal failure.
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true
			return fmt.Errorf("workbook has %d error(s)", result.Summary.Errors)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringSliceVar(&productSheets, "product-sheets", nil,
		"product sheet names in parse order (default: every non-reserved sheet)")
	validateCmd.Flags().BoolVar(&summaryOnly, "summary", false,
		"print only the summary counts and verdict")
	rootCmd.AddCommand(validateCmd)
}

// Command pimport validates catalog import workbooks and generates the
// matching import template from the command line. The same pipeline backs
// the HTTP server (cmd/server); this binary exists for scripting and CI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pimport",
	Short: "Catalog workbook validation and template tooling",
	Long: `pimport validates multi-sheet catalog workbooks against the import
contract and prints the resulting payload plus every error and warning
found, so a whole workbook can be fixed in one iteration.

Examples:
  pimport validate catalog.xlsx
  pimport validate --product-sheets Drills,Mills catalog.xlsx
  pimport template import-template.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

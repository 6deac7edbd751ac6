package main

import (
	"fmt"
	"os"

	"github.com/nordicpim/importer/internal/template"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template <out.xlsx>",
	Short: "Write a blank import template workbook",
	Long: `Template writes a workbook with every contract sheet, its exact header
row, example rows, and a README sheet describing the import rules. The
headers come from the same constants the validator checks against.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := template.Build()
		if err != nil {
			return fmt.Errorf("build template: %w", err)
		}
		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			return fmt.Errorf("write template: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", args[0], len(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
}

package cmd

import (
	"dojo/repository"

	"github.com/spf13/cobra"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog to stdout as JSON or YAML",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json or yaml")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := repository.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	techniques, err := loadTechniques()
	if err != nil {
		return err
	}
	return repository.Encode(cmd.OutOrStdout(), format, techniques)
}

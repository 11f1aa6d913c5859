package cmd

import (
	"dojo/catalog"
	"dojo/repository"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the catalog for duplicate ids, bad values and dangling references",
	RunE:  runValidate,
}

func loadTechniques() ([]*catalog.Technique, error) {
	source := catalogSource()
	if source == "" {
		return catalog.Techniques(), nil
	}
	return repository.LoadFile(source)
}

func runValidate(cmd *cobra.Command, args []string) error {
	techniques, err := loadTechniques()
	if err != nil {
		return err
	}
	report := catalog.Validate(techniques)
	out := cmd.OutOrStdout()
	for _, e := range report.Errors {
		fmt.Fprintf(out, "error: %s\n", e)
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	if !report.OK() {
		return errors.New("catalog is invalid")
	}
	fmt.Fprintf(out, "%d techniques ok (%d warnings)\n", len(techniques), len(report.Warnings))
	return nil
}

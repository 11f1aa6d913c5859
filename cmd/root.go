package cmd

import (
	"dojo/config"
	"dojo/logger"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var catalogFile string

var rootCmd = &cobra.Command{
	Use:          "dojo",
	Short:        "Backend for the gym website",
	Long:         "Serves the technique reference, class schedule and instructor pages of the gym website.",
	SilenceUsage: true,
	// bare invocation starts the server
	RunE:         runServe,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "catalog file (.json/.yaml) overriding the built-in catalog; defaults to $CATALOG_FILE")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statsCmd)
}

// catalogSource resolves the --catalog flag against the environment.
func catalogSource() string {
	if catalogFile != "" {
		return catalogFile
	}
	return config.Env().CatalogFile
}

func newLogger() *logger.Logger {
	cfg := config.Env()
	log, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger.SetDefault(log)
	return log
}

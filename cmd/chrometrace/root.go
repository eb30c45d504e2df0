package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "chrometrace",
	Short: "Chrometrace CLI exercises the chrome trace event recorder.",
	Long: `Chrometrace CLI exercises the chrome trace event recorder. The ` +
		`demo command runs concurrent producers against a tracer and writes ` +
		`a trace file loadable in chrome://tracing.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env file may set CHROME_TRACE_FILE; absence is fine.
		_ = godotenv.Load()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

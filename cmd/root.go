package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command; all tools hang off it as subcommands
var rootCmd = &cobra.Command{
	Use:   "obsctl",
	Short: "Operational tooling for the LLM observability copilot",
	Long: `obsctl bundles the operational scripts for the LLM observability copilot:

  traffic   generate scenario-based synthetic load against the chat endpoint
  deploy    provision the Datadog dashboard, monitors and SLOs
  workflow  resolve incidents and set up alert-to-incident automation`,
}

// Execute runs the root command. Cobra already prints the error, so a
// nonzero exit is all that is left to do here.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

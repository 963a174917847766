package cmd

import (
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/llmcopilot/obsctl/traffic"
)

var (
	targetURL string
	requests  int
	scenario  string
	delay     float64
	quiet     bool
	seed      int64
	runID     string
	logFormat string
)

// trafficCmd represents the traffic command
var trafficCmd = &cobra.Command{
	Use:   "traffic",
	Short: "Generate synthetic traffic against the chat endpoint",
	Long: `Generate scenario-based synthetic traffic to exercise the copilot's
alerting rules. Scenarios: normal, spike, errors, cost, safe, or all.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := traffic.Config{
			BaseURL:   targetURL,
			Requests:  requests,
			Scenario:  scenario,
			Delay:     delay,
			Quiet:     quiet,
			Seed:      seed,
			RunID:     runID,
			LogFormat: logFormat,
		}

		// Ctrl-C ends the active scenario early; the runner still prints
		// the summary for whatever completed.
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		if err := traffic.Run(ctx, cfg); err != nil {
			log.Fatalf("Traffic generation failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(trafficCmd)

	trafficCmd.Flags().StringVar(&targetURL, "url", "", "Base URL of the chat service (required)")
	trafficCmd.Flags().IntVar(&requests, "requests", 20, "Number of requests for single scenarios")
	trafficCmd.Flags().StringVar(&scenario, "scenario", "all", "Scenario to run: normal, spike, errors, cost, safe, all")
	trafficCmd.Flags().Float64Var(&delay, "delay", 1.0, "Delay in seconds between requests (normal scenario only)")
	trafficCmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress per-request logging")
	trafficCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for deterministic prompt selection")
	trafficCmd.Flags().StringVar(&runID, "run-id", "", "Optional run ID tag for logs (random UUID when empty)")
	trafficCmd.Flags().StringVar(&logFormat, "log-format", "console", "Log format: 'json' or 'console'")

	_ = trafficCmd.MarkFlagRequired("url")
}

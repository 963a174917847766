package cmd

import (
	stdlog "log"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/llmcopilot/obsctl/datadog"
)

var configDir string

// deployCmd represents the deploy command
var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Provision the Datadog dashboard, monitors and SLOs",
	Long: `Upsert the copilot's observability assets against the Datadog API.
Assets are keyed by title/name, so repeated runs update in place.

Requires DD_API_KEY and DD_APP_KEY in the environment (or a .env file).`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		cfg, err := datadog.LoadConfig()
		if err != nil {
			stdlog.Fatalf("Configuration error: %v", err)
		}

		assets, err := datadog.LoadAssets(configDir)
		if err != nil {
			stdlog.Fatalf("Failed to load asset configs: %v", err)
		}

		client := datadog.NewClient(cfg, datadog.ClientOptions{})

		log.Info().Str("site", cfg.Site).Msg("Starting Datadog deployment")

		dashboardID, err := client.UpsertDashboard(ctx, assets.Dashboard)
		if err != nil {
			stdlog.Fatalf("Dashboard deployment failed: %v", err)
		}
		log.Info().
			Str("url", "https://app."+cfg.Site+"/dashboard/"+dashboardID).
			Msg("Dashboard ready")

		created, updated, err := client.UpsertMonitors(ctx, assets.Monitors)
		if err != nil {
			stdlog.Fatalf("Monitor deployment failed: %v", err)
		}
		log.Info().Int("created", created).Int("updated", updated).Msg("Monitors ready")

		slosCreated := client.CreateSLOs(ctx, assets.SLOs)
		log.Info().Int("created", slosCreated).Msg("SLOs ready")

		log.Info().Msg("Deployment complete")
	},
}

func init() {
	rootCmd.AddCommand(deployCmd)

	deployCmd.Flags().StringVar(&configDir, "config-dir", "configs/datadog", "Directory holding dashboard.json, monitors.json and slos.json")
}

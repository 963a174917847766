package traffic

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Run orchestrates one full traffic generation run: validate the config,
// execute the selected scenario against a shared statistics accumulator,
// and print the summary. An interrupt ends the scenario early but the
// summary still covers every request that completed.
func Run(ctx context.Context, cfg Config) error {
	setupLog(cfg)

	if err := cfg.validate(); err != nil {
		return err
	}
	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}

	scenario := CreateScenario(cfg)
	initialLog(cfg, scenario)

	stats := &RunStats{}
	dispatcher := NewDispatcher(cfg, stats, requestLogger(cfg))

	err := scenario.Run(ctx, dispatcher)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		log.Warn().Msg("Interrupted by user")
	default:
		// scenarios only fail on context errors; anything else is a bug
		return fmt.Errorf("scenario %q failed: %w", scenario.Name(), err)
	}

	printSummary(stats)
	return nil
}

func initialLog(cfg Config, scenario Scenario) {
	log.Info().
		Str("run_id", cfg.RunID).
		Str("url", cfg.BaseURL).
		Str("scenario", scenario.Name()).
		Str("description", scenario.Description()).
		Int("requests", cfg.Requests).
		Int64("seed", cfg.Seed).
		Msg("Starting traffic generation")
}

func setupLog(cfg Config) {
	if strings.ToLower(cfg.LogFormat) == "json" {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		log.Logger = log.Output(os.Stdout)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	}
}

// requestLogger returns the logger used for per-request lines. Quiet mode
// raises the level so only anomalies and the summary remain visible.
func requestLogger(cfg Config) zerolog.Logger {
	logger := log.Logger.With().Str("run_id", cfg.RunID).Logger()
	if cfg.Quiet {
		logger = logger.Level(zerolog.WarnLevel)
	}
	return logger
}

func printSummary(stats *RunStats) {
	sum := stats.Summary()

	ev := log.Info().
		Int("total_requests", sum.Total).
		Int("successful", sum.Success).
		Float64("success_rate_pct", sum.SuccessRate).
		Int("errors", sum.Errors).
		Float64("error_rate_pct", sum.ErrorRate).
		Float64("avg_latency_ms", sum.AvgLatencyMS)

	if sum.TotalTokens > 0 {
		ev = ev.Int64("total_tokens", sum.TotalTokens)
	}
	if sum.TotalCost > 0 {
		ev = ev.Str("total_cost_usd", fmt.Sprintf("%.4f", sum.TotalCost))
	}

	ev.Msg("Traffic generation summary")
}

package traffic

import (
	"errors"
	"strings"
	"time"
)

// Config defines the traffic run parameters passed from the CLI
type Config struct {
	BaseURL   string  // target chat service base URL
	Requests  int     // request count for single scenarios
	Scenario  string  // scenario to run
	Delay     float64 // seconds between requests (normal scenario only)
	Quiet     bool    // suppress per-request logging
	Seed      int64   // RNG seed for deterministic prompt selection
	RunID     string  // optional label for this run, attached to all log events
	LogFormat string  // "json" or "console", default is "console"
}

const (
	// chatTimeout bounds well-formed chat requests; generation can be slow
	chatTimeout = 120 * time.Second
	// probeTimeout bounds malformed probes, which the endpoint should
	// reject quickly
	probeTimeout = 30 * time.Second
)

func (c *Config) validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return errors.New("target URL must not be empty")
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	return nil
}

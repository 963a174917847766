package traffic

import (
	"context"
	"time"
)

// Scenario defines the interface for the fixed traffic patterns. A scenario
// drives a sequence of dispatcher calls against the shared statistics; it
// never retries failed requests and only stops early when the context is
// canceled.
type Scenario interface {
	// Name returns the human-readable name of this scenario
	Name() string

	// Description returns a short explanation of what the scenario exercises
	Description() string

	// Run executes the scenario against the dispatcher. The only error it
	// returns is the context's, when the run is interrupted.
	Run(ctx context.Context, d *Dispatcher) error
}

// ScenarioType represents available scenario types
type ScenarioType string

const (
	ScenarioNormal ScenarioType = "normal"
	ScenarioSpike  ScenarioType = "spike"
	ScenarioErrors ScenarioType = "errors"
	ScenarioCost   ScenarioType = "cost"
	ScenarioSafe   ScenarioType = "safe"
	ScenarioAll    ScenarioType = "all"
)

// CreateScenario creates a scenario instance based on the configured type.
// Unknown types fall back to the full sequence.
func CreateScenario(cfg Config) Scenario {
	switch ScenarioType(cfg.Scenario) {
	case ScenarioNormal:
		return NewNormalScenario(cfg.Requests, time.Duration(cfg.Delay*float64(time.Second)), cfg.Seed)
	case ScenarioSpike:
		return NewSpikeScenario(cfg.Requests, cfg.Seed)
	case ScenarioErrors:
		return NewErrorScenario(cfg.Requests, cfg.Seed)
	case ScenarioCost:
		return NewCostScenario(cfg.Requests, cfg.Seed)
	case ScenarioSafe:
		return NewSafeModeScenario(cfg.Requests, cfg.Seed)
	case ScenarioAll:
		fallthrough
	default:
		return NewAllScenarios(cfg.Seed)
	}
}

// pause waits for d unless the context is canceled first.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

package traffic

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// AllScenarios chains every scenario in a fixed order with a cooldown pause
// between them, so each alert has a quiet window to evaluate in.
type AllScenarios struct {
	subs     []Scenario
	cooldown time.Duration
}

// NewAllScenarios creates the full sequence: normal, spike, errors, cost,
// safe. Request counts are fixed per scenario to keep the total run short
// while still tripping each alert.
func NewAllScenarios(seed int64) *AllScenarios {
	return &AllScenarios{
		subs: []Scenario{
			NewNormalScenario(10, 2*time.Second, seed),
			NewSpikeScenario(10, seed),
			NewErrorScenario(8, seed),
			NewCostScenario(3, seed),
			NewSafeModeScenario(5, seed),
		},
		cooldown: 5 * time.Second,
	}
}

func (s *AllScenarios) Name() string {
	return "All Scenarios"
}

func (s *AllScenarios) Description() string {
	return "Full scenario sequence with cooldown pauses between scenarios"
}

func (s *AllScenarios) Run(ctx context.Context, d *Dispatcher) error {
	log.Info().Int("scenarios", len(s.subs)).Msg("Running all scenarios")

	for i, sub := range s.subs {
		if err := sub.Run(ctx, d); err != nil {
			return err
		}
		if i < len(s.subs)-1 {
			if err := pause(ctx, s.cooldown); err != nil {
				return err
			}
		}
	}
	return nil
}

package traffic

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
)

// CostScenario sends token-heavy prompts to trigger cost anomaly alerts.
type CostScenario struct {
	requests int
	delay    time.Duration
	rng      *rand.Rand
}

// NewCostScenario creates the high-cost scenario. Requests are spaced two
// seconds apart to stay under the endpoint's rate limits.
func NewCostScenario(requests int, seed int64) *CostScenario {
	return &CostScenario{
		requests: requests,
		delay:    2 * time.Second,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (s *CostScenario) Name() string {
	return "High Cost Requests"
}

func (s *CostScenario) Description() string {
	return "Large prompts to trigger cost anomaly alerts"
}

func (s *CostScenario) Run(ctx context.Context, d *Dispatcher) error {
	log.Info().
		Int("requests", s.requests).
		Msg("Scenario: high cost requests")

	for i := 0; i < s.requests; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		prompt := LargePrompts[s.rng.Intn(len(LargePrompts))]
		d.SendChat(ctx, prompt, false)

		if err := pause(ctx, s.delay); err != nil {
			return err
		}
	}
	return nil
}

package traffic

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
)

// SafeModeScenario sends adversarial prompts with safe_mode enabled to
// exercise the endpoint's guardrail filtering.
type SafeModeScenario struct {
	requests int
	delay    time.Duration
	rng      *rand.Rand
}

// NewSafeModeScenario creates the guardrail-testing scenario
func NewSafeModeScenario(requests int, seed int64) *SafeModeScenario {
	return &SafeModeScenario{
		requests: requests,
		delay:    time.Second,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (s *SafeModeScenario) Name() string {
	return "Safe Mode Testing"
}

func (s *SafeModeScenario) Description() string {
	return "Adversarial prompts with safe_mode enabled to exercise guardrails"
}

func (s *SafeModeScenario) Run(ctx context.Context, d *Dispatcher) error {
	log.Info().
		Int("requests", s.requests).
		Msg("Scenario: safe mode testing")

	for i := 0; i < s.requests; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		prompt := SafeModePrompts[s.rng.Intn(len(SafeModePrompts))]
		d.SendChat(ctx, prompt, true)

		if err := pause(ctx, s.delay); err != nil {
			return err
		}
	}
	return nil
}

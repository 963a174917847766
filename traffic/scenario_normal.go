package traffic

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
)

// NormalScenario issues steady sequential traffic drawn from the standard
// prompt set, with a fixed pause between requests.
type NormalScenario struct {
	requests int
	delay    time.Duration
	rng      *rand.Rand
}

// NewNormalScenario creates the steady-traffic scenario
func NewNormalScenario(requests int, delay time.Duration, seed int64) *NormalScenario {
	return &NormalScenario{
		requests: requests,
		delay:    delay,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (s *NormalScenario) Name() string {
	return "Normal Traffic"
}

func (s *NormalScenario) Description() string {
	return "Steady sequential requests to establish a traffic baseline"
}

func (s *NormalScenario) Run(ctx context.Context, d *Dispatcher) error {
	log.Info().
		Int("requests", s.requests).
		Dur("delay", s.delay).
		Msg("Scenario: normal traffic")

	for i := 0; i < s.requests; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		prompt := NormalPrompts[s.rng.Intn(len(NormalPrompts))]
		d.SendChat(ctx, prompt, false)

		// no pause after the final request
		if i < s.requests-1 {
			if err := pause(ctx, s.delay); err != nil {
				return err
			}
		}
	}
	return nil
}

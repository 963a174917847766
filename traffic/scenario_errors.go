package traffic

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrorScenario sends malformed request bodies to confirm the endpoint
// rejects invalid input and to drive the error-rate alert.
type ErrorScenario struct {
	requests int
	delay    time.Duration
	rng      *rand.Rand
}

// NewErrorScenario creates the malformed-request scenario
func NewErrorScenario(requests int, seed int64) *ErrorScenario {
	return &ErrorScenario{
		requests: requests,
		delay:    500 * time.Millisecond,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (s *ErrorScenario) Name() string {
	return "Error Generation"
}

func (s *ErrorScenario) Description() string {
	return "Malformed request probes to trigger error rate alerts"
}

func (s *ErrorScenario) Run(ctx context.Context, d *Dispatcher) error {
	log.Info().
		Int("requests", s.requests).
		Msg("Scenario: error generation")

	for i := 0; i < s.requests; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		payload := MalformedPayloads[s.rng.Intn(len(MalformedPayloads))]
		d.SendMalformed(ctx, payload)

		if err := pause(ctx, s.delay); err != nil {
			return err
		}
	}
	return nil
}

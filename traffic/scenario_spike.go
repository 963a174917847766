package traffic

import (
	"context"
	"math/rand"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// SpikeScenario fires all requests at once to trigger latency alerts. The
// burst is joined as a group: Run returns only after every request has
// completed, regardless of individual completion order.
type SpikeScenario struct {
	requests int
	rng      *rand.Rand
}

// NewSpikeScenario creates the burst scenario
func NewSpikeScenario(requests int, seed int64) *SpikeScenario {
	return &SpikeScenario{
		requests: requests,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (s *SpikeScenario) Name() string {
	return "Traffic Spike"
}

func (s *SpikeScenario) Description() string {
	return "Concurrent request burst to trigger latency alerts"
}

func (s *SpikeScenario) Run(ctx context.Context, d *Dispatcher) error {
	log.Info().
		Int("requests", s.requests).
		Msg("Scenario: traffic spike")

	g := new(errgroup.Group)
	for i := 0; i < s.requests; i++ {
		// prompts are chosen up front; the rng is not goroutine-safe
		prompt := NormalPrompts[s.rng.Intn(len(NormalPrompts))]
		g.Go(func() error {
			d.SendChat(ctx, prompt, false)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

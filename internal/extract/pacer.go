package extract

import (
	"context"
	"math/rand"
	"time"
)

// Pacer suspends the extraction loop between requests so the remote API
// sees serialized, human-paced traffic.
type Pacer interface {
	Pause(ctx context.Context) error
}

// RandomPacer sleeps for a duration drawn uniformly at random from the
// closed interval [min, max] on every pause.
type RandomPacer struct {
	min   time.Duration
	max   time.Duration
	rng   *rand.Rand
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRandomPacer returns a pacer sampling delays from [min, max].
func NewRandomPacer(min, max time.Duration) *RandomPacer {
	if max < min {
		max = min
	}
	return &RandomPacer{
		min:   min,
		max:   max,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep: sleepContext,
	}
}

// Pause blocks for a freshly sampled delay. It returns early with the
// context's error if the context is cancelled first.
func (p *RandomPacer) Pause(ctx context.Context) error {
	return p.sleep(ctx, p.delay())
}

// delay samples from [min, max] inclusive on both ends.
func (p *RandomPacer) delay() time.Duration {
	span := int64(p.max-p.min) + 1
	return p.min + time.Duration(p.rng.Int63n(span))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package remote

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/thenoetrevino/quoteboard/internal/models"
)

// DefaultLatency matches the delay of the mock quotes API
const DefaultLatency = 300 * time.Millisecond

// Unreliable wraps a Remote with simulated network latency and random
// rejections. Fetch and mutation failure rates are independent.
type Unreliable struct {
	next Remote

	latency          time.Duration
	fetchFailureRate float64
	failureRate      float64

	mu  sync.Mutex
	rng *rand.Rand
}

// UnreliableOption configures an Unreliable
type UnreliableOption func(*Unreliable)

// WithLatency sets the delay applied before every call
func WithLatency(d time.Duration) UnreliableOption {
	return func(u *Unreliable) { u.latency = d }
}

// WithFailureRate sets the probability in [0,1] that UpdateStatus is rejected
func WithFailureRate(p float64) UnreliableOption {
	return func(u *Unreliable) { u.failureRate = clamp01(p) }
}

// WithFetchFailureRate sets the probability in [0,1] that FetchColumnPage fails
func WithFetchFailureRate(p float64) UnreliableOption {
	return func(u *Unreliable) { u.fetchFailureRate = clamp01(p) }
}

// WithSeed makes the failure sequence reproducible
func WithSeed(seed uint64) UnreliableOption {
	return func(u *Unreliable) { u.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// NewUnreliable decorates next
func NewUnreliable(next Remote, opts ...UnreliableOption) *Unreliable {
	u := &Unreliable{
		next:    next,
		latency: DefaultLatency,
		rng:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// FetchColumnPage delays, possibly fails, then delegates
func (u *Unreliable) FetchColumnPage(ctx context.Context, req models.PageRequest) (*models.Page, error) {
	if err := u.wait(ctx); err != nil {
		return nil, err
	}
	if u.roll(u.fetchFailureRate) {
		return nil, fmt.Errorf("fetch %s page %d: %w", req.Status, req.Page, models.ErrRejected)
	}
	return u.next.FetchColumnPage(ctx, req)
}

// UpdateStatus delays, possibly rejects, then delegates
func (u *Unreliable) UpdateStatus(ctx context.Context, upd models.StatusUpdate) (*models.StatusUpdateResult, error) {
	if err := u.wait(ctx); err != nil {
		return nil, err
	}
	if u.roll(u.failureRate) {
		return nil, fmt.Errorf("move %s to %s: %w", upd.ID, upd.ToStatus, models.ErrRejected)
	}
	return u.next.UpdateStatus(ctx, upd)
}

func (u *Unreliable) wait(ctx context.Context) error {
	if u.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(u.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (u *Unreliable) roll(p float64) bool {
	if p <= 0 {
		return false
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.rng.Float64() < p
}

func clamp01(p float64) float64 {
	return min(max(p, 0), 1)
}

// Compile-time verification that *Unreliable implements Remote
var _ Remote = (*Unreliable)(nil)

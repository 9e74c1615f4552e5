package ratelimiter

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Config describes a token bucket.
type Config struct {
	Capacity       int           // burst size
	RefillRate     int           // tokens added per interval
	RefillInterval time.Duration // how often tokens are added
}

func (c Config) validate() error {
	switch {
	case c.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	case c.RefillRate <= 0:
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	case c.RefillInterval <= 0:
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result is the bucket state after a request.
type Result struct {
	Limit      int
	Remaining  int           // negative when the request was denied
	ResetAt    time.Time     // next refill
	RetryAfter time.Duration // until one token is available again; zero when allowed
}

func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// Limiter decides whether the caller identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

type bucket struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// Bucket is an in-memory token bucket limiter keyed by caller.
type Bucket struct {
	cfg      Config
	now      func() time.Time
	staleTTL time.Duration

	mu      sync.Mutex
	buckets map[string]*bucket
}

// NewBucket validates cfg and returns an empty Bucket.
func NewBucket(cfg Config) (*Bucket, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Bucket{
		cfg:      cfg,
		now:      time.Now,
		staleTTL: time.Hour,
		buckets:  make(map[string]*bucket),
	}, nil
}

func (b *Bucket) Allow(ctx context.Context, key string) (Result, error) {
	return b.AllowN(ctx, key, 1)
}

// AllowN takes n tokens for key. A denied request still consumes them, down
// to a debt of Capacity, so hammering a closed bucket keeps it closed.
func (b *Bucket) AllowN(ctx context.Context, key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	st, ok := b.buckets[key]
	if !ok {
		st = &bucket{tokens: b.cfg.Capacity, lastRefill: now}
		b.buckets[key] = st
	}

	// Cap intervals so a long-idle key cannot overflow tokens.
	maxIntervals := int64(b.cfg.Capacity/b.cfg.RefillRate + 1)
	intervals := int(min(int64(now.Sub(st.lastRefill)/b.cfg.RefillInterval), maxIntervals))
	if intervals > 0 {
		st.tokens = min(st.tokens+intervals*b.cfg.RefillRate, b.cfg.Capacity)
		st.lastRefill = now
	}

	st.tokens = max(st.tokens-n, -b.cfg.Capacity)
	st.lastAccess = now

	res := Result{
		Limit:     b.cfg.Capacity,
		Remaining: st.tokens,
		ResetAt:   st.lastRefill.Add(b.cfg.RefillInterval),
	}
	if st.tokens < 0 {
		need := (1 - st.tokens + b.cfg.RefillRate - 1) / b.cfg.RefillRate
		res.RetryAfter = st.lastRefill.Add(time.Duration(need) * b.cfg.RefillInterval).Sub(now)
	}
	return res, nil
}

// Reset forgets key.
func (b *Bucket) Reset(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.buckets, key)
}

// Prune drops keys idle for longer than an hour and returns how many went.
func (b *Bucket) Prune() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	removed := 0
	for key, st := range b.buckets {
		if now.Sub(st.lastAccess) > b.staleTTL {
			delete(b.buckets, key)
			removed++
		}
	}
	return removed
}

// RunPruner calls Prune every interval until ctx is done.
func (b *Bucket) RunPruner(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.Prune()
		}
	}
}

// Package ratelimiter implements an in-memory token bucket keyed by caller,
// used to throttle signup submissions per client IP.
//
//	limiter, err := ratelimiter.NewBucket(ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: time.Minute,
//	})
//	res, err := limiter.Allow(ctx, clientip.FromContext(ctx))
//	if !res.Allowed() {
//		// answer 429, Retry-After: res.RetryAfter
//	}
package ratelimiter

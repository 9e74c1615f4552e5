package registration

import (
	"errors"
	"math"
	"strconv"

	"github.com/dmitrymomot/signupkit/handler"
	"github.com/dmitrymomot/signupkit/pkg/clientip"
	"github.com/dmitrymomot/signupkit/pkg/logger"
	"github.com/dmitrymomot/signupkit/pkg/ratelimiter"
)

// throttle limits submissions per client IP. Requests without a resolvable
// IP share one bucket.
func (s *Service) throttle(next handler.HandlerFunc[handler.Context, FormRequest]) handler.HandlerFunc[handler.Context, FormRequest] {
	return func(ctx handler.Context, req FormRequest) handler.Response {
		key := clientip.FromContext(ctx)
		if key == "" {
			key = clientip.FromRequest(ctx.Request())
		}

		res, err := s.limiter.Allow(ctx, key)
		if err != nil {
			return handler.Error(err)
		}

		h := ctx.ResponseWriter().Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))

		if !res.Allowed() {
			h.Set("Retry-After", strconv.Itoa(int(math.Ceil(res.RetryAfter.Seconds()))))
			s.log.WarnContext(ctx, "signup submission throttled",
				logger.Handler("registration.submit"),
				logger.Event("submission_throttled"),
			)
			return handler.Error(errors.Join(handler.ErrTooManyRequests, errThrottled))
		}
		return next(ctx, req)
	}
}

var errThrottled = errors.New("too many signup attempts from this address")

// Option configures a Service.
type Option func(*Service)

// WithSubmitLimiter throttles POST / with l, keyed by client IP.
//
// The IP comes from clientip, which trusts CF-Connecting-IP, X-Forwarded-For
// and X-Real-IP. Deploy behind a proxy that overwrites those headers;
// otherwise a client can rotate them and get a fresh bucket per request.
func WithSubmitLimiter(l ratelimiter.Limiter) Option {
	return func(s *Service) {
		s.limiter = l
	}
}

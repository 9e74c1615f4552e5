package registration

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/signupkit/handler"
	"github.com/dmitrymomot/signupkit/pkg/async"
	"github.com/dmitrymomot/signupkit/pkg/binder"
	"github.com/dmitrymomot/signupkit/pkg/ratelimiter"
	"github.com/dmitrymomot/signupkit/pkg/signup"
)

// Submitter registers a valid signup. *signup.Submitter implements it.
type Submitter interface {
	Submit(ctx context.Context, values signup.Values) (*signup.Account, error)
	SubmitAsync(ctx context.Context, values signup.Values) *async.Future[*signup.Account]
}

type Service struct {
	submitter    Submitter
	errorHandler handler.ErrorHandler[handler.Context]
	limiter      ratelimiter.Limiter
	log          *slog.Logger
}

// NewService returns the signup HTTP service. A nil error handler falls back
// to handler.NewErrorHandler with the same logger.
func NewService(submitter Submitter, errorHandler handler.ErrorHandler[handler.Context], log *slog.Logger, opts ...Option) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(log)
	}
	s := &Service{
		submitter:    submitter,
		errorHandler: errorHandler,
		log:          log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns the router, meant to be mounted at /signup.
//
//	GET  /               initial signals for an empty form
//	POST /check/{field}  re-check one field and everything it affects
//	POST /state          check the whole form
//	POST /               submit
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.initial,
		handler.WithErrorHandler[handler.Context, FormRequest](s.errorHandler),
	))
	r.Post("/check/{field}", s.wrap(s.check))
	r.Post("/state", s.wrap(s.state))
	var submit handler.HandlerFunc[handler.Context, FormRequest] = s.submit
	if s.limiter != nil {
		submit = s.throttle(submit)
	}
	r.Post("/", s.wrap(submit))

	return r
}

func (s *Service) wrap(h handler.HandlerFunc[handler.Context, FormRequest]) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, FormRequest](
			binder.Path(),
			binder.Signals(),
			binder.JSON(),
			binder.Form(),
			binder.Validate(),
		),
		handler.WithErrorHandler[handler.Context, FormRequest](s.errorHandler),
	)
}

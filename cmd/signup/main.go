package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/signupkit/handler"
	"github.com/dmitrymomot/signupkit/modules/registration"
	"github.com/dmitrymomot/signupkit/pkg/clientip"
	"github.com/dmitrymomot/signupkit/pkg/config"
	"github.com/dmitrymomot/signupkit/pkg/environment"
	"github.com/dmitrymomot/signupkit/pkg/httpserver"
	"github.com/dmitrymomot/signupkit/pkg/logger"
	"github.com/dmitrymomot/signupkit/pkg/ratelimiter"
	"github.com/dmitrymomot/signupkit/pkg/requestid"
	"github.com/dmitrymomot/signupkit/pkg/signup"
)

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	env := environment.Parse(cfg.Env)
	log := logger.New(
		logger.WithEnvironment(env, cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, env, log); err != nil {
		log.Error("signup service stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, env environment.Environment, log *slog.Logger) error {
	store := signup.NewMemoryStore()
	submitter := signup.NewSubmitter(
		signup.WithOutcome(signup.RandomOutcome(cfg.Signup.SuccessRate)),
		signup.WithDelay(cfg.Signup.SubmitDelay),
		signup.WithBcryptCost(cfg.Signup.BcryptCost),
		signup.WithAccountStore(store),
		signup.WithLogger(log),
	)

	limiter, err := ratelimiter.NewBucket(ratelimiter.Config{
		Capacity:       cfg.Signup.SubmitBurst,
		RefillRate:     1,
		RefillInterval: cfg.Signup.SubmitRefillInterval,
	})
	if err != nil {
		return fmt.Errorf("submit limiter: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go limiter.RunPruner(ctx, 10*time.Minute)

	registrationSvc := registration.NewService(submitter, handler.NewErrorHandler(log), log,
		registration.WithSubmitLimiter(limiter),
	)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(env),
	)
	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, store.Ping))
	r.Mount("/signup", registrationSvc.Handle())

	log.Info("starting signup service",
		slog.String("addr", cfg.HTTP.Addr),
		slog.Duration("submit_delay", cfg.Signup.SubmitDelay),
		slog.Float64("success_rate", cfg.Signup.SuccessRate),
	)

	return httpserver.New(cfg.HTTP, log).Run(ctx, r)
}

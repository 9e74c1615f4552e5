// Package httpserver runs the signup HTTP service with configurable timeouts
// and graceful shutdown on context cancellation or SIGINT/SIGTERM.
//
//	srv := httpserver.New(cfg.HTTP, log)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler provides liveness and readiness probes.
package httpserver

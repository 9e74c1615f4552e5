// Package logger builds *slog.Logger values for the signup service.
//
// New assembles a text or JSON handler from functional options and wraps it
// so that attributes stored in a request context (for example the request id
// set by requestid.Middleware) are added to every record logged with that
// context.
//
// Attribute helpers in attr.go keep key names consistent across packages:
//
//	log.WarnContext(ctx, "field rejected",
//	    logger.Field("email"),
//	    logger.Rule("signup.email.blocked_domain"),
//	    logger.Component("signup"),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
//
// # Configuration
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "signup"),
//	    logger.WithLevelName(os.Getenv("LOG_LEVEL")),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
package logger

// Package logger builds the slog.Logger used by the checkout validation
// service and provides attribute helpers that keep key names consistent.
//
// New takes functional options: output format (text or json), level, static
// attributes and ContextExtractor callbacks. Extractors run on every record,
// so request-scoped values such as the request id or client address are
// attached without threading a logger through every call.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "paycheck"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "validation failed",
//	    logger.Entity("order"),
//	    logger.Error(err),
//	)
//
// Validation errors from package payload never carry card data, so they can be
// passed to Error as-is. Normalized payloads must go through payload.Redact
// before being logged with Payload.
package logger

// Package logger builds slog loggers from functional options.
//
// New returns a *slog.Logger writing JSON or text at a chosen level. Static
// attributes are attached with WithAttr; WithContextValue copies a value from
// the record's context (for example a request id set by HTTP middleware) into
// every record logged with a *Context method.
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevelName("debug"),
//		logger.WithAttr(logger.Component("formkit")),
//	)
//	log.Info("form validated", logger.Valid(true), logger.Fields(nil))
//
// Invalid formats and level names panic: misconfigured logging should stop the
// program at startup.
package logger

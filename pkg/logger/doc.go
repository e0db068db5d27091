// Package logger builds configured slog loggers for the kit.
//
// The factory applies functional options over production-safe defaults
// (JSON output at info level) and wraps the handler so registered context
// extractors inject request-scoped attributes — the access package ships
// one that records the caller's user ID and resolved role on every line.
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithContextExtractors(access.LoggerExtractor()),
//	)
package logger

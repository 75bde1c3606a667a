// Package logger builds *slog.Logger values for the binder and its tools and
// keeps attribute naming consistent across packages.
//
// New creates a text or JSON handler, applies static attributes, and wraps the
// result so that registered ContextExtractor callbacks run on
// every record. Attribute helpers (Component, Binding, Field, Locale, Error,
// Errors, Count) live in attr.go; Error and Errors return an empty Attr for nil
// input so callers never need a nil check:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("formcheck")),
//	)
//	log.Debug("field validated", logger.Binding("email"), logger.Error(err))
//
// Discard returns a logger for library code that was given none.
package logger

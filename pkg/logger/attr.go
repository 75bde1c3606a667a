package logger

import (
	"log/slog"
	"strconv"

	"golang.org/x/text/language"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Binding records a binding name under the key "binding".
func Binding(name string) slog.Attr {
	return slog.String("binding", name)
}

// Field records a form field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Locale records a language tag under the key "locale".
// The undetermined tag produces an empty Attr.
func Locale(tag language.Tag) slog.Attr {
	if tag == language.Und {
		return slog.Attr{}
	}
	return slog.String("locale", tag.String())
}

// Status records a validation status under the key "status".
func Status(status string) slog.Attr {
	return slog.String("status", status)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

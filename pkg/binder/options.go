package binder

import (
	"log/slog"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/databinder/pkg/i18n"
	"github.com/dmitrymomot/databinder/pkg/logger"
)

// Option configures a Binder.
type Option func(*options)

type options struct {
	locale     language.Tag
	translator *i18n.Translator
	logger     *slog.Logger
}

func defaultOptions() options {
	return options{
		locale: language.English,
		logger: logger.Discard(),
	}
}

// WithLocale sets the locale used for fields that do not report one.
// language.Und is ignored.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		if tag != language.Und {
			o.locale = tag
		}
	}
}

// WithTranslator localizes failures that carry a translation key into the
// locale of the binding that produced them. Bean-level failures use the
// binder locale.
func WithTranslator(t *i18n.Translator) Option {
	return func(o *options) {
		o.translator = t
	}
}

// WithLogger sets the logger for debug output. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

package i18n

import (
	"log/slog"

	"golang.org/x/text/language"
)

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when nothing else matches.
func WithDefaultLanguage(lang language.Tag) Option {
	return func(t *Translator) {
		if lang != language.Und {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether T returns the key for missing
// translations. Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs every missing key at warn level.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) {
		t.logMissing = enabled
	}
}

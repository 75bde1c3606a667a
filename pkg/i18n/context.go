package i18n

import (
	"context"

	"golang.org/x/text/language"
)

type localeContextKey struct{}

// WithLocale stores the locale in the context.
func WithLocale(ctx context.Context, locale language.Tag) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// LocaleFromContext returns the locale stored in the context, or DefaultLanguage.
func LocaleFromContext(ctx context.Context) language.Tag {
	if ctx == nil {
		return DefaultLanguage
	}
	if locale, ok := ctx.Value(localeContextKey{}).(language.Tag); ok && locale != language.Und {
		return locale
	}
	return DefaultLanguage
}

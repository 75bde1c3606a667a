package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Translator resolves translation keys to localized, placeholder-substituted
// messages. It is safe for concurrent use.
type Translator struct {
	adapter       Adapter
	defaultLang   language.Tag
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger

	mu        sync.RWMutex
	catalogs  map[language.Tag]map[string]any
	supported []language.Tag
	matcher   language.Matcher
}

// NewTranslator loads catalogs from adapter and prepares language matching.
func NewTranslator(ctx context.Context, adapter Adapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		adapter:       adapter,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload re-reads catalogs from the adapter.
func (t *Translator) Reload(ctx context.Context) error {
	raw, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}

	catalogs := make(map[language.Tag]map[string]any, len(raw))
	for _, code := range slices.Sorted(maps.Keys(raw)) {
		tag, err := language.Parse(code)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidLanguage, code, err)
		}
		if raw[code] == nil {
			return fmt.Errorf("%w: %s", ErrNilTranslations, code)
		}
		catalogs[tag] = raw[code]
	}

	// The default language goes first so the matcher falls back to it.
	supported := make([]language.Tag, 0, len(catalogs)+1)
	supported = append(supported, t.defaultLang)
	for tag := range catalogs {
		if tag != t.defaultLang {
			supported = append(supported, tag)
		}
	}
	slices.SortFunc(supported[1:], func(a, b language.Tag) int {
		return strings.Compare(a.String(), b.String())
	})

	t.mu.Lock()
	t.catalogs = catalogs
	t.supported = supported
	t.matcher = language.NewMatcher(supported)
	t.mu.Unlock()

	if len(catalogs) == 0 {
		t.logger.WarnContext(ctx, "no translations loaded")
	} else {
		t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", supported))
	}
	return nil
}

// SupportedLanguages lists the languages that can be matched, default first.
func (t *Translator) SupportedLanguages() []language.Tag {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.supported)
}

// Match returns the best supported language for the preferred tags.
func (t *Translator) Match(preferred ...language.Tag) language.Tag {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return match(t.matcher, t.supported, t.defaultLang, preferred...)
}

// Translate looks up key for the best match of lang and substitutes %{name}
// placeholders from values. It reports false when no translation exists in
// either the matched or the default language.
func (t *Translator) Translate(lang language.Tag, key string, values map[string]any) (string, bool) {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if t.logMissing {
			t.logger.Warn("translation not found", slog.String("lang", lang.String()), slog.String("key", key))
		}
		return "", false
	}
	return substitute(tmpl, values), true
}

// T translates key with key/value argument pairs:
//
//	tr.T(language.English, "validation.min", "field", "Age", "min", "18")
//
// Missing translations fall back to the key (or "" with WithFallbackToKey(false)).
func (t *Translator) T(lang language.Tag, key string, args ...string) string {
	values := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		values[args[i]] = args[i+1]
	}

	if msg, ok := t.Translate(lang, key, values); ok {
		return msg
	}
	if t.fallbackToKey {
		return substitute(key, values)
	}
	return ""
}

// Tc is T with the language taken from the context.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(LocaleFromContext(ctx), key, args...)
}

// HasTranslation reports whether key resolves for lang (after matching).
func (t *Translator) HasTranslation(lang language.Tag, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

func (t *Translator) lookup(lang language.Tag, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	matched := match(t.matcher, t.supported, t.defaultLang, lang)
	for _, candidate := range []language.Tag{matched, t.defaultLang} {
		catalog, ok := t.catalogs[candidate]
		if !ok {
			continue
		}
		if val, ok := getPath(catalog, key); ok {
			switch v := val.(type) {
			case string:
				return v, true
			case fmt.Stringer:
				return v.String(), true
			}
		}
	}
	return "", false
}

// getPath walks nested maps with a dot-separated key, e.g. "validation.min".
func getPath(m map[string]any, key string) (any, bool) {
	current := m
	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders; unknown placeholders are kept.
func substitute(tmpl string, values map[string]any) string {
	if len(values) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := m[2 : len(m)-1]
		if v, ok := values[name]; ok {
			return formatValue(v)
		}
		return m
	})
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	case fmt.Stringer:
		return val.String()
	case error:
		return val.Error()
	default:
		s := fmt.Sprint(val)
		// slices print as [a b]; show them as a list
		if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
			return strings.Join(strings.Fields(s[1:len(s)-1]), ", ")
		}
		return s
	}
}

// IsLanguageError reports whether err was caused by an invalid language code.
func IsLanguageError(err error) bool {
	return errors.Is(err, ErrInvalidLanguage)
}

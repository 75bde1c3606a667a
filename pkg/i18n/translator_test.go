package i18n_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/databinder/pkg/i18n"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()

	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"greeting": "Hello, %{name}!",
			"form": map[string]any{
				"saved": "Saved %{count} fields",
			},
		},
		"de": {
			"greeting": "Hallo, %{name}!",
		},
	}}

	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	t.Run("nil adapter", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("invalid language code", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{
			"not a language!": {"k": "v"},
		}})
		require.Error(t, err)
		assert.True(t, i18n.IsLanguageError(err))
	})

	t.Run("nil catalog", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{
			"en": nil,
		}})
		assert.ErrorIs(t, err, i18n.ErrNilTranslations)
	})

	t.Run("adapter error is returned", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := i18n.NewTranslator(context.Background(), failingAdapter{err: boom})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("supported languages default first", func(t *testing.T) {
		tr := newTestTranslator(t)
		assert.Equal(t, []language.Tag{language.English, language.German}, tr.SupportedLanguages())
	})
}

type failingAdapter struct{ err error }

func (a failingAdapter) Load(context.Context) (map[string]map[string]any, error) {
	return nil, a.err
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)

	assert.Equal(t, "Hello, Ann!", tr.T(language.English, "greeting", "name", "Ann"))
	assert.Equal(t, "Hallo, Ann!", tr.T(language.German, "greeting", "name", "Ann"))
	assert.Equal(t, "Hallo, Ann!", tr.T(language.MustParse("de-CH"), "greeting", "name", "Ann"))
	assert.Equal(t, "Saved 3 fields", tr.T(language.English, "form.saved", "count", "3"))

	t.Run("falls back to default language", func(t *testing.T) {
		assert.Equal(t, "Saved 2 fields", tr.T(language.German, "form.saved", "count", "2"))
		assert.Equal(t, "Hello, Bo!", tr.T(language.Japanese, "greeting", "name", "Bo"))
	})

	t.Run("missing key falls back to key", func(t *testing.T) {
		assert.Equal(t, "missing.key", tr.T(language.English, "missing.key"))
	})

	t.Run("missing key without fallback", func(t *testing.T) {
		strict := newTestTranslator(t, i18n.WithFallbackToKey(false))
		assert.Empty(t, strict.T(language.English, "missing.key"))
	})

	t.Run("unknown placeholders are kept", func(t *testing.T) {
		assert.Equal(t, "Hello, %{name}!", tr.T(language.English, "greeting"))
	})

	t.Run("odd argument count ignores the last one", func(t *testing.T) {
		assert.Equal(t, "Hello, Ann!", tr.T(language.English, "greeting", "name", "Ann", "dangling"))
	})

	t.Run("context language", func(t *testing.T) {
		ctx := i18n.WithLocale(context.Background(), language.German)
		assert.Equal(t, "Hallo, X!", tr.Tc(ctx, "greeting", "name", "X"))
	})
}

func TestTranslator_Translate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := newTestTranslator(t,
		i18n.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		i18n.WithMissingTranslationsLogging(true),
	)

	msg, ok := tr.Translate(language.English, "form.saved", map[string]any{"count": 5})
	require.True(t, ok)
	assert.Equal(t, "Saved 5 fields", msg)

	_, ok = tr.Translate(language.English, "form", nil)
	assert.False(t, ok, "a subtree is not a message")

	_, ok = tr.Translate(language.English, "nope", nil)
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "translation not found")

	assert.True(t, tr.HasTranslation(language.German, "greeting"))
	assert.False(t, tr.HasTranslation(language.German, "nope"))
}

func TestTranslator_Match(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t, i18n.WithDefaultLanguage(language.German))
	assert.Equal(t, language.German, tr.Match(language.French))
	assert.Equal(t, language.English, tr.Match(language.MustParse("en-GB")))
}

func TestDefaultMessages(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewTranslator(context.Background(), i18n.DefaultMessages())
	require.NoError(t, err)

	assert.Equal(t, "Name is required", tr.T(language.English, "validation.required", "field", "Name"))
	assert.Equal(t, "Name ist erforderlich", tr.T(language.German, "validation.required", "field", "Name"))

	msg, ok := tr.Translate(language.English, "validation.in_list", map[string]any{
		"field":          "Currency",
		"allowed_values": []string{"EUR", "USD"},
	})
	require.True(t, ok)
	assert.Equal(t, "Currency must be one of: EUR, USD", msg)
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"tr/en.yaml":  {Data: []byte("en:\n  a: \"A\"\n  nested:\n    b: \"B\"\n")},
		"tr/fr.json":  {Data: []byte(`{"fr": {"a": "A-fr"}}`)},
		"tr/notes.md": {Data: []byte("ignored")},
	}

	catalogs, err := (&i18n.FSAdapter{FS: fsys, Dir: "tr"}).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A", catalogs["en"]["a"])
	assert.Equal(t, "A-fr", catalogs["fr"]["a"])
	assert.Len(t, catalogs, 2)

	t.Run("broken file", func(t *testing.T) {
		broken := fstest.MapFS{"bad.yaml": {Data: []byte("en: [unclosed")}}
		_, err := (&i18n.FSAdapter{FS: broken}).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParse)
	})

	t.Run("language must map to an object", func(t *testing.T) {
		flat := fstest.MapFS{"flat.yaml": {Data: []byte("en: hello\n")}}
		_, err := (&i18n.FSAdapter{FS: flat}).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParse)
	})

	t.Run("missing dir", func(t *testing.T) {
		_, err := (&i18n.FSAdapter{FS: fsys, Dir: "nope"}).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDir)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := (&i18n.FSAdapter{FS: fsys, Dir: "tr"}).Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
	})
}

func TestMultiAdapter(t *testing.T) {
	t.Parallel()

	base := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {"validation": map[string]any{"required": "required", "email": "email"}},
	}}
	override := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {"validation": map[string]any{"required": "please fill in"}},
	}}

	catalogs, err := i18n.MultiAdapter{base, nil, override}.Load(context.Background())
	require.NoError(t, err)

	validation := catalogs["en"]["validation"].(map[string]any)
	assert.Equal(t, "please fill in", validation["required"])
	assert.Equal(t, "email", validation["email"])

	// sources are not mutated by merging
	assert.Equal(t, "required", base.Data["en"]["validation"].(map[string]any)["required"])
}

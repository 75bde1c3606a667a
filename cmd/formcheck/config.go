package main

import (
	"context"
	"embed"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/databinder/pkg/config"
	"github.com/dmitrymomot/databinder/pkg/i18n"
	"github.com/dmitrymomot/databinder/pkg/logger"
)

// Config is read from FORMCHECK_* variables and an optional .env file.
type Config struct {
	Locale       string `env:"LOCALE" envDefault:"en"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"text"`
	Translations string `env:"TRANSLATIONS"`
}

func loadConfig(environ map[string]string) (Config, error) {
	opts := []config.Option{
		config.WithPrefix("FORMCHECK_"),
		config.WithOptionalEnvFiles(".env"),
	}
	if environ != nil {
		opts = []config.Option{
			config.WithPrefix("FORMCHECK_"),
			config.WithEnvironment(environ),
		}
	}

	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg Config, out io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	return logger.New(
		logger.WithOutput(out),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(logger.Component("formcheck")),
		logger.WithContextValue("submission", submissionKey{}),
		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
			attr := logger.Locale(i18n.LocaleFromContext(ctx))
			return attr, attr.Key != ""
		}),
	), nil
}

//go:embed messages/*.yaml
var messages embed.FS

// newTranslator merges the built-in validation messages, the account messages
// and, when configured, a directory of overrides.
func newTranslator(ctx context.Context, cfg Config, log *slog.Logger) (*i18n.Translator, error) {
	adapters := i18n.MultiAdapter{
		i18n.DefaultMessages(),
		&i18n.FSAdapter{FS: messages, Dir: "messages"},
	}
	if cfg.Translations != "" {
		adapters = append(adapters, &i18n.FSAdapter{FS: os.DirFS(cfg.Translations)})
	}

	tr, err := i18n.NewTranslator(ctx, adapters,
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		return nil, fmt.Errorf("loading translations: %w", err)
	}
	return tr, nil
}

// resolveLocale picks the best supported language for an Accept-Language
// style setting such as "de-CH,de;q=0.9".
func resolveLocale(setting string, tr *i18n.Translator) language.Tag {
	return i18n.ParseAcceptLanguage(setting, tr.SupportedLanguages(), i18n.DefaultLanguage)
}

package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a Load call.
type Option func(*options)

type options struct {
	prefix      string
	files       []envFile
	environment map[string]string
}

type envFile struct {
	path     string
	optional bool
}

// WithPrefix only considers variables starting with prefix; tags are written
// without it.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles reads the given .env files. Later files override earlier ones
// and the process environment overrides all of them. A missing file is an
// error.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.addFiles(files, false) }
}

// WithOptionalEnvFiles is WithEnvFiles for files that may not exist.
func WithOptionalEnvFiles(files ...string) Option {
	return func(o *options) { o.addFiles(files, true) }
}

func (o *options) addFiles(paths []string, optional bool) {
	for _, path := range paths {
		o.files = append(o.files, envFile{path: path, optional: optional})
	}
}

// WithEnvironment replaces the process environment, mostly for tests.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) { o.environment = vars }
}

// Load parses the environment into v using `env` struct tags.
//
// The .env files are read with godotenv but never exported into the process
// environment, so two loaders with different files do not interfere.
//
//	type Config struct {
//		Locale string `env:"LOCALE" envDefault:"en"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg, config.WithPrefix("FORMCHECK_"), config.WithOptionalEnvFiles(".env"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	vars := make(map[string]string)
	for _, file := range o.files {
		fileVars, err := godotenv.Read(file.path)
		if err != nil {
			if file.optional && errors.Is(err, os.ErrNotExist) {
				continue
			}
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", file.path, err))
		}
		maps.Copy(vars, fileVars)
	}

	if o.environment != nil {
		maps.Copy(vars, o.environment)
	} else {
		for _, kv := range os.Environ() {
			if k, val, ok := strings.Cut(kv, "="); ok {
				vars[k] = val
			}
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: vars,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

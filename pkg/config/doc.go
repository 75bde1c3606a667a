// Package config loads configuration structs from the environment.
//
// It combines github.com/joho/godotenv, which reads .env files, with
// github.com/caarlos0/env/v11, which maps variables onto struct fields through
// `env` and `envDefault` tags. Values resolve in this order, last wins:
// .env files in the order given, then the process environment (or the map
// passed to WithEnvironment).
//
//	type Config struct {
//	    Locale    string `env:"LOCALE" envDefault:"en"`
//	    LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("FORMCHECK_")); err != nil {
//	    log.Fatal(err)
//	}
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can be
// checked with errors.Is.
package config

package appconf

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all the configuration settings for the dashboard server.
// Values are read from TWEETDASH_* environment variables first and may then
// be overridden by command-line flags.
type Config struct {
	Port      int         `env:"TWEETDASH_PORT"       envDefault:"4000"`
	EnvName   string      `env:"TWEETDASH_ENV"        envDefault:"development"`
	DataPath  string      `env:"TWEETDASH_DATA"       envDefault:"ProcessedTweets.csv"`
	RateLimit int         `env:"TWEETDASH_RATE_LIMIT" envDefault:"100"`
	LogLevel  string      `env:"TWEETDASH_LOG_LEVEL"  envDefault:"info"`
	Env       Environment
}

// Parse loads configuration from the environment, then applies flags from args.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.Port, "port", cfg.Port, "API server port")
	fs.StringVar(&cfg.EnvName, "env", cfg.EnvName, "Environment (development|test|production)")
	fs.StringVar(&cfg.DataPath, "data", cfg.DataPath, "Path to the tweet dataset (.csv, or .db/.sqlite produced by tweetdb)")
	fs.IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "Requests per second allowed per client")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Env = EnvFlagToEnvironment(cfg.EnvName)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports configuration values the server cannot start with.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if strings.TrimSpace(c.DataPath) == "" {
		return errors.New("data path is required")
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel converts a level name into a slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", level)
	}
	return l, nil
}

package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/stablematch/experiment"
)

// Configuration keys.
const (
	KeySize      = "experiment.size"
	KeyRuns      = "experiment.runs"
	KeySeed      = "experiment.seed"
	KeyWorkers   = "experiment.workers"
	KeyLogLevel  = "logging.level"
	KeyLogFormat = "logging.format"
)

// EnvPrefix prefixes environment overrides: experiment.size is read from
// STABLEMATCH_EXPERIMENT_SIZE.
const EnvPrefix = "STABLEMATCH"

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config manages settings using Viper.
type Config struct {
	v *viper.Viper
}

// New creates a configuration with defaults and environment overrides.
func New() *Config {
	v := viper.New()

	v.SetDefault(KeySize, 100)
	v.SetDefault(KeyRuns, 1)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyWorkers, 0)

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, FormatConsole)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFile reads a config file; its type follows the extension.
func (c *Config) LoadFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	return nil
}

// BindFlag makes f override key once it is set on the command line.
func (c *Config) BindFlag(key string, f *pflag.Flag) error {
	if f == nil {
		return fmt.Errorf("config: no flag to bind to %q", key)
	}

	return c.v.BindPFlag(key, f)
}

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

func (c *Config) Size() int         { return c.v.GetInt(KeySize) }
func (c *Config) Runs() int         { return c.v.GetInt(KeyRuns) }
func (c *Config) Seed() int64       { return c.v.GetInt64(KeySeed) }
func (c *Config) Workers() int      { return c.v.GetInt(KeyWorkers) }
func (c *Config) LogLevel() string  { return c.v.GetString(KeyLogLevel) }
func (c *Config) LogFormat() string { return c.v.GetString(KeyLogFormat) }

// Experiment returns the experiment section. It is validated by
// experiment.NewRunner, not here.
func (c *Config) Experiment() experiment.Config {
	return experiment.Config{
		Size:    c.Size(),
		Runs:    c.Runs(),
		Seed:    c.Seed(),
		Workers: c.Workers(),
	}
}

// Logger creates a zerolog logger writing to w. An unknown level falls back
// to info; any format other than json is rendered by a ConsoleWriter,
// colored only when w is a terminal.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel()))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var out io.Writer = zerolog.SyncWriter(w)
	if !strings.EqualFold(c.LogFormat(), FormatJSON) {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
			NoColor:    !isTerminal(w),
		}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Str("service", "stablematch").Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

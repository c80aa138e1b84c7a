package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	EnvPrefix   = "STUDYDESK_"
	storePrefix = "STORE_"
)

// Config holds runtime settings for the web client.
type Config struct {
	StoreURL       string        `koanf:"store_url" validate:"required"`
	StoreKey       string        `koanf:"store_key" validate:"required"`
	Listen         string        `koanf:"listen" validate:"required"`
	Timezone       string        `koanf:"timezone"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"gt=0"`
	LogFormat      string        `koanf:"log_format" validate:"oneof=json text zap"`
	LogLevel       string        `koanf:"log_level" validate:"oneof=debug info warn error"`
}

// LoadDefaults populates c with defaults for every optional setting.
func (c *Config) LoadDefaults() {
	c.Listen = ":8080"
	c.RequestTimeout = 10 * time.Second
	c.LogFormat = "json"
	c.LogLevel = "info"
}

// Location resolves Timezone; empty means the process's local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Load builds a Config from fs, which must have been prepared by BindFlags
// and parsed.
func Load(fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if path, _ := fs.GetString(configFlag); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}
	if err := k.Load(env.ProviderWithValue(storePrefix, ".", storeEnvKey), nil); err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}

	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, flagKey(fs)), nil); err != nil {
		return nil, fmt.Errorf("config flags: %w", err)
	}

	cfg := &Config{}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("config decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the assembled configuration. Missing store settings are
// reported by their environment variable names.
func (c *Config) Validate() error {
	var missing []string
	if c.StoreURL == "" {
		missing = append(missing, "STORE_URL")
	}
	if c.StoreKey == "" {
		missing = append(missing, "STORE_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingStore, strings.Join(missing, ", "))
	}

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid config: timezone: %w", err)
	}
	return nil
}

// ErrMissingStore is returned by Load when STORE_URL or STORE_KEY is unset.
var ErrMissingStore = errors.New("missing required store configuration")

// Empty variables are skipped so they do not mask file values.
func envKey(key, value string) (string, any) {
	if value == "" {
		return "", nil
	}
	return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
}

// storeEnvKey accepts only STORE_URL and STORE_KEY.
func storeEnvKey(key, value string) (string, any) {
	if value == "" {
		return "", nil
	}
	switch key {
	case "STORE_URL", "STORE_KEY":
		return strings.ToLower(key), value
	default:
		return "", nil
	}
}

func flagKey(fs *pflag.FlagSet) func(*pflag.Flag) (string, any) {
	return func(f *pflag.Flag) (string, any) {
		if f.Name == configFlag {
			return "", nil
		}
		return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(fs, f)
	}
}

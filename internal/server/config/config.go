// Package config handles configuration for the store server: defaults,
// an optional YAML file, STUDYDESK_STORE_* environment variables and
// command-line flags, applied in that order and validated at the end.
package config

import (
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

const EnvPrefix = "STUDYDESK_STORE_"

// Config holds runtime settings for the store server.
//
// The S3 fields are optional; Export is disabled while S3Bucket is empty.
type Config struct {
	Addr            string        `koanf:"addr" validate:"required"`
	Driver          string        `koanf:"driver" validate:"oneof=postgres sqlite"`
	DSN             string        `koanf:"dsn" validate:"required"`
	APIKey          string        `koanf:"api_key" validate:"required"`
	SecretKey       string        `koanf:"secret_key" validate:"required"`
	AccessTokenTTL  time.Duration `koanf:"access_token_ttl" validate:"gt=0"`
	RefreshTokenTTL time.Duration `koanf:"refresh_token_ttl" validate:"gtfield=AccessTokenTTL"`
	S3Bucket        string        `koanf:"s3_bucket"`
	S3Region        string        `koanf:"s3_region" validate:"required_with=S3Bucket"`
	S3Endpoint      string        `koanf:"s3_endpoint" validate:"omitempty,url"`
	S3AccessKey     string        `koanf:"s3_access_key"`
	S3SecretKey     string        `koanf:"s3_secret_key"`
	ExportURLTTL    time.Duration `koanf:"export_url_ttl" validate:"gt=0"`
	LogFormat       string        `koanf:"log_format" validate:"oneof=json text zap"`
	LogLevel        string        `koanf:"log_level" validate:"oneof=debug info warn error"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: the keys are insecure and must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.Addr = ":50051"
	c.Driver = "sqlite"
	c.DSN = "studydesk.db"
	c.APIKey = "anon-dev-key"
	c.SecretKey = "secretKey"
	c.AccessTokenTTL = 15 * time.Minute
	c.RefreshTokenTTL = 24 * time.Hour
	c.S3Region = "us-east-1"
	c.ExportURLTTL = 15 * time.Minute
	c.LogFormat = "json"
	c.LogLevel = "info"
}

// ExportEnabled reports whether object storage is configured.
func (c *Config) ExportEnabled() bool { return c.S3Bucket != "" }

// Load builds a Config from the flag set, which must have been prepared by
// BindFlags and parsed. The file named by --config, if any, is read first.
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

	// Unchanged flags only fill keys still missing, so flag defaults act as
	// the base layer and explicitly set flags win over everything.
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

// Validate checks the assembled configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func envKey(key, value string) (string, any) {
	return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
}

// flagKey maps --s3-bucket style flag names onto koanf keys and skips
// --config itself.
func flagKey(fs *pflag.FlagSet) func(*pflag.Flag) (string, any) {
	return func(f *pflag.Flag) (string, any) {
		if f.Name == configFlag {
			return "", nil
		}
		return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(fs, f)
	}
}

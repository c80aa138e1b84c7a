package config

import "github.com/spf13/pflag"

const configFlag = "config"

// BindFlags registers the server flags on fs with LoadDefaults values as
// their defaults.
func BindFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.String(configFlag, "", "path to a YAML config file")
	fs.StringP("addr", "a", d.Addr, "gRPC listen address")
	fs.String("driver", d.Driver, "database backend: postgres or sqlite")
	fs.StringP("dsn", "d", d.DSN, "database DSN (postgres URL or sqlite file path)")
	fs.String("api-key", d.APIKey, "public API key every client must present")
	fs.StringP("secret-key", "s", d.SecretKey, "HMAC secret for signing access tokens")
	fs.Duration("access-token-ttl", d.AccessTokenTTL, "access token lifetime")
	fs.Duration("refresh-token-ttl", d.RefreshTokenTTL, "refresh token lifetime")
	fs.String("s3-bucket", d.S3Bucket, "bucket for exports; empty disables export")
	fs.String("s3-region", d.S3Region, "S3 region")
	fs.String("s3-endpoint", d.S3Endpoint, "S3-compatible base endpoint, e.g. http://127.0.0.1:9000")
	fs.String("s3-access-key", d.S3AccessKey, "S3 access key")
	fs.String("s3-secret-key", d.S3SecretKey, "S3 secret key")
	fs.Duration("export-url-ttl", d.ExportURLTTL, "lifetime of presigned export URLs")
	fs.String("log-format", d.LogFormat, "log format: json, text or zap")
	fs.String("log-level", d.LogLevel, "log level: debug, info, warn or error")
}

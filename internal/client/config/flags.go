package config

import "github.com/spf13/pflag"

const configFlag = "config"

// BindFlags registers the web client flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(configFlag, "c", "", "path to a YAML config file")
	fs.StringP("listen", "l", d.Listen, "HTTP listen address")
	fs.String("store-url", "", "store gRPC endpoint (overrides STORE_URL)")
	fs.String("store-key", "", "store public API key (overrides STORE_KEY)")
	fs.String("timezone", d.Timezone, "IANA zone used for calendar days; empty for local")
	fs.Duration("request-timeout", d.RequestTimeout, "timeout for one store call")
	fs.String("log-format", d.LogFormat, "log format: json, text or zap")
	fs.String("log-level", d.LogLevel, "log level: debug, info, warn or error")
}

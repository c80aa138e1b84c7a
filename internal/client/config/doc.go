// Package config loads runtime configuration for the studydesk web client.
//
// Sources & precedence
//
//  1. Flag defaults (see BindFlags).
//  2. Optional YAML file selected with --config.
//  3. STUDYDESK_* environment variables.
//  4. STORE_URL and STORE_KEY, read without a prefix.
//  5. Flags set explicitly on the command line.
//
// Required settings
//
// STORE_URL (the store's gRPC endpoint) and STORE_KEY (its public API key)
// have no defaults. Load fails when either is missing, and the process is
// expected to exit.
//
// # YAML schema
//
//	store_url: grpc://127.0.0.1:50051
//	store_key: anon-dev-key
//	listen: ":8080"
//	timezone: Europe/Riga
//	request_timeout: 10s
//	log_format: text
package config

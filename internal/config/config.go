// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw configuration shared by the diary client and
// server. It is populated by merging environment variables, command-line
// flags and an optional JSON file. Role-specific views with defaults and
// validation are obtained via [GetClientConfig] and [GetServerConfig].
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the database DSN and local cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeout of the diary server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the remote diary API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds client background worker intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// LogFile is the client log path. Env: LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of env and flags. Env: CONFIG, flag: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds token and version settings.
type App struct {
	// TokenSignKey signs and verifies JWT bearer tokens (server).
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens (server).
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued tokens (server).
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// APIToken is the bearer token the client presents to the server.
	// Env: APP_API_TOKEN
	APIToken string `env:"API_TOKEN"`

	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups persistence settings.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds the database connection string. SQLite paths and
// "sqlite3://" URIs select SQLite, "postgres://" URIs select PostgreSQL.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache holds the local diary cache settings.
type Cache struct {
	// Namespace prefixes every cached date key ("<namespace>_<date>").
	// Env: STORAGE_CACHE_NAMESPACE
	Namespace string `env:"NAMESPACE"`

	// MaxEntries bounds the number of clean entries kept on disk.
	// Env: STORAGE_CACHE_MAX_ENTRIES
	MaxEntries int `env:"MAX_ENTRIES"`
}

// Server holds the inbound HTTP settings.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound settings used by the client.
type Adapter struct {
	// HTTPAddress is the base URL of the diary server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LivenessPath is the lightweight endpoint used by the connectivity probe.
	// Env: ADAPTER_LIVENESS_PATH
	LivenessPath string `env:"LIVENESS_PATH"`

	// Env: ADAPTER_LIVENESS_TIMEOUT
	LivenessTimeout time.Duration `env:"LIVENESS_TIMEOUT"`
}

// Workers holds client background worker intervals.
type Workers struct {
	// LinkPollInterval is how often the local network link is polled for
	// online/offline transitions.
	// Env: WORKERS_LINK_POLL_INTERVAL
	LinkPollInterval time.Duration `env:"LINK_POLL_INTERVAL"`

	// CleanupInterval is how often retention pruning runs.
	// Env: WORKERS_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`
}

// GetStructuredConfig loads and merges configuration from, in order of
// increasing priority:
//  1. Environment variables
//  2. Command-line flags in args
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

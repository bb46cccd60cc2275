package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Server defaults.
const (
	DefaultServerAddress        = "localhost:8080"
	DefaultServerRequestTimeout = 30 * time.Second
	DefaultTokenIssuer          = "go-diary-keeper"
	DefaultTokenDuration        = 30 * 24 * time.Hour
	DefaultVersion              = "dev"
)

// ServerApp holds token and version settings of the diary server.
type ServerApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	Version       string
}

// ServerHTTP holds the listen settings.
type ServerHTTP struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ServerStorage holds the diary database settings.
type ServerStorage struct {
	DSN string
}

// ServerConfig is the diary server's view of [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Server  ServerHTTP
	Storage ServerStorage
}

func defaultServerConfig() ServerConfig {
	return ServerConfig{
		App: ServerApp{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       DefaultVersion,
		},
		Server: ServerHTTP{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
	}
}

// GetServerConfig loads the structured config for args, maps the fields the
// server uses, fills unset ones with defaults and validates the result.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			Version:       cfg.App.Version,
		},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ServerStorage{
			DSN: cfg.Storage.DB.DSN,
		},
	}

	if err := mergo.Merge(serverCfg, defaultServerConfig()); err != nil {
		return nil, fmt.Errorf("error applying server defaults: %w", err)
	}

	return serverCfg, serverCfg.validate()
}

package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Client defaults.
const (
	DefaultClientDSN        = "diary_cache.db"
	DefaultCacheNamespace   = "diarum_cache"
	DefaultCacheMaxEntries  = 366
	DefaultAdapterAddress   = "http://localhost:8080"
	DefaultAdapterTimeout   = 10 * time.Second
	DefaultLivenessPath     = "/api/version"
	DefaultLivenessTimeout  = 5 * time.Second
	DefaultLinkPollInterval = 2 * time.Second
	DefaultCleanupInterval  = time.Hour
	DefaultClientLogFile    = "diary_client.log"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// APIToken is the bearer token presented to the diary server.
	APIToken string
}

// ClientAdapter holds the remote diary API settings.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the diary server.
	HTTPAddress     string
	RequestTimeout  time.Duration
	LivenessPath    string
	LivenessTimeout time.Duration
}

// ClientStorage holds the local durable cache settings.
type ClientStorage struct {
	// DSN is the SQLite file backing the local key-value medium.
	DSN        string
	Namespace  string
	MaxEntries int
}

// ClientWorkers holds client background worker intervals.
type ClientWorkers struct {
	LinkPollInterval time.Duration
	CleanupInterval  time.Duration
}

// ClientConfig is the diary client's view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	LogFile string
}

func defaultClientConfig() ClientConfig {
	return ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:     DefaultAdapterAddress,
			RequestTimeout:  DefaultAdapterTimeout,
			LivenessPath:    DefaultLivenessPath,
			LivenessTimeout: DefaultLivenessTimeout,
		},
		Storage: ClientStorage{
			DSN:        DefaultClientDSN,
			Namespace:  DefaultCacheNamespace,
			MaxEntries: DefaultCacheMaxEntries,
		},
		Workers: ClientWorkers{
			LinkPollInterval: DefaultLinkPollInterval,
			CleanupInterval:  DefaultCleanupInterval,
		},
		LogFile: DefaultClientLogFile,
	}
}

// GetClientConfig loads the structured config for args, maps the fields the
// client uses, fills unset ones with defaults and validates the result.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			APIToken: cfg.App.APIToken,
		},
		Adapter: ClientAdapter{
			HTTPAddress:     cfg.Adapter.HTTPAddress,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
			LivenessPath:    cfg.Adapter.LivenessPath,
			LivenessTimeout: cfg.Adapter.LivenessTimeout,
		},
		Storage: ClientStorage{
			DSN:        cfg.Storage.DB.DSN,
			Namespace:  cfg.Storage.Cache.Namespace,
			MaxEntries: cfg.Storage.Cache.MaxEntries,
		},
		Workers: ClientWorkers{
			LinkPollInterval: cfg.Workers.LinkPollInterval,
			CleanupInterval:  cfg.Workers.CleanupInterval,
		},
		LogFile: cfg.LogFile,
	}

	if err := mergo.Merge(clientCfg, defaultClientConfig()); err != nil {
		return nil, fmt.Errorf("error applying client defaults: %w", err)
	}

	return clientCfg, clientCfg.validate()
}

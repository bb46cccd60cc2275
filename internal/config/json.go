package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		APIToken      string   `json:"api_token"`
		Version       string   `json:"version"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
		Cache struct {
			Namespace  string `json:"namespace"`
			MaxEntries int    `json:"max_entries"`
		} `json:"cache"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Adapter struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		LivenessPath    string   `json:"liveness_path"`
		LivenessTimeout Duration `json:"liveness_timeout"`
	} `json:"adapter"`

	Workers struct {
		LinkPollInterval Duration `json:"link_poll_interval"`
		CleanupInterval  Duration `json:"cleanup_interval"`
	} `json:"workers"`

	LogFile string `json:"log_file"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			APIToken:      jsonCfg.App.APIToken,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
			Cache: Cache{
				Namespace:  jsonCfg.Storage.Cache.Namespace,
				MaxEntries: jsonCfg.Storage.Cache.MaxEntries,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:     jsonCfg.Adapter.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			LivenessPath:    jsonCfg.Adapter.LivenessPath,
			LivenessTimeout: time.Duration(jsonCfg.Adapter.LivenessTimeout),
		},
		Workers: Workers{
			LinkPollInterval: time.Duration(jsonCfg.Workers.LinkPollInterval),
			CleanupInterval:  time.Duration(jsonCfg.Workers.CleanupInterval),
		},
		LogFile: jsonCfg.LogFile,
	}, nil
}

// Duration unmarshals from either a Go duration string ("30s") or a number
// of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		MigrationWindow  Duration `json:"migration_window"`
		PasswordHashCost int      `json:"password_hash_cost"`
		Version          string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		Identity struct {
			URL            string   `json:"url"`
			PublicKey      string   `json:"public_key"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"identity,omitempty"`
		Statistics struct {
			URL            string   `json:"url"`
			Country        string   `json:"country"`
			DateRange      string   `json:"date_range"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"statistics,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		StatisticsRefreshInterval Duration `json:"statistics_refresh_interval"`
	} `json:"workers,omitempty"`
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

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			MigrationWindow:  time.Duration(jsonCfg.App.MigrationWindow),
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			Version:          jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			CORSAllowedOrigins: jsonCfg.Server.CORSAllowedOrigins,
		},
		Adapter: Adapter{
			Identity: IdentityProvider{
				URL:            jsonCfg.Adapter.Identity.URL,
				PublicKey:      jsonCfg.Adapter.Identity.PublicKey,
				RequestTimeout: time.Duration(jsonCfg.Adapter.Identity.RequestTimeout),
			},
			Statistics: StatisticsProvider{
				URL:            jsonCfg.Adapter.Statistics.URL,
				Country:        jsonCfg.Adapter.Statistics.Country,
				DateRange:      jsonCfg.Adapter.Statistics.DateRange,
				RequestTimeout: time.Duration(jsonCfg.Adapter.Statistics.RequestTimeout),
			},
		},
		Workers: Workers{
			StatisticsRefreshInterval: time.Duration(jsonCfg.Workers.StatisticsRefreshInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" and from integer nanoseconds.
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
		return errors.New("invalid duration")
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

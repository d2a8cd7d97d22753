package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs. mergo only fills zero fields, so the
// config appended first has the highest priority.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

// withDotEnv loads a .env file into the process environment. An explicitly
// requested file must exist; the default ./.env is optional.
func (b *configBuilder) withDotEnv() *configBuilder {
	path := b.lookup(func(cfg *StructuredConfig) string { return cfg.EnvFilePath })
	if path == "" {
		path = os.Getenv("ENV_FILE")
	}

	if path == "" {
		if _, err := os.Stat(defaultEnvFile); err != nil {
			return b
		}
		path = defaultEnvFile
	}

	if err := loadDotEnv(path); err != nil {
		b.err = errors.Join(b.err, err)
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	jsonPath := b.lookup(func(cfg *StructuredConfig) string { return cfg.JSONFilePath })
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

// lookup returns the first non-empty value picked from the configs
// collected so far.
func (b *configBuilder) lookup(pick func(cfg *StructuredConfig) string) string {
	for _, cfg := range b.configs {
		if v := pick(cfg); v != "" {
			return v
		}
	}
	return ""
}

const defaultEnvFile = ".env"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "population-dashboard",
			TokenDuration:    time.Hour,
			MigrationWindow:  30 * time.Second,
			PasswordHashCost: 10,
			Version:          "dev",
		},
		Server: Server{
			HTTPAddress:        "0.0.0.0:5000",
			RequestTimeout:     30 * time.Second,
			CORSAllowedOrigins: []string{"http://localhost:3000"},
		},
		Adapter: Adapter{
			Identity: IdentityProvider{
				RequestTimeout: 10 * time.Second,
			},
			Statistics: StatisticsProvider{
				URL:            "https://api.worldbank.org",
				Country:        "MW",
				DateRange:      "2018:2023",
				RequestTimeout: 15 * time.Second,
			},
		},
		Workers: Workers{
			StatisticsRefreshInterval: time.Hour,
		},
	}
}

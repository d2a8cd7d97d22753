package adapter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/population-dashboard/internal/config"
	"github.com/MKhiriev/population-dashboard/internal/logger"
)

// Adapters groups the outbound clients used by the service layer.
type Adapters struct {
	IdentityProvider   IdentityProvider
	StatisticsProvider StatisticsProvider
}

// NewAdapters builds every adapter from cfg. When no identity provider URL
// is configured the returned IdentityProvider rejects every token, so only
// locally issued tokens are accepted.
func NewAdapters(cfg config.Adapter, logger *logger.Logger) (*Adapters, error) {
	identity, err := NewSupabaseIdentityProvider(cfg.Identity, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating identity provider adapter: %w", err)
	}

	statistics, err := NewWorldBankStatisticsProvider(cfg.Statistics, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating statistics provider adapter: %w", err)
	}

	return &Adapters{
		IdentityProvider:   identity,
		StatisticsProvider: statistics,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidBaseURL)
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidBaseURL)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

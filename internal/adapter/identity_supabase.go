package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/population-dashboard/internal/config"
	"github.com/MKhiriev/population-dashboard/internal/logger"
	"github.com/MKhiriev/population-dashboard/internal/utils"
	"github.com/MKhiriev/population-dashboard/models"
)

const (
	supabaseUserPath   = "/auth/v1/user"
	supabaseLogoutPath = "/auth/v1/logout"
)

type supabaseIdentityProvider struct {
	client    *utils.HTTPClient
	publicKey string

	logger *logger.Logger
}

// supabaseUser is the subset of the GET /auth/v1/user answer we rely on.
type supabaseUser struct {
	ID               string         `json:"id"`
	Email            string         `json:"email"`
	EmailConfirmedAt string         `json:"email_confirmed_at"`
	AppMetadata      map[string]any `json:"app_metadata"`
	UserMetadata     map[string]any `json:"user_metadata"`
}

// NewSupabaseIdentityProvider constructs an [IdentityProvider] backed by the
// Supabase Auth REST API. An empty cfg.URL yields a provider that rejects
// every token with [ErrIdentityProviderNotConfigured].
func NewSupabaseIdentityProvider(cfg config.IdentityProvider, logger *logger.Logger) (IdentityProvider, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return &supabaseIdentityProvider{logger: logger}, nil
	}

	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetHeader("apikey", cfg.PublicKey)

	return &supabaseIdentityProvider{
		client:    client,
		publicKey: cfg.PublicKey,
		logger:    logger,
	}, nil
}

// VerifyToken implements [IdentityProvider]. It calls GET /auth/v1/user on
// behalf of token and maps the answer to [models.ExternalIdentity].
func (s *supabaseIdentityProvider) VerifyToken(ctx context.Context, token string) (models.ExternalIdentity, error) {
	if s.client == nil {
		return models.ExternalIdentity{}, ErrIdentityProviderNotConfigured
	}
	if strings.TrimSpace(token) == "" {
		return models.ExternalIdentity{}, ErrEmptyToken
	}

	var user supabaseUser
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&user).
		Get(supabaseUserPath)
	if err != nil {
		return models.ExternalIdentity{}, fmt.Errorf("verify token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExternalIdentity{}, err
	}

	if user.ID == "" {
		return models.ExternalIdentity{}, fmt.Errorf("%w: user id is missing", ErrMalformedResponse)
	}

	return models.ExternalIdentity{
		ExternalID:     user.ID,
		Email:          strings.TrimSpace(user.Email),
		EmailConfirmed: user.EmailConfirmedAt != "",
		Role:           metadataRole(user.AppMetadata, user.UserMetadata),
	}, nil
}

// SignOut implements [IdentityProvider]. It revokes the session bound to
// token with POST /auth/v1/logout.
func (s *supabaseIdentityProvider) SignOut(ctx context.Context, token string) error {
	if s.client == nil {
		return ErrIdentityProviderNotConfigured
	}
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Post(supabaseLogoutPath)
	if err != nil {
		return fmt.Errorf("sign out request: %w", err)
	}

	return mapHTTPError(resp)
}

// metadataRole returns the first non-empty "role" string found in the given
// metadata maps.
func metadataRole(metadata ...map[string]any) models.Role {
	for _, m := range metadata {
		if role, ok := m["role"].(string); ok && strings.TrimSpace(role) != "" {
			return models.Role(role)
		}
	}
	return ""
}

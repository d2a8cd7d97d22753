// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/population-dashboard/internal/adapter"
	"github.com/MKhiriev/population-dashboard/internal/logger"
	"github.com/MKhiriev/population-dashboard/internal/store"
	"github.com/MKhiriev/population-dashboard/models"
)

// tokenVerdict is the closed set of outcomes of classifying a bearer token.
type tokenVerdict int

const (
	verdictInvalid tokenVerdict = iota
	verdictLocal
	verdictExternal
)

// tokenClassification carries the payload of the verifier that accepted
// the token. Only the field matching verdict is set.
type tokenClassification struct {
	verdict  tokenVerdict
	claims   models.Claims
	external models.ExternalIdentity
}

// identityService resolves bearer tokens that may have been issued either
// by this service or by the external identity provider.
type identityService struct {
	userRepository   store.UserRepository
	identityProvider adapter.IdentityProvider
	tokens           *tokenIssuer

	logger *logger.Logger
}

func NewIdentityService(userRepository store.UserRepository, identityProvider adapter.IdentityProvider, tokens *tokenIssuer, logger *logger.Logger) IdentityService {
	return &identityService{
		userRepository:   userRepository,
		identityProvider: identityProvider,
		tokens:           tokens,
		logger:           logger,
	}
}

// classifyToken tries the local verifier first and the external provider
// second. A local token never reaches the provider.
func (s *identityService) classifyToken(ctx context.Context, token string) tokenClassification {
	if claims, ok := s.tokens.Verify(token); ok {
		return tokenClassification{verdict: verdictLocal, claims: claims}
	}

	external, err := s.identityProvider.VerifyToken(ctx, token)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "*identityService.classifyToken").
			Msg("token rejected by external identity provider")
		return tokenClassification{verdict: verdictInvalid}
	}

	return tokenClassification{verdict: verdictExternal, external: external}
}

// ResolveIdentity returns the caller behind token.
//
// Local tokens are trusted as they are, without touching the store. External
// tokens are enriched from the users table and link a legacy row on first
// sight. When no row matches, or the store cannot be queried, a provisional
// identity without an id is returned.
func (s *identityService) ResolveIdentity(ctx context.Context, token string) (models.Identity, error) {
	classification := s.classifyToken(ctx, token)

	switch classification.verdict {
	case verdictLocal:
		id := classification.claims.ID
		return models.Identity{
			Source:      models.IdentitySourceLocal,
			ID:          &id,
			Role:        classification.claims.Role,
			AccessToken: token,
		}, nil
	case verdictExternal:
		return s.enrichExternal(ctx, classification.external, token), nil
	default:
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}
}

func (s *identityService) enrichExternal(ctx context.Context, external models.ExternalIdentity, token string) models.Identity {
	log := logger.FromContext(ctx)

	provisional := models.Identity{
		Source:      models.IdentitySourceExternal,
		Role:        external.Role,
		Email:       external.Email,
		ExternalID:  external.ExternalID,
		AccessToken: token,

		EmailConfirmed: external.EmailConfirmed,
	}

	user, err := s.userRepository.FindUserByExternalIDOrEmail(ctx, external.ExternalID, external.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return provisional
	}
	if err != nil {
		log.Err(err).
			Str("func", "*identityService.enrichExternal").
			Str("external_id", external.ExternalID).
			Msg("user lookup failed, falling back to provisional identity")
		return provisional
	}

	if user.IsLegacy() {
		linked, err := s.userRepository.LinkExternalID(ctx, user.ID, external.ExternalID)
		if err != nil {
			log.Warn().Err(err).
				Str("func", "*identityService.enrichExternal").
				Int64("user_id", user.ID).
				Msg("failed to link external identity")
		} else {
			user = linked
		}
	}

	id := user.ID
	return models.Identity{
		Source:      models.IdentitySourceExternal,
		ID:          &id,
		Role:        user.Role,
		Email:       user.Email,
		ExternalID:  external.ExternalID,
		Status:      user.Status,
		AccessToken: token,

		EmailConfirmed: external.EmailConfirmed,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/population-dashboard/internal/config"
	"github.com/MKhiriev/population-dashboard/internal/utils"
	"github.com/MKhiriev/population-dashboard/models"
)

// tokenIssuer signs and verifies the bearer tokens of this service.
type tokenIssuer struct {
	signKey  string
	issuer   string
	duration time.Duration
}

func newTokenIssuer(cfg config.App) *tokenIssuer {
	return &tokenIssuer{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
	}
}

// Issue returns a signed token carrying the id and role of user.
func (t *tokenIssuer) Issue(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(t.issuer, user.ID, user.Role, t.duration, t.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify reports whether tokenString was issued by this service and is
// still valid. Any failure means "not a local token".
func (t *tokenIssuer) Verify(tokenString string) (models.Claims, bool) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, t.signKey, t.issuer)
	if err != nil {
		return models.Claims{}, false
	}

	return token.Claims, true
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound HTTP clients for the third-party services
// the population dashboard depends on.
//
// [IdentityProvider] verifies access tokens issued by the external identity
// provider (Supabase Auth) and revokes sessions there. [StatisticsProvider]
// fetches the population series shown on the dashboard (World Bank API).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/population-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// IdentityProvider verifies tokens issued by the external identity provider.
type IdentityProvider interface {
	// VerifyToken asks the provider who owns token. Any failure (provider
	// not configured, transport error, timeout, non-2xx answer) is returned
	// as an error and must be treated as "token not accepted".
	VerifyToken(ctx context.Context, token string) (models.ExternalIdentity, error)

	// SignOut revokes the provider session bound to token.
	SignOut(ctx context.Context, token string) error
}

// StatisticsProvider fetches public population statistics.
type StatisticsProvider interface {
	// PopulationSeries returns the yearly total population for the
	// configured country, sorted by year ascending. Years without a value
	// are omitted.
	PopulationSeries(ctx context.Context) ([]models.PopulationPoint, error)

	// IndicatorSeries returns the non-empty values of query.Indicator for the
	// query.Limit most recent years, newest first.
	IndicatorSeries(ctx context.Context, query models.IndicatorQuery) ([]models.IndicatorValue, error)
}

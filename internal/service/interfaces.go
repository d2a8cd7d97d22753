// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/population-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService implements the account lifecycle: local sign-up and sign-in,
// synchronisation of external identities and deactivation.
type AuthService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error)
	SignIn(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error)

	// Sync makes sure an external identity has a local row and reports the
	// migration state of that row.
	Sync(ctx context.Context, identity models.Identity, req models.SyncRequest) (models.SyncResponse, error)

	DeactivateAccount(ctx context.Context, identity models.Identity) (models.DeactivationResponse, error)

	// DeactivateLegacy deactivates the caller only if its row has not been
	// linked to the external identity provider yet.
	DeactivateLegacy(ctx context.Context, identity models.Identity) (models.DeactivationResponse, error)
}

// IdentityService turns a bearer token of unknown origin into the caller
// identity.
type IdentityService interface {
	ResolveIdentity(ctx context.Context, token string) (models.Identity, error)
}

// UserService implements admin user management and profile self-service.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, actor models.Identity, id int64) error
	PromoteToAdmin(ctx context.Context, id int64) (models.PromotedUser, error)

	GetProfile(ctx context.Context, identity models.Identity) (models.User, error)
	UpdateProfile(ctx context.Context, identity models.Identity, update models.UserUpdate) (models.User, error)
	DeleteProfile(ctx context.Context, identity models.Identity) error
	ChangePassword(ctx context.Context, identity models.Identity, req models.ChangePasswordRequest) error
}

// StatisticsService serves the dashboard figures.
type StatisticsService interface {
	DashboardStats(ctx context.Context) (models.DashboardStats, error)
	PopulationTrend(ctx context.Context) (models.PopulationTrend, error)
	RegionalDistribution(ctx context.Context) models.RegionalDistribution

	// AgeDistribution falls back to static shares instead of failing.
	AgeDistribution(ctx context.Context) models.AgeDistribution
	Demographics(ctx context.Context) (models.Demographics, error)
	HealthMetrics(ctx context.Context) (models.Chart, error)
	GrowthAnalysis(ctx context.Context) (models.Chart, error)
	ComparativeStudies(ctx context.Context) (models.Chart, error)
	Analytics(ctx context.Context) (models.Analytics, error)
	UrbanRural(ctx context.Context) (models.Chart, error)

	// Refresh fetches the upstream series and replaces the cached snapshot.
	Refresh(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

// UserServiceWrapper defines middleware composition for UserService.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

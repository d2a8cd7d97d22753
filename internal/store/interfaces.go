package store

import (
	"context"
	"time"

	"github.com/MKhiriev/population-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store of the service. Every method is
// atomic per row; multi-step flows are not isolated across calls.
type UserRepository interface {
	// CreateUser inserts a new row and returns it with server-assigned
	// fields. An admin role is downgraded to user when the table is no
	// longer empty at insert time.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// HasAnyUser reports whether at least one row exists.
	HasAnyUser(ctx context.Context) (bool, error)

	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByExternalIDOrEmail returns the active row linked to
	// externalID, or failing that the active row with the given email.
	FindUserByExternalIDOrEmail(ctx context.Context, externalID, email string) (models.User, error)

	ListUsers(ctx context.Context) ([]models.User, error)

	// LinkExternalID sets external_id only if it is still NULL.
	LinkExternalID(ctx context.Context, id int64, externalID string) (models.User, error)

	// SetMigrationDeadlineIfNull stores deadline unless a deadline is
	// already present and returns the persisted value.
	SetMigrationDeadlineIfNull(ctx context.Context, id int64, deadline time.Time) (time.Time, error)

	UpdateLastLogin(ctx context.Context, id int64, at time.Time) (models.User, error)

	// DeactivateUser applies the terminal deactivation transform.
	DeactivateUser(ctx context.Context, id int64, freedEmail string) (models.User, error)

	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)

	// PromoteToAdmin switches role from user to admin. Rows that are
	// already admins are reported as missing.
	PromoteToAdmin(ctx context.Context, id int64) (models.PromotedUser, error)

	DeleteUser(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

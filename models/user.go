// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Role is the authorization level of a user account.
type Role string

const (
	// RoleAdmin grants access to user management endpoints.
	RoleAdmin Role = "admin"
	// RoleUser is the default role of every account except the first one.
	RoleUser Role = "user"
)

// IsAdmin reports whether r names the admin role. The comparison ignores
// case and surrounding whitespace because roles coming from the external
// identity provider metadata are free-form strings.
func (r Role) IsAdmin() bool {
	return strings.EqualFold(strings.TrimSpace(string(r)), string(RoleAdmin))
}

// UserStatus is the soft-delete state of a user account.
type UserStatus string

const (
	// StatusActive is the default status of every account.
	StatusActive UserStatus = "Active"
	// StatusInactive marks a deactivated account. Inactive accounts can never
	// authenticate again.
	StatusInactive UserStatus = "Inactive"
)

// User represents a row of the users table.
//
// A row whose ExternalID is nil is a legacy account: it was created by the
// local password sign-up and has not yet been claimed by the external
// identity provider.
type User struct {
	// ID is the stable primary key. It is never reused.
	ID int64 `json:"id"`

	// Username is the display name of the user.
	Username string `json:"username"`

	// Email is unique across the table. It is rewritten on deactivation so
	// the original address can be used by a new sign-up.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password. Accounts
	// created through the external provider carry a digest of random data.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// Role is either RoleAdmin or RoleUser.
	Role Role `json:"role"`

	// Status is StatusActive unless the account has been deactivated.
	Status UserStatus `json:"status"`

	// ExternalID is the identifier of the linked external identity, nil for
	// legacy accounts.
	ExternalID *string `json:"external_id,omitempty"`

	// MigrationDeadline is set the first time a legacy account signs in with
	// a password. Once set it is never overwritten.
	MigrationDeadline *time.Time `json:"migration_deadline,omitempty"`

	// MigrationCompleted is true when the account no longer needs the forced
	// migration prompt.
	MigrationCompleted bool `json:"migration_completed"`

	// LastLogin is the time of the last successful password sign-in.
	LastLogin *time.Time `json:"last_login,omitempty"`

	// CreatedAt is the creation time of the row.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsLegacy reports whether the account has not been linked to the external
// identity provider yet.
func (u User) IsLegacy() bool {
	return u.ExternalID == nil || *u.ExternalID == ""
}

// IsInactive reports whether the account has been deactivated.
func (u User) IsInactive() bool {
	return u.Status == StatusInactive
}

// UserUpdate carries a partial update of a user row. Only non-nil fields are
// written.
type UserUpdate struct {
	Username *string     `json:"username,omitempty"`
	Email    *string     `json:"email,omitempty"`
	Status   *UserStatus `json:"status,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.Status == nil
}

// UserStatusView is the short user representation returned by the
// deactivation endpoints.
type UserStatusView struct {
	ID     int64      `json:"id"`
	Status UserStatus `json:"status"`
}

// PromotedUser is the representation returned by the make-admin endpoint.
type PromotedUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

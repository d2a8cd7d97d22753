// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// IdentitySource tells which verifier accepted a bearer token.
type IdentitySource int

const (
	// IdentitySourceUnknown is the zero value; no verifier accepted the token.
	IdentitySourceUnknown IdentitySource = iota
	// IdentitySourceLocal marks a token signed by this service.
	IdentitySourceLocal
	// IdentitySourceExternal marks a token issued by the external identity
	// provider.
	IdentitySourceExternal
)

// String returns a short label used in logs.
func (s IdentitySource) String() string {
	switch s {
	case IdentitySourceLocal:
		return "local"
	case IdentitySourceExternal:
		return "external"
	default:
		return "unknown"
	}
}

// ExternalIdentity is the identity returned by the external identity provider
// for a valid access token.
type ExternalIdentity struct {
	// ExternalID is the provider-side user identifier.
	ExternalID string

	// Email is the address registered at the provider.
	Email string

	// EmailConfirmed reports whether the provider has confirmed Email.
	EmailConfirmed bool

	// Role is taken from the provider metadata. Usually empty.
	Role Role
}

// Identity is the authenticated caller of a protected request.
//
// For locally issued tokens only ID and Role are known. For external tokens
// the identity is enriched from the users table; when no row matches, ID is
// nil and the identity is provisional.
type Identity struct {
	Source     IdentitySource
	ID         *int64
	Role       Role
	Email      string
	ExternalID string
	Status     UserStatus

	// EmailConfirmed is reported by the external identity provider. It is
	// always false for local tokens.
	EmailConfirmed bool

	// AccessToken is the raw bearer token, kept for provider sign-out.
	AccessToken string
}

// UserID returns the resolved local user id.
func (i Identity) UserID() (int64, bool) {
	if i.ID == nil {
		return 0, false
	}
	return *i.ID, true
}

// IsProvisional reports whether the identity has no local row yet.
func (i Identity) IsProvisional() bool {
	return i.ID == nil
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role.IsAdmin()
}

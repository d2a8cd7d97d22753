package models

import "time"

// MigrationNotice tells the client that a legacy account has to be
// recreated through the external identity provider before Deadline.
type MigrationNotice struct {
	Required         bool      `json:"required"`
	Deadline         time.Time `json:"deadline"`
	SecondsRemaining int64     `json:"secondsRemaining"`
	Message          string    `json:"message"`
}

// AuthResponse is returned by sign-up and sign-in.
type AuthResponse struct {
	Token     string           `json:"token"`
	User      User             `json:"user"`
	Migration *MigrationNotice `json:"migration,omitempty"`
}

// SyncResponse is returned by the external identity sync endpoint.
type SyncResponse struct {
	User      User             `json:"user"`
	Migration *MigrationNotice `json:"migration,omitempty"`

	// Created reports whether the row was created by this call. It selects
	// the HTTP status and is not serialized.
	Created bool `json:"-"`
}

// DeactivationResponse is returned by the deactivation endpoints.
type DeactivationResponse struct {
	Message string         `json:"message"`
	User    UserStatusView `json:"user"`
}

// MessageResponse is the generic {"message": "..."} body used for
// confirmations and errors.
type MessageResponse struct {
	Message string `json:"message"`
}

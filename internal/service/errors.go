package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrAccountInactive         = errors.New("account is inactive")
	ErrMigrationExpired        = errors.New("legacy account migration deadline has passed")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("not authorized, token failed")

	ErrNoLocalUser              = errors.New("no local user is bound to the identity")
	ErrExternalIdentityRequired = errors.New("external identity is required")
	ErrEmailNotConfirmed        = errors.New("email is not confirmed")
	ErrNotLegacyAccount         = errors.New("account is already linked to the external identity provider")

	ErrCannotDeleteSelf      = errors.New("admin cannot delete own account")
	ErrPrimaryAdminProtected = errors.New("primary admin account cannot be deleted")
	ErrAlreadyAdminOrMissing = errors.New("user not found or is already an admin")
	ErrUserIsInactive        = errors.New("deactivated account cannot be modified")

	ErrStatisticsUnavailable = errors.New("population statistics are unavailable")
	ErrNotEnoughStatistics   = errors.New("not enough population data to generate trends")
)

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/population-dashboard/internal/logger"
	"github.com/MKhiriev/population-dashboard/internal/service"
	"github.com/MKhiriev/population-dashboard/internal/store"
	"github.com/MKhiriev/population-dashboard/internal/utils"
	"github.com/MKhiriev/population-dashboard/internal/validators"
)

// errorResponse is the status and message written for a sentinel error.
type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order and the first match wins, so specific
// errors come before the sentinels that wrap them.
var errorResponses = []errorResponse{
	// request decoding
	{ErrInvalidJSON, http.StatusBadRequest, "Invalid JSON was passed."},
	{ErrInvalidUserID, http.StatusBadRequest, "Invalid user id."},

	// validation
	{validators.ErrMissingCredentials, http.StatusBadRequest, "Please provide email and password."},
	{validators.ErrMissingRequiredFields, http.StatusBadRequest, "Please provide all required fields."},
	{validators.ErrInvalidName, http.StatusBadRequest, "Please enter your full name (at least two words, no numbers)."},
	{validators.ErrInvalidEmail, http.StatusBadRequest, "Please enter a valid email address."},
	{validators.ErrWeakPassword, http.StatusBadRequest, "Password must be at least 8 characters, include uppercase, lowercase, number, and special character."},
	{validators.ErrPasswordTooLong, http.StatusBadRequest, "Password must be at most 72 bytes long."},
	{validators.ErrInvalidStatus, http.StatusBadRequest, "Status must be Active or Inactive."},
	{validators.ErrNoFieldsToUpdate, http.StatusBadRequest, "Please provide at least one field to update."},
	{store.ErrNothingToUpdate, http.StatusBadRequest, "Please provide at least one field to update."},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, "Invalid data provided."},

	// authentication
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials."},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, msgTokenFailed},
	{service.ErrAccountInactive, http.StatusForbidden, "This account is inactive."},
	{service.ErrMigrationExpired, http.StatusForbidden, "This account has been deactivated. Please create a new account to continue."},

	// external identity sync
	{service.ErrExternalIdentityRequired, http.StatusBadRequest, "A verified external sign-in is required."},
	{service.ErrEmailNotConfirmed, http.StatusBadRequest, "Please confirm your email address before continuing."},

	// admin and self-service rules
	{service.ErrCannotDeleteSelf, http.StatusBadRequest, "You cannot delete your own account."},
	{service.ErrPrimaryAdminProtected, http.StatusForbidden, "The primary admin account cannot be deleted."},
	{service.ErrAlreadyAdminOrMissing, http.StatusNotFound, "User not found or is already an admin."},
	{service.ErrUserIsInactive, http.StatusConflict, "Deactivated accounts cannot be edited or reactivated."},
	{service.ErrNotLegacyAccount, http.StatusNotFound, "No legacy account found for this user."},
	{service.ErrNoLocalUser, http.StatusNotFound, "User not found."},

	// store
	{store.ErrUserAlreadyExists, http.StatusConflict, "Username or email already exists."},
	{store.ErrNoUserWasFound, http.StatusNotFound, "User not found."},
}

// lookupError returns the status and message of err. Unknown errors map to
// 500 with fallback as the message.
func lookupError(err error, fallback string) (int, string) {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, fallback
}

// writeError maps err and writes it as a {"message": "..."} body. Server
// errors are logged with the caller's user id when there is one.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status, message := lookupError(err, fallback)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		event := log.Err(err).Int("status", status)
		if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
			event = event.Int64("user_id", userID)
		}
		event.Msg(fallback)
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, message, status)
}

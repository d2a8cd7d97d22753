package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingRequiredFields = errors.New("required fields are missing")
	ErrMissingCredentials    = errors.New("email and password are required")
	ErrInvalidName           = errors.New("invalid full name")
	ErrInvalidEmail          = errors.New("invalid email address")
	ErrWeakPassword          = errors.New("password does not meet strength requirements")
	ErrPasswordTooLong       = errors.New("password is longer than 72 bytes")
	ErrInvalidStatus         = errors.New("invalid user status")
	ErrNoFieldsToUpdate      = errors.New("at least one field must be provided for update")
)

package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/population-dashboard/models"
)

var (
	nameRegexp  = regexp.MustCompile(`^[A-Za-z][A-Za-z\s.'-]+$`)
	emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[a-zA-Z]{2,}$`)
)

type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUpRequest(ctx, value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUpRequest(ctx, *value, fields...)

	case models.SignInRequest:
		return v.validateSignInRequest(ctx, value, fields...)
	case *models.SignInRequest:
		return v.validateSignInRequest(ctx, *value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePasswordRequest(ctx, value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePasswordRequest(ctx, *value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(ctx, value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSignUpRequest applies the rules in the order the client shows
// them: name, email, password.
func (v *UserValidator) validateSignUpRequest(ctx context.Context, req models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
				return ErrMissingRequiredFields
			}
		case FieldUsername:
			if !IsValidFullName(req.Username) {
				return ErrInvalidName
			}
		case FieldEmail:
			if !IsValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(req.Password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
			if !IsStrongPassword(req.Password) {
				return ErrWeakPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateSignInRequest(ctx context.Context, req models.SignInRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if strings.TrimSpace(req.Email) == "" || req.Password == "" {
				return ErrMissingCredentials
			}
		case FieldEmail:
			if !IsValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateChangePasswordRequest(ctx context.Context, req models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if req.CurrentPassword == "" || req.NewPassword == "" {
				return ErrMissingRequiredFields
			}
		case FieldPassword:
			if len(req.NewPassword) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
			if !IsStrongPassword(req.NewPassword) {
				return ErrWeakPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUserUpdate checks only the fields present in the update.
func (v *UserValidator) validateUserUpdate(ctx context.Context, update models.UserUpdate, fields ...string) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if update.Username != nil && !IsValidFullName(*update.Username) {
				return ErrInvalidName
			}
		case FieldEmail:
			if update.Email != nil && !IsValidEmail(*update.Email) {
				return ErrInvalidEmail
			}
		case FieldStatus:
			if update.Status != nil && *update.Status != models.StatusActive && *update.Status != models.StatusInactive {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsValidFullName reports whether name has at least two words made of
// letters, spaces, dots, apostrophes and hyphens.
func IsValidFullName(name string) bool {
	name = strings.TrimSpace(name)
	if !nameRegexp.MatchString(name) {
		return false
	}
	return len(strings.Fields(name)) >= 2
}

func IsValidEmail(email string) bool {
	return emailRegexp.MatchString(strings.TrimSpace(email))
}

// IsStrongPassword reports whether password has at least eight characters
// including an upper case letter, a lower case letter, a digit and a symbol.
// Passwords over 72 bytes are never strong since bcrypt refuses them.
func IsStrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < minPasswordLength || len(password) > maxPasswordBytes {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSymbol
}

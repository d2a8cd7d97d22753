package validators

// Field name constants used to restrict validation to a subset of the rules
// of a request.
const (
	// FieldRequired checks that every mandatory field of the request is set.
	FieldRequired = "required"

	// FieldUsername checks the full name rule.
	FieldUsername = "username"

	// FieldEmail checks the email shape.
	FieldEmail = "email"

	// FieldPassword checks the password strength rule. For a change-password
	// request it targets the new password.
	FieldPassword = "password"

	// FieldStatus checks that a status value is known.
	FieldStatus = "status"
)

// passwordSymbols are the characters accepted as the "special character" of a
// strong password.
const passwordSymbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

const (
	minPasswordLength = 8

	// maxPasswordBytes is the longest input bcrypt accepts.
	maxPasswordBytes = 72
)

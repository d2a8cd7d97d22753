package models

// SignUpRequest is the body of POST /api/auth/signup.
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInRequest is the body of POST /api/auth/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SyncRequest is the optional body of POST /api/auth/supabase-sync.
type SyncRequest struct {
	// Username overrides the name derived from the email local part when a
	// new row has to be created.
	Username string `json:"username,omitempty"`
}

// ChangePasswordRequest is the body of POST /api/users/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

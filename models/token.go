package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a locally issued bearer token.
//
// The id and role claims sit next to the registered claims (iss, iat, exp)
// so that tokens issued before the service was rewritten keep their shape.
type Claims struct {
	// ID is the users.id of the token owner.
	ID int64 `json:"id"`

	// Role is the role of the owner at issue time.
	Role Role `json:"role"`

	jwt.RegisteredClaims
}

// Token wraps a signed local token together with its parsed claims.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims holds the decoded payload.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	ErrIdentityProviderNotConfigured = errors.New("identity provider is not configured")
	ErrEmptyToken                    = errors.New("empty access token")
	ErrMalformedResponse             = errors.New("malformed response")
	ErrInvalidBaseURL                = errors.New("invalid base url")
)

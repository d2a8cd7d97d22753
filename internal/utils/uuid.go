package utils

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewTraceID returns a time-ordered UUIDv7 string used to correlate the log
// lines of one request. It falls back to a random UUIDv4 if the clock based
// generator fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewShortID returns eight random hex characters. It is used to make a
// derived name unique, not as an identifier on its own.
func NewShortID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:4])
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/MKhiriev/population-dashboard/internal/logger"
	"github.com/MKhiriev/population-dashboard/internal/store"
	"github.com/MKhiriev/population-dashboard/models"
)

// MigrationState is the position of a row in the forced migration flow.
type MigrationState int

const (
	// MigrationNotApplicable covers linked, already migrated and inactive
	// rows.
	MigrationNotApplicable MigrationState = iota
	// MigrationNoDeadline is a legacy row that has never signed in with a
	// password since the flow was introduced.
	MigrationNoDeadline
	// MigrationCountingDown is a legacy row whose deadline has not passed.
	MigrationCountingDown
	// MigrationExpired is a legacy row whose deadline has passed. The next
	// trigger deactivates it.
	MigrationExpired
)

func (s MigrationState) String() string {
	switch s {
	case MigrationNoDeadline:
		return "no-deadline"
	case MigrationCountingDown:
		return "counting-down"
	case MigrationExpired:
		return "expired"
	default:
		return "not-applicable"
	}
}

const (
	migrationMessageFormat = "Action required: Please recreate your account to verify your email. " +
		"This account will be deactivated in %d seconds."

	freedEmailFallbackLocal  = "user"
	freedEmailFallbackDomain = "deactivated.invalid"
)

// MigrationPolicy decides and persists the forced migration of legacy
// accounts. The same terminal transform is used by password sign-in and
// both deactivation endpoints.
type MigrationPolicy struct {
	userRepository store.UserRepository
	window         time.Duration
	now            func() time.Time

	logger *logger.Logger
}

// NewMigrationPolicy returns a policy that gives legacy accounts window to
// migrate after their first password sign-in.
func NewMigrationPolicy(userRepository store.UserRepository, window time.Duration, logger *logger.Logger) *MigrationPolicy {
	return &MigrationPolicy{
		userRepository: userRepository,
		window:         window,
		now:            time.Now,
		logger:         logger,
	}
}

// Now returns the current time of the policy clock.
func (p *MigrationPolicy) Now() time.Time {
	return p.now()
}

// State classifies user at the instant now. The deadline itself is still
// valid: only a strictly later instant is expired.
func (p *MigrationPolicy) State(user models.User, now time.Time) MigrationState {
	if !user.IsLegacy() || user.MigrationCompleted || user.IsInactive() {
		return MigrationNotApplicable
	}

	if user.MigrationDeadline == nil {
		return MigrationNoDeadline
	}

	if now.After(*user.MigrationDeadline) {
		return MigrationExpired
	}

	return MigrationCountingDown
}

// Notice makes sure user has a deadline and describes it. Persisting the
// deadline is best-effort: on failure the computed deadline is reported
// anyway.
func (p *MigrationPolicy) Notice(ctx context.Context, user models.User, now time.Time) models.MigrationNotice {
	var deadline time.Time
	if user.MigrationDeadline != nil {
		deadline = *user.MigrationDeadline
	} else {
		deadline = p.ensureDeadline(ctx, user.ID, now.Add(p.window))
	}

	remaining := int64(math.Ceil(deadline.Sub(now).Seconds()))
	if remaining < 0 {
		remaining = 0
	}

	return models.MigrationNotice{
		Required:         true,
		Deadline:         deadline,
		SecondsRemaining: remaining,
		Message:          fmt.Sprintf(migrationMessageFormat, remaining),
	}
}

func (p *MigrationPolicy) ensureDeadline(ctx context.Context, id int64, candidate time.Time) time.Time {
	persisted, err := p.userRepository.SetMigrationDeadlineIfNull(ctx, id, candidate)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*MigrationPolicy.ensureDeadline").
			Int64("user_id", id).
			Msg("failed to persist migration deadline")
		return candidate
	}

	return persisted
}

// Deactivate applies the terminal transform to user: the row becomes
// inactive, its email is freed for a new sign-up and its external link is
// dropped.
func (p *MigrationPolicy) Deactivate(ctx context.Context, user models.User) (models.User, error) {
	freed := FreeEmail(user.Email, user.ID, p.now())

	deactivated, err := p.userRepository.DeactivateUser(ctx, user.ID, freed)
	if err != nil {
		return models.User{}, fmt.Errorf("error deactivating user: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*MigrationPolicy.Deactivate").
		Int64("user_id", user.ID).
		Msg("account deactivated")

	return deactivated, nil
}

// FreeEmail rewrites original so that it can never collide with the
// address it was derived from:
//
//	jane.doe@x.com -> janedoe+deactivated-7-1767225600000@x.com
func FreeEmail(original string, id int64, now time.Time) string {
	local, domain := original, ""
	if at := strings.LastIndex(original, "@"); at >= 0 {
		local, domain = original[:at], original[at+1:]
	}

	local = strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return -1
	}, local)
	if local == "" {
		local = freedEmailFallbackLocal
	}

	domain = strings.TrimSpace(domain)
	if domain == "" {
		domain = freedEmailFallbackDomain
	}

	return fmt.Sprintf("%s+deactivated-%d-%d@%s", local, id, now.UnixMilli(), domain)
}

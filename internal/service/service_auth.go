package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/population-dashboard/internal/adapter"
	"github.com/MKhiriev/population-dashboard/internal/logger"
	"github.com/MKhiriev/population-dashboard/internal/store"
	"github.com/MKhiriev/population-dashboard/internal/utils"
	"github.com/MKhiriev/population-dashboard/models"
)

const deactivationMessage = "Account deactivated."

// authService is the concrete implementation of AuthService.
type authService struct {
	// userRepository is the credential store.
	userRepository store.UserRepository

	// identityProvider is used to revoke external sessions on deactivation.
	identityProvider adapter.IdentityProvider

	tokens *tokenIssuer
	hasher *utils.PasswordHasher
	policy *MigrationPolicy

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. Input validation is not part of
// it; wrap the result with an [AuthServiceWrapper] from
// [NewAuthValidationService].
func NewAuthService(
	userRepository store.UserRepository,
	identityProvider adapter.IdentityProvider,
	tokens *tokenIssuer,
	hasher *utils.PasswordHasher,
	policy *MigrationPolicy,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:   userRepository,
		identityProvider: identityProvider,
		tokens:           tokens,
		hasher:           hasher,
		policy:           policy,
		logger:           logger,
	}
}

// SignUp creates a local account. The very first account becomes an admin.
//
// Returns store.ErrUserAlreadyExists (wrapped) when the username or email is
// taken.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	role, err := a.initialRole(ctx)
	if err != nil {
		return models.AuthResponse{}, err
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.SignUp").Msg("error hashing password")
		return models.AuthResponse{}, fmt.Errorf("error hashing password: %w", err)
	}

	now := a.policy.Now()
	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: passwordHash,
		Role:         role,
		Status:       models.StatusActive,
		LastLogin:    &now,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.SignUp").Str("email", req.Email).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.tokens.Issue(user)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{Token: token.SignedString, User: user}, nil
}

// SignIn authenticates with email and password.
//
// The migration deadline of a legacy account is checked before the
// password: an expired account is deactivated and refused even if the
// password is wrong.
func (a *authService) SignIn(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, strings.TrimSpace(req.Email))
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.AuthResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.SignIn").Msg("user search by email failed")
		return models.AuthResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if user.IsInactive() {
		return models.AuthResponse{}, ErrAccountInactive
	}

	now := a.policy.Now()
	state := a.policy.State(user, now)
	if state == MigrationExpired {
		if _, err = a.policy.Deactivate(ctx, user); err != nil {
			log.Err(err).Str("func", "*authService.SignIn").Int64("user_id", user.ID).Msg("failed to deactivate expired account")
		}
		return models.AuthResponse{}, ErrMigrationExpired
	}

	if !a.hasher.Compare(user.PasswordHash, req.Password) {
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	updated, err := a.userRepository.UpdateLastLogin(ctx, user.ID, now)
	if err != nil {
		log.Warn().Err(err).Str("func", "*authService.SignIn").Int64("user_id", user.ID).Msg("failed to update last login")
		updated = user
		updated.LastLogin = &now
	}

	resp := models.AuthResponse{User: updated}
	if state == MigrationNoDeadline || state == MigrationCountingDown {
		notice := a.policy.Notice(ctx, updated, now)
		resp.User.MigrationDeadline = &notice.Deadline
		resp.Migration = &notice
	}

	token, err := a.tokens.Issue(updated)
	if err != nil {
		return models.AuthResponse{}, err
	}
	resp.Token = token.SignedString

	return resp, nil
}

// Sync returns the row of an external identity, creating it when the
// identity has never been seen. Rows that still have to go through the
// migration flow get a notice. Sync never deactivates.
func (a *authService) Sync(ctx context.Context, identity models.Identity, req models.SyncRequest) (models.SyncResponse, error) {
	if identity.Source != models.IdentitySourceExternal || identity.ExternalID == "" {
		return models.SyncResponse{}, ErrExternalIdentityRequired
	}
	if !identity.EmailConfirmed {
		return models.SyncResponse{}, ErrEmailNotConfirmed
	}

	if id, ok := identity.UserID(); ok {
		user, err := a.userRepository.FindUserByID(ctx, id)
		if err == nil {
			return a.syncResponse(ctx, user, false), nil
		}
		if !errors.Is(err, store.ErrNoUserWasFound) {
			return models.SyncResponse{}, fmt.Errorf("user search by id failed: %w", err)
		}
	}

	return a.createExternalUser(ctx, identity, req)
}

func (a *authService) createExternalUser(ctx context.Context, identity models.Identity, req models.SyncRequest) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(identity.Email)
	if email == "" {
		return models.SyncResponse{}, fmt.Errorf("%w: email is missing", ErrInvalidDataProvided)
	}

	role, err := a.initialRole(ctx)
	if err != nil {
		return models.SyncResponse{}, err
	}

	passwordHash, err := a.hasher.UnusableHash()
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("error generating password hash: %w", err)
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = usernameFromEmail(email)
	}

	externalID := identity.ExternalID
	newUser := models.User{
		Username:           username,
		Email:              email,
		PasswordHash:       passwordHash,
		Role:               role,
		Status:             models.StatusActive,
		ExternalID:         &externalID,
		MigrationCompleted: true,
	}

	user, err := a.userRepository.CreateUser(ctx, newUser)
	if errors.Is(err, store.ErrUserAlreadyExists) {
		// a concurrent request may have created the row first
		existing, lookupErr := a.userRepository.FindUserByExternalIDOrEmail(ctx, externalID, email)
		if lookupErr == nil {
			return a.syncResponse(ctx, existing, false), nil
		}
		if !errors.Is(lookupErr, store.ErrNoUserWasFound) {
			log.Err(lookupErr).Str("func", "*authService.createExternalUser").Msg("lookup after conflict failed")
			return models.SyncResponse{}, fmt.Errorf("user creation ended with error: %w", err)
		}

		// nobody owns the identity, so the conflict is on the username
		newUser.Username = username + "-" + utils.NewShortID()
		log.Debug().Str("func", "*authService.createExternalUser").
			Str("username", newUser.Username).
			Msg("username is taken, retrying with a suffix")
		user, err = a.userRepository.CreateUser(ctx, newUser)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.createExternalUser").Str("external_id", externalID).Msg("user creation ended with error")
		return models.SyncResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.syncResponse(ctx, user, true), nil
}

func (a *authService) syncResponse(ctx context.Context, user models.User, created bool) models.SyncResponse {
	resp := models.SyncResponse{User: user, Created: created}
	if !user.MigrationCompleted && !user.IsInactive() {
		notice := a.policy.Notice(ctx, user, a.policy.Now())
		resp.User.MigrationDeadline = &notice.Deadline
		resp.Migration = &notice
	}
	return resp
}

// DeactivateAccount applies the terminal deactivation transform to the
// caller's row immediately.
func (a *authService) DeactivateAccount(ctx context.Context, identity models.Identity) (models.DeactivationResponse, error) {
	user, err := a.findActiveCaller(ctx, identity)
	if err != nil {
		return models.DeactivationResponse{}, err
	}

	return a.deactivate(ctx, identity, user)
}

// DeactivateLegacy is DeactivateAccount restricted to rows that have not
// been linked to the external identity provider.
func (a *authService) DeactivateLegacy(ctx context.Context, identity models.Identity) (models.DeactivationResponse, error) {
	user, err := a.findActiveCaller(ctx, identity)
	if err != nil {
		return models.DeactivationResponse{}, err
	}

	if !user.IsLegacy() {
		return models.DeactivationResponse{}, ErrNotLegacyAccount
	}

	return a.deactivate(ctx, identity, user)
}

func (a *authService) findActiveCaller(ctx context.Context, identity models.Identity) (models.User, error) {
	id, ok := identity.UserID()
	if !ok {
		return models.User{}, ErrNoLocalUser
	}

	user, err := a.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if user.IsInactive() {
		return models.User{}, fmt.Errorf("%w: account is already inactive", store.ErrNoUserWasFound)
	}

	return user, nil
}

func (a *authService) deactivate(ctx context.Context, identity models.Identity, user models.User) (models.DeactivationResponse, error) {
	deactivated, err := a.policy.Deactivate(ctx, user)
	if err != nil {
		return models.DeactivationResponse{}, err
	}

	if identity.Source == models.IdentitySourceExternal {
		if err = a.identityProvider.SignOut(ctx, identity.AccessToken); err != nil {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "*authService.deactivate").
				Int64("user_id", user.ID).
				Msg("failed to sign out from external identity provider")
		}
	}

	return models.DeactivationResponse{
		Message: deactivationMessage,
		User:    models.UserStatusView{ID: deactivated.ID, Status: deactivated.Status},
	}, nil
}

// initialRole returns admin for the first account and user otherwise. The
// repository re-checks the decision under a lock when inserting.
func (a *authService) initialRole(ctx context.Context) (models.Role, error) {
	hasAny, err := a.userRepository.HasAnyUser(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.initialRole").Msg("error checking for existing users")
		return "", fmt.Errorf("error checking for existing users: %w", err)
	}

	if hasAny {
		return models.RoleUser, nil
	}
	return models.RoleAdmin, nil
}

// usernameFromEmail returns the local part of email.
func usernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.TrimSpace(local)
	if local == "" {
		return freedEmailFallbackLocal
	}
	return local
}

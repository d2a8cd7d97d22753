package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/population-dashboard/internal/logger"
	"github.com/MKhiriev/population-dashboard/internal/store"
	"github.com/MKhiriev/population-dashboard/internal/utils"
	"github.com/MKhiriev/population-dashboard/models"
)

// primaryAdminID is the id of the founding admin row. It can never be
// deleted.
const primaryAdminID int64 = 1

type userService struct {
	userRepository store.UserRepository
	hasher         *utils.PasswordHasher
	policy         *MigrationPolicy

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher *utils.PasswordHasher, policy *MigrationPolicy, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		policy:         policy,
		logger:         logger,
	}
}

func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

// UpdateUser applies an admin edit. Deactivated rows are read-only, and
// setting the status to Inactive goes through the same terminal transform as
// the deactivation endpoints.
func (u *userService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	if user.IsInactive() {
		return models.User{}, ErrUserIsInactive
	}

	deactivate := update.Status != nil && *update.Status == models.StatusInactive
	update.Status = nil
	update = trimUpdate(update)

	if !update.IsEmpty() {
		user, err = u.userRepository.UpdateUser(ctx, id, update)
		if err != nil {
			return models.User{}, fmt.Errorf("error updating user: %w", err)
		}
	}

	if deactivate {
		return u.policy.Deactivate(ctx, user)
	}

	return user, nil
}

// DeleteUser removes the row of another user. An admin cannot delete
// itself and nobody can delete the founding admin.
func (u *userService) DeleteUser(ctx context.Context, actor models.Identity, id int64) error {
	if actorID, ok := actor.UserID(); ok && actorID == id {
		return ErrCannotDeleteSelf
	}
	if id == primaryAdminID {
		return ErrPrimaryAdminProtected
	}

	if err := u.userRepository.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*userService.DeleteUser").
		Int64("user_id", id).
		Msg("user deleted")
	return nil
}

func (u *userService) PromoteToAdmin(ctx context.Context, id int64) (models.PromotedUser, error) {
	promoted, err := u.userRepository.PromoteToAdmin(ctx, id)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.PromotedUser{}, ErrAlreadyAdminOrMissing
	}
	if err != nil {
		return models.PromotedUser{}, fmt.Errorf("error promoting user: %w", err)
	}

	return promoted, nil
}

func (u *userService) GetProfile(ctx context.Context, identity models.Identity) (models.User, error) {
	return u.findActiveCaller(ctx, identity)
}

// UpdateProfile lets the caller edit its own username and email. The
// status field is never taken from the caller.
func (u *userService) UpdateProfile(ctx context.Context, identity models.Identity, update models.UserUpdate) (models.User, error) {
	caller, err := u.findActiveCaller(ctx, identity)
	if err != nil {
		return models.User{}, err
	}

	update.Status = nil
	update = trimUpdate(update)

	user, err := u.userRepository.UpdateUser(ctx, caller.ID, update)
	if err != nil {
		return models.User{}, fmt.Errorf("error updating profile: %w", err)
	}

	return user, nil
}

func (u *userService) DeleteProfile(ctx context.Context, identity models.Identity) error {
	if id, ok := identity.UserID(); ok && id == primaryAdminID {
		return ErrPrimaryAdminProtected
	}

	caller, err := u.findActiveCaller(ctx, identity)
	if err != nil {
		return err
	}

	if err = u.userRepository.DeleteUser(ctx, caller.ID); err != nil {
		return fmt.Errorf("error deleting profile: %w", err)
	}

	return nil
}

// ChangePassword re-verifies the current password before storing the new
// one.
func (u *userService) ChangePassword(ctx context.Context, identity models.Identity, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	user, err := u.findActiveCaller(ctx, identity)
	if err != nil {
		return err
	}
	id := user.ID

	if !u.hasher.Compare(user.PasswordHash, req.CurrentPassword) {
		return ErrInvalidCredentials
	}

	passwordHash, err := u.hasher.Hash(req.NewPassword)
	if err != nil {
		log.Err(err).Str("func", "*userService.ChangePassword").Msg("error hashing password")
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err = u.userRepository.UpdatePassword(ctx, id, passwordHash); err != nil {
		log.Err(err).Str("func", "*userService.ChangePassword").Int64("user_id", id).Msg("error updating password")
		return fmt.Errorf("error updating password: %w", err)
	}

	return nil
}

// findActiveCaller loads the row behind identity. A token issued before the
// row was deactivated stays valid until it expires, so the status is checked
// on every self-service call.
func (u *userService) findActiveCaller(ctx context.Context, identity models.Identity) (models.User, error) {
	id, ok := identity.UserID()
	if !ok {
		return models.User{}, ErrNoLocalUser
	}

	user, err := u.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if user.IsInactive() {
		return models.User{}, ErrAccountInactive
	}

	return user, nil
}

func trimUpdate(update models.UserUpdate) models.UserUpdate {
	if update.Username != nil {
		username := strings.TrimSpace(*update.Username)
		update.Username = &username
	}
	if update.Email != nil {
		email := strings.TrimSpace(*update.Email)
		update.Email = &email
	}
	return update
}

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/population-dashboard/internal/validators"
	"github.com/MKhiriev/population-dashboard/models"
)

// UserValidationService validates profile, admin edit and password change
// input before it reaches the wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateUser(ctx, id, update)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, actor models.Identity, id int64) error {
	return v.inner.DeleteUser(ctx, actor, id)
}

func (v *UserValidationService) PromoteToAdmin(ctx context.Context, id int64) (models.PromotedUser, error) {
	return v.inner.PromoteToAdmin(ctx, id)
}

func (v *UserValidationService) GetProfile(ctx context.Context, identity models.Identity) (models.User, error) {
	return v.inner.GetProfile(ctx, identity)
}

// UpdateProfile only accepts the username and email fields.
func (v *UserValidationService) UpdateProfile(ctx context.Context, identity models.Identity, update models.UserUpdate) (models.User, error) {
	update.Status = nil
	if err := v.validator.Validate(ctx, update, validators.FieldUsername, validators.FieldEmail); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateProfile(ctx, identity, update)
}

func (v *UserValidationService) DeleteProfile(ctx context.Context, identity models.Identity) error {
	return v.inner.DeleteProfile(ctx, identity)
}

func (v *UserValidationService) ChangePassword(ctx context.Context, identity models.Identity, req models.ChangePasswordRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ChangePassword(ctx, identity, req)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

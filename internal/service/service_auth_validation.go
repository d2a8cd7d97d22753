package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/population-dashboard/internal/validators"
	"github.com/MKhiriev/population-dashboard/models"
)

// AuthValidationService validates sign-up and sign-in input before it
// reaches the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SignUp(ctx, req)
}

func (v *AuthValidationService) SignIn(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SignIn(ctx, req)
}

func (v *AuthValidationService) Sync(ctx context.Context, identity models.Identity, req models.SyncRequest) (models.SyncResponse, error) {
	return v.inner.Sync(ctx, identity, req)
}

func (v *AuthValidationService) DeactivateAccount(ctx context.Context, identity models.Identity) (models.DeactivationResponse, error) {
	return v.inner.DeactivateAccount(ctx, identity)
}

func (v *AuthValidationService) DeactivateLegacy(ctx context.Context, identity models.Identity) (models.DeactivationResponse, error) {
	return v.inner.DeactivateLegacy(ctx, identity)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

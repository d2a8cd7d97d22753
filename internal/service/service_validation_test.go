package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/population-dashboard/internal/mock"
	"github.com/MKhiriev/population-dashboard/internal/validators"
	"github.com/MKhiriev/population-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthValidationService_SignUp(t *testing.T) {
	tests := []struct {
		name    string
		req     models.SignUpRequest
		wantErr error
	}{
		{name: "missing fields", req: models.SignUpRequest{Email: "jane@x.com"}, wantErr: validators.ErrMissingRequiredFields},
		{name: "single word name", req: models.SignUpRequest{Username: "Jane", Email: "bad", Password: "weak"}, wantErr: validators.ErrInvalidName},
		{name: "bad email after good name", req: models.SignUpRequest{Username: "Jane Doe", Email: "bad", Password: "weak"}, wantErr: validators.ErrInvalidEmail},
		{name: "weak password", req: models.SignUpRequest{Username: "Jane Doe", Email: "jane@x.com", Password: "abcd1234"}, wantErr: validators.ErrWeakPassword},
		{name: "password over 72 bytes", req: models.SignUpRequest{Username: "Jane Doe", Email: "jane@x.com", Password: testPassword + strings.Repeat("a", 65)}, wantErr: validators.ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := mock.NewMockAuthService(gomock.NewController(t))
			svc := NewAuthValidationService().Wrap(inner)

			_, err := svc.SignUp(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("valid request reaches the wrapped service", func(t *testing.T) {
		inner := mock.NewMockAuthService(gomock.NewController(t))
		req := models.SignUpRequest{Username: "Jane Doe", Email: "jane@x.com", Password: testPassword}
		inner.EXPECT().SignUp(gomock.Any(), req).Return(models.AuthResponse{Token: "t"}, nil)

		resp, err := NewAuthValidationService().Wrap(inner).SignUp(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "t", resp.Token)
	})
}

func TestAuthValidationService_SignIn(t *testing.T) {
	inner := mock.NewMockAuthService(gomock.NewController(t))
	svc := NewAuthValidationService().Wrap(inner)

	_, err := svc.SignIn(context.Background(), models.SignInRequest{Email: "jane@x.com"})
	assert.ErrorIs(t, err, validators.ErrMissingCredentials)

	req := models.SignInRequest{Email: "jane@x.com", Password: "anything"}
	inner.EXPECT().SignIn(gomock.Any(), req).Return(models.AuthResponse{}, ErrInvalidCredentials)

	_, err = svc.SignIn(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthValidationService_PassThrough(t *testing.T) {
	inner := mock.NewMockAuthService(gomock.NewController(t))
	svc := NewAuthValidationService().Wrap(inner)
	identity := externalIdentity(ptr(int64(3)))
	ctx := context.Background()

	inner.EXPECT().Sync(gomock.Any(), identity, models.SyncRequest{}).Return(models.SyncResponse{Created: true}, nil)
	inner.EXPECT().DeactivateAccount(gomock.Any(), identity).Return(models.DeactivationResponse{Message: "a"}, nil)
	inner.EXPECT().DeactivateLegacy(gomock.Any(), identity).Return(models.DeactivationResponse{Message: "b"}, nil)

	sync, err := svc.Sync(ctx, identity, models.SyncRequest{})
	require.NoError(t, err)
	assert.True(t, sync.Created)

	resp, err := svc.DeactivateAccount(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, "a", resp.Message)

	resp, err = svc.DeactivateLegacy(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, "b", resp.Message)
}

func TestUserValidationService_UpdateProfile(t *testing.T) {
	inactive := models.StatusInactive

	t.Run("status alone is nothing to update", func(t *testing.T) {
		inner := mock.NewMockUserService(gomock.NewController(t))
		svc := NewUserValidationService().Wrap(inner)

		_, err := svc.UpdateProfile(context.Background(), adminIdentity(3), models.UserUpdate{Status: &inactive})
		assert.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)
	})

	t.Run("invalid email", func(t *testing.T) {
		inner := mock.NewMockUserService(gomock.NewController(t))
		svc := NewUserValidationService().Wrap(inner)

		_, err := svc.UpdateProfile(context.Background(), adminIdentity(3), models.UserUpdate{Email: ptr("nope")})
		assert.ErrorIs(t, err, validators.ErrInvalidEmail)
	})

	t.Run("status is dropped before the wrapped service", func(t *testing.T) {
		inner := mock.NewMockUserService(gomock.NewController(t))
		svc := NewUserValidationService().Wrap(inner)
		want := models.UserUpdate{Username: ptr("Jane Doe")}

		inner.EXPECT().UpdateProfile(gomock.Any(), adminIdentity(3), want).Return(models.User{ID: 3}, nil)

		_, err := svc.UpdateProfile(context.Background(), adminIdentity(3), models.UserUpdate{Username: ptr("Jane Doe"), Status: &inactive})
		assert.NoError(t, err)
	})
}

func TestUserValidationService_UpdateUserAndPassword(t *testing.T) {
	inner := mock.NewMockUserService(gomock.NewController(t))
	svc := NewUserValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.UpdateUser(ctx, 2, models.UserUpdate{})
	assert.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)

	bogus := models.UserStatus("Paused")
	_, err = svc.UpdateUser(ctx, 2, models.UserUpdate{Status: &bogus})
	assert.ErrorIs(t, err, validators.ErrInvalidStatus)

	err = svc.ChangePassword(ctx, adminIdentity(3), models.ChangePasswordRequest{CurrentPassword: testPassword, NewPassword: "short"})
	assert.ErrorIs(t, err, validators.ErrWeakPassword)

	err = svc.ChangePassword(ctx, adminIdentity(3), models.ChangePasswordRequest{CurrentPassword: testPassword, NewPassword: testPassword + strings.Repeat("a", 65)})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrPasswordTooLong)

	req := models.ChangePasswordRequest{CurrentPassword: testPassword, NewPassword: "Newpass9?"}
	inner.EXPECT().ChangePassword(gomock.Any(), adminIdentity(3), req).Return(nil)
	assert.NoError(t, svc.ChangePassword(ctx, adminIdentity(3), req))

	inner.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)
	inner.EXPECT().DeleteUser(gomock.Any(), adminIdentity(2), int64(1)).Return(ErrPrimaryAdminProtected)
	inner.EXPECT().PromoteToAdmin(gomock.Any(), int64(4)).Return(models.PromotedUser{ID: 4}, nil)
	inner.EXPECT().GetProfile(gomock.Any(), adminIdentity(3)).Return(models.User{ID: 3}, nil)
	inner.EXPECT().DeleteProfile(gomock.Any(), adminIdentity(3)).Return(nil)

	_, err = svc.ListUsers(ctx)
	assert.NoError(t, err)
	assert.ErrorIs(t, svc.DeleteUser(ctx, adminIdentity(2), 1), ErrPrimaryAdminProtected)
	_, err = svc.PromoteToAdmin(ctx, 4)
	assert.NoError(t, err)
	_, err = svc.GetProfile(ctx, adminIdentity(3))
	assert.NoError(t, err)
	assert.NoError(t, svc.DeleteProfile(ctx, adminIdentity(3)))
}

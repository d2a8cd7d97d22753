package service

import (
	"github.com/MKhiriev/population-dashboard/internal/adapter"
	"github.com/MKhiriev/population-dashboard/internal/config"
	"github.com/MKhiriev/population-dashboard/internal/logger"
	"github.com/MKhiriev/population-dashboard/internal/store"
	"github.com/MKhiriev/population-dashboard/internal/utils"
)

type Services struct {
	AuthService       AuthService
	IdentityService   IdentityService
	UserService       UserService
	StatisticsService StatisticsService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, adapters *adapter.Adapters, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	tokens := newTokenIssuer(cfg.App)
	hasher := utils.NewPasswordHasher(cfg.App.PasswordHashCost)
	policy := NewMigrationPolicy(storages.UserRepository, cfg.App.MigrationWindow, logger)

	authService := NewAuthValidationService().
		Wrap(NewAuthService(storages.UserRepository, adapters.IdentityProvider, tokens, hasher, policy, logger))
	userService := NewUserValidationService().
		Wrap(NewUserService(storages.UserRepository, hasher, policy, logger))

	return &Services{
		AuthService:       authService,
		IdentityService:   NewIdentityService(storages.UserRepository, adapters.IdentityProvider, tokens, logger),
		UserService:       userService,
		StatisticsService: NewStatisticsService(adapters.StatisticsProvider, logger),
		AppInfoService:    appInfoService,
	}, nil
}

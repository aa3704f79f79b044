package service

import (
	"fmt"

	"github.com/MKhiriev/go-ledger/internal/config"
	"github.com/MKhiriev/go-ledger/internal/crypto"
	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/store"
	"github.com/MKhiriev/go-ledger/models"
)

// Services bundles the server-side services used by the HTTP handlers.
type Services struct {
	AuthService    AuthService
	LedgerService  LedgerService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerApp, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	return NewServicesWithHasher(storages, crypto.NewPasswordHasher(), cfg, buildInfo, logger)
}

// NewServicesWithHasher is NewServices with an explicit password hasher.
func NewServicesWithHasher(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.ServerApp, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, cfg, logger),
		LedgerService:  NewLedgerService(storages, cfg.TokenSignKey, logger),
		AppInfoService: appInfo,
	}, nil
}

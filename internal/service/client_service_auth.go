// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-ledger/internal/adapter"
	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/session"
	"github.com/MKhiriev/go-ledger/internal/validators"
	"github.com/MKhiriev/go-ledger/models"
)

type clientAuthService struct {
	adapter   adapter.LedgerAdapter
	validator validators.Validator
	session   *session.Session

	logger *logger.Logger
}

// NewClientAuthService builds the authenticator over serverAdapter. The
// identity of a successful login is recorded on sess.
func NewClientAuthService(serverAdapter adapter.LedgerAdapter, sess *session.Session, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		validator: validators.NewLedgerValidator(),
		session:   sess,
		logger:    logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) error {
	user.Username = strings.TrimSpace(user.Username)
	if err := a.validator.Validate(ctx, user); err != nil {
		return mapValidationError(err)
	}

	if err := a.adapter.Register(ctx, user); err != nil {
		a.logger.Err(err).Str("username", user.Username).Msg("register failed")
		return mapAdapterError(err)
	}

	a.logger.Info().Str("username", user.Username).Msg("user registered")
	return nil
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Identity, error) {
	user.Username = strings.TrimSpace(user.Username)
	if err := a.validator.Validate(ctx, user); err != nil {
		return models.Identity{}, mapValidationError(err)
	}

	resp, err := a.adapter.Login(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("username", user.Username).Msg("login failed")
		return models.Identity{}, mapAdapterError(err)
	}

	identity := resp.Identity()
	a.session.SetIdentity(identity)

	a.logger.Info().Int64("user_id", identity.UserID).Msg("logged in")
	return identity, nil
}

func (a *clientAuthService) Logout() {
	a.session.Reset()
}

func (a *clientAuthService) Identity() (models.Identity, bool) {
	return a.session.Identity()
}

func (a *clientAuthService) IsLoggedIn() bool {
	_, ok := a.session.Identity()
	return ok
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-ledger/internal/adapter"
	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/session"
	"github.com/MKhiriev/go-ledger/internal/utils"
	"github.com/MKhiriev/go-ledger/internal/validators"
	"github.com/MKhiriev/go-ledger/models"
)

type clientLedgerService struct {
	adapter   adapter.LedgerAdapter
	validator validators.Validator
	session   *session.Session
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

// NewClientLedgerService builds the ledger client. The bearer credential is
// read from sess on every call.
func NewClientLedgerService(serverAdapter adapter.LedgerAdapter, sess *session.Session, logger *logger.Logger) ClientLedgerService {
	return &clientLedgerService{
		adapter:   serverAdapter,
		validator: validators.NewLedgerValidator(),
		session:   sess,
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

func (l *clientLedgerService) UpdateToken(token string) {
	l.session.Credentials().Set(token)
}

// requireCredential fails fast when no token is stored.
func (l *clientLedgerService) requireCredential() error {
	if _, ok := l.session.Credentials().Get(); !ok {
		return ErrCredentialAbsent
	}
	return nil
}

func (l *clientLedgerService) GetBalance(ctx context.Context) (models.AccountBalance, error) {
	if err := l.requireCredential(); err != nil {
		return models.AccountBalance{}, err
	}

	balance, err := l.adapter.GetBalance(ctx)
	if err != nil {
		l.logger.Err(err).Msg("get balance failed")
		return models.AccountBalance{}, mapAdapterError(err)
	}
	return balance, nil
}

func (l *clientLedgerService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	if err := l.requireCredential(); err != nil {
		return nil, err
	}

	users, err := l.adapter.ListUsers(ctx)
	if err != nil {
		l.logger.Err(err).Msg("list users failed")
		return nil, mapAdapterError(err)
	}
	if users == nil {
		users = []models.UserSummary{}
	}
	return users, nil
}

func (l *clientLedgerService) ListTransfers(ctx context.Context) ([]models.Transfer, error) {
	if err := l.requireCredential(); err != nil {
		return nil, err
	}

	transfers, err := l.adapter.ListTransfers(ctx)
	if err != nil {
		l.logger.Err(err).Msg("list transfers failed")
		return nil, mapAdapterError(err)
	}
	if transfers == nil {
		transfers = []models.Transfer{}
	}
	return transfers, nil
}

func (l *clientLedgerService) GetTransferDetail(ctx context.Context, transferID int64) (models.Transfer, error) {
	if err := l.requireCredential(); err != nil {
		return models.Transfer{}, err
	}

	transfer, err := l.adapter.GetTransfer(ctx, transferID)
	if err != nil {
		l.logger.Err(err).Int64("transfer_id", transferID).Msg("get transfer failed")
		return models.Transfer{}, mapAdapterError(err)
	}
	return transfer, nil
}

// SubmitTransfer validates locally, then posts once with a fresh
// Idempotency-Key. It never retries; an ErrTransport outcome is ambiguous.
func (l *clientLedgerService) SubmitTransfer(ctx context.Context, fromUserID, toUserID int64, amount decimal.Decimal) (models.Transfer, error) {
	if err := l.requireCredential(); err != nil {
		return models.Transfer{}, err
	}

	req := models.TransferRequest{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Amount:     amount,
	}
	if err := l.validator.Validate(ctx, req); err != nil {
		return models.Transfer{}, mapValidationError(err)
	}
	req.IdempotencyKey = l.ids.Generate()

	transfer, err := l.adapter.SubmitTransfer(ctx, req)
	if err != nil {
		l.logger.Err(err).
			Int64("from", fromUserID).
			Int64("to", toUserID).
			Str("amount", amount.String()).
			Str("idempotency_key", req.IdempotencyKey).
			Msg("submit transfer failed")
		return models.Transfer{}, mapAdapterError(err)
	}

	l.logger.Info().Int64("transfer_id", transfer.TransferID).Msg("transfer submitted")
	return transfer, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/store"
	"github.com/MKhiriev/go-ledger/internal/utils"
	"github.com/MKhiriev/go-ledger/internal/validators"
	"github.com/MKhiriev/go-ledger/models"
)

type ledgerService struct {
	users     store.UserRepository
	accounts  store.AccountRepository
	transfers store.TransferRepository

	validator validators.Validator
	// fingerprints identifies a transfer body for Idempotency-Key replays.
	fingerprints *utils.Hasher

	logger *logger.Logger
}

// NewLedgerService builds the server-side ledger. fingerprintKey keys the
// HMAC used to compare requests that share an Idempotency-Key.
func NewLedgerService(storages *store.Storages, fingerprintKey string, logger *logger.Logger) LedgerService {
	return &ledgerService{
		users:        storages.UserRepository,
		accounts:     storages.AccountRepository,
		transfers:    storages.TransferRepository,
		validator:    validators.NewLedgerValidator(),
		fingerprints: utils.NewHasher(fingerprintKey),
		logger:       logger,
	}
}

func (s *ledgerService) GetBalance(ctx context.Context, userID int64) (models.AccountBalance, error) {
	balance, err := s.accounts.GetBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.AccountBalance{}, fmt.Errorf("%w: account of user %d", ErrNotFound, userID)
		}
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("get balance failed")
		return models.AccountBalance{}, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

func (s *ledgerService) ListUsers(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	users, err := s.users.ListUsersExcept(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("list users failed")
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *ledgerService) ListTransfers(ctx context.Context, userID int64) ([]models.Transfer, error) {
	transfers, err := s.transfers.ListTransfersForUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("list transfers failed")
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	return transfers, nil
}

func (s *ledgerService) GetTransfer(ctx context.Context, userID, transferID int64) (models.Transfer, error) {
	transfer, err := s.transfers.GetTransferForUser(ctx, userID, transferID)
	if err != nil {
		if errors.Is(err, store.ErrTransferNotFound) {
			return models.Transfer{}, ErrTransferNotFound
		}
		return models.Transfer{}, fmt.Errorf("get transfer: %w", err)
	}
	return transfer, nil
}

// SendTransfer posts a Send transfer on behalf of userID, who must be the
// sender.
func (s *ledgerService) SendTransfer(ctx context.Context, userID int64, req models.TransferRequest) (models.Transfer, error) {
	log := logger.FromContext(ctx)

	if req.FromUserID != userID {
		log.Warn().Int64("caller", userID).Int64("from", req.FromUserID).Msg("transfer from foreign account")
		return models.Transfer{}, ErrAccessDenied
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Transfer{}, mapValidationError(err)
	}

	transfer, err := s.transfers.CreateSendTransfer(ctx, req, s.fingerprint(req))
	switch {
	case err == nil:
		log.Info().Int64("transfer_id", transfer.TransferID).Msg("transfer posted")
		return transfer, nil
	case errors.Is(err, store.ErrInsufficientFunds):
		return models.Transfer{}, ErrInsufficientFunds
	case errors.Is(err, store.ErrAmountPrecision):
		return models.Transfer{}, ErrAmountPrecision
	case errors.Is(err, store.ErrRecipientNotFound):
		return models.Transfer{}, ErrInvalidRecipient
	case errors.Is(err, store.ErrIdempotencyKeyReused):
		return models.Transfer{}, ErrDuplicateRequest
	case errors.Is(err, store.ErrAccountNotFound):
		return models.Transfer{}, fmt.Errorf("%w: account of user %d", ErrNotFound, userID)
	default:
		return models.Transfer{}, fmt.Errorf("send transfer: %w", err)
	}
}

// fingerprint identifies the body sent under an idempotency key. The amount
// is in canonical form, so "25" and "25.00" are the same request.
func (s *ledgerService) fingerprint(req models.TransferRequest) string {
	body := strconv.FormatInt(req.FromUserID, 10) + "|" +
		strconv.FormatInt(req.ToUserID, 10) + "|" +
		req.Amount.String()
	return s.fingerprints.SumHex([]byte(body))
}

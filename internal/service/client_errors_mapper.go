// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ledger/internal/adapter"
	"github.com/MKhiriev/go-ledger/internal/app"
	"github.com/MKhiriev/go-ledger/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgNonPositiveAmount:
			return ErrNonPositiveAmount
		case app.MsgSelfTransfer:
			return ErrSelfTransfer
		case app.MsgAmountPrecision:
			return ErrAmountPrecision
		}
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidUsernamePassword {
			return ErrWrongCredentials
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		return ErrAccessDenied

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgTransferNotFound {
			return ErrTransferNotFound
		}
		return fmt.Errorf("%w: %s", ErrNotFound, msg)

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgUsernameAlreadyExists:
			return ErrUsernameTaken
		case app.MsgIdempotencyKeyReused:
			return ErrDuplicateRequest
		}

	case errors.Is(err, adapter.ErrUnprocessableEntity):
		switch msg {
		case app.MsgInsufficientFunds:
			return ErrInsufficientFunds
		case app.MsgInvalidRecipient:
			return ErrInvalidRecipient
		}
		return fmt.Errorf("%w: %s", ErrTransferRejected, msg)
	}

	// refused connections, timeouts, 5xx, unknown statuses, undecodable bodies
	return fmt.Errorf("%w: %w", ErrTransport, err)
}

// mapValidationError turns a validators error into the matching service
// sentinel. Everything lands in ErrValidation.
func mapValidationError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrNonPositiveAmount):
		return ErrNonPositiveAmount
	case errors.Is(err, validators.ErrSelfTransfer):
		return ErrSelfTransfer
	case errors.Is(err, validators.ErrAmountPrecision):
		return ErrAmountPrecision
	case errors.Is(err, validators.ErrEmptyUsername),
		errors.Is(err, validators.ErrEmptyPassword):
		return ErrInvalidCredentials
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

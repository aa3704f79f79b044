// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Categories. Every error returned by the ledger client wraps exactly one of
// them; match with errors.Is.
var (
	// ErrValidation is bad input caught before any network call.
	ErrValidation = errors.New("validation failed")

	// ErrAuthentication covers wrong credentials and an absent, expired or
	// invalid bearer token.
	ErrAuthentication = errors.New("authentication failed")

	// ErrNotFound is a resource that does not exist or is not visible to the
	// caller.
	ErrNotFound = errors.New("not found")

	// ErrTransport is a network failure, a malformed response or a status
	// without a more specific mapping.
	ErrTransport = errors.New("transport failure")

	// ErrTransferRejected is a transfer the ledger refused for a business
	// reason.
	ErrTransferRejected = errors.New("transfer rejected")
)

var (
	ErrNonPositiveAmount   = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrSelfTransfer        = fmt.Errorf("%w: cannot transfer to yourself", ErrValidation)
	ErrAmountPrecision     = fmt.Errorf("%w: amount must not have more than two decimal places", ErrValidation)
	ErrInvalidCredentials  = fmt.Errorf("%w: username and password are required", ErrValidation)
	ErrInvalidDataProvided = fmt.Errorf("%w: invalid data provided", ErrValidation)
	ErrUsernameTaken       = fmt.Errorf("%w: username already exists", ErrValidation)

	ErrCredentialAbsent        = fmt.Errorf("%w: not logged in", ErrAuthentication)
	ErrWrongCredentials        = fmt.Errorf("%w: invalid username/password", ErrAuthentication)
	ErrTokenIsExpiredOrInvalid = fmt.Errorf("%w: token is expired or invalid", ErrAuthentication)
	ErrNotAuthenticated        = fmt.Errorf("%w: session is not authenticated", ErrAuthentication)
	ErrAccessDenied            = fmt.Errorf("%w: access denied", ErrAuthentication)

	ErrTransferNotFound = fmt.Errorf("%w: transfer not found", ErrNotFound)

	ErrInsufficientFunds = fmt.Errorf("%w: insufficient funds", ErrTransferRejected)
	ErrInvalidRecipient  = fmt.Errorf("%w: invalid recipient", ErrTransferRejected)
	ErrDuplicateRequest  = fmt.Errorf("%w: idempotency key reused with a different request", ErrTransferRejected)
)

// Server-only failures.
var (
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by both the
// ledger server handlers and the client-side error mapper.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. The client
// matches on them to turn a status code plus body into a typed error, so the
// wording must stay in sync on both sides.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidUsernamePassword is returned when the supplied
	// username/password combination does not match any existing user.
	MsgInvalidUsernamePassword = "invalid username/password"

	// MsgUsernameAlreadyExists is returned when a registration attempt is
	// rejected because the requested username is already in use.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is either
	// expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID
	// extracted from the token but none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when the caller tries to move funds out of
	// an account that is not their own.
	MsgAccessDenied = "access denied"

	// MsgTransferNotFound is returned when a transfer does not exist or does
	// not involve the caller.
	MsgTransferNotFound = "transfer not found"

	// MsgInvalidTransferID is returned when the {id} path segment is not a
	// positive integer.
	MsgInvalidTransferID = "invalid transfer id"

	// MsgNonPositiveAmount is returned when a transfer amount is zero or
	// negative.
	MsgNonPositiveAmount = "amount must be positive"

	// MsgAmountPrecision is returned when a transfer amount has fractions of
	// a cent.
	MsgAmountPrecision = "amount must not have more than two decimal places"

	// MsgSelfTransfer is returned when sender and recipient are the same.
	MsgSelfTransfer = "cannot transfer to yourself"

	// MsgInsufficientFunds is returned when the sender's balance does not
	// cover the transfer amount.
	MsgInsufficientFunds = "insufficient funds"

	// MsgInvalidRecipient is returned when the recipient account does not
	// exist.
	MsgInvalidRecipient = "invalid recipient"

	// MsgIdempotencyKeyReused is returned when an Idempotency-Key is sent
	// again with a different transfer body.
	MsgIdempotencyKeyReused = "idempotency key reused"
)

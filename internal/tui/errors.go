// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-ledger/internal/service"
)

const msgServerUnavailable = "Network is unavailable or the ledger server is down"

// humanizeError turns a service error into the line shown to the user.
// Network failures collapse into one message; everything else keeps the
// service wording.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrCredentialAbsent),
		errors.Is(err, service.ErrNotAuthenticated),
		errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Your session has expired. Log in again."
	case errors.Is(err, service.ErrWrongCredentials):
		return "Invalid username or password."
	case errors.Is(err, service.ErrInsufficientFunds):
		return "Insufficient funds for this transfer."
	case errors.Is(err, service.ErrInvalidRecipient):
		return "The recipient does not exist."
	case errors.Is(err, service.ErrAmountPrecision):
		return "Amounts can have at most two decimal places."
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}

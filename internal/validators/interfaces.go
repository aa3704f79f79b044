// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules shared by the ledger client and the
// reference ledger server, so a transfer the client accepts locally is judged
// by the same rules on the server.
//
// Validate may be scoped to named fields; with no fields every rule for the
// value's type runs, in declaration order, and the first failure is returned.
package validators

import "context"

// Validator validates arbitrary input, optionally only the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}

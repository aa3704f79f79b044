// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-ledger/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive surface driven by [App].
// *tui.TUI is the production implementation.
type UI interface {
	// LoginFlow blocks until somebody is logged in. It returns
	// tui.ErrUserQuit when the user leaves instead.
	LoginFlow(ctx context.Context) (models.Identity, error)

	// MainLoop blocks until the user exits. logout reports whether the user
	// asked to log in as somebody else.
	MainLoop(ctx context.Context, identity models.Identity) (logout bool, err error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/models"
)

// SessionState is the lifecycle position of a [SessionController].
type SessionState int32

const (
	StateAnonymous SessionState = iota
	StateAuthenticating
	StateAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// SessionController couples the authenticator and the ledger client: a
// successful login installs the credential on the ledger client, and ledger
// operations are reachable only while authenticated.
//
// Transitions and ledger calls made through it are serialised.
type SessionController struct {
	auth   ClientAuthService
	ledger ClientLedgerService

	// opMu serialises transitions and guarded ledger calls.
	opMu  sync.Mutex
	state atomic.Int32

	logger *logger.Logger
}

// NewSessionController returns an anonymous controller.
func NewSessionController(auth ClientAuthService, ledger ClientLedgerService, logger *logger.Logger) *SessionController {
	return &SessionController{
		auth:   auth,
		ledger: ledger,
		logger: logger,
	}
}

// State returns the current lifecycle state.
func (c *SessionController) State() SessionState {
	return SessionState(c.state.Load())
}

func (c *SessionController) setState(s SessionState) {
	prev := SessionState(c.state.Swap(int32(s)))
	if prev != s {
		c.logger.Debug().Stringer("from", prev).Stringer("to", s).Msg("session state changed")
	}
}

// Identity returns the logged-in user, if any.
func (c *SessionController) Identity() (models.Identity, bool) {
	return c.auth.Identity()
}

// Register creates an account. The state is unchanged.
func (c *SessionController) Register(ctx context.Context, user models.User) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	return c.auth.Register(ctx, user)
}

// Login authenticates and installs the credential on the ledger client in
// one step. Logging in while authenticated ends the current session first.
func (c *SessionController) Login(ctx context.Context, user models.User) (models.Identity, error) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	if c.State() == StateAuthenticated {
		c.logout()
	}

	c.setState(StateAuthenticating)

	identity, err := c.auth.Login(ctx, user)
	if err != nil {
		c.ledger.UpdateToken("")
		c.setState(StateAnonymous)
		return models.Identity{}, err
	}

	c.ledger.UpdateToken(identity.Credential)
	c.setState(StateAuthenticated)

	return identity, nil
}

// Logout ends the session and drops the credential. Idempotent.
func (c *SessionController) Logout() {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.logout()
}

func (c *SessionController) logout() {
	c.auth.Logout()
	c.ledger.UpdateToken("")
	c.setState(StateAnonymous)
}

// Ledger returns the ledger operations, or ErrNotAuthenticated unless the
// session is authenticated. The returned value re-checks the state on every
// call, so it stops working after Logout.
func (c *SessionController) Ledger() (LedgerOperations, error) {
	if c.State() != StateAuthenticated {
		return nil, ErrNotAuthenticated
	}
	return guardedLedger{c: c}, nil
}

// SendFunds sends amount from the logged-in user to toUserID. The sender is
// read under the same lock as the submission, so a concurrent relogin cannot
// pair one user's ID with another user's credential.
func (c *SessionController) SendFunds(ctx context.Context, toUserID int64, amount decimal.Decimal) (models.Transfer, error) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	if c.State() != StateAuthenticated {
		return models.Transfer{}, ErrNotAuthenticated
	}
	identity, ok := c.auth.Identity()
	if !ok {
		return models.Transfer{}, ErrNotAuthenticated
	}

	return c.ledger.SubmitTransfer(ctx, identity.UserID, toUserID, amount)
}

// guardedLedger forwards to the ledger client under the controller lock.
type guardedLedger struct {
	c *SessionController
}

func (g guardedLedger) enter() error {
	g.c.opMu.Lock()
	if g.c.State() != StateAuthenticated {
		g.c.opMu.Unlock()
		return ErrNotAuthenticated
	}
	return nil
}

func (g guardedLedger) leave() {
	g.c.opMu.Unlock()
}

func (g guardedLedger) GetBalance(ctx context.Context) (models.AccountBalance, error) {
	if err := g.enter(); err != nil {
		return models.AccountBalance{}, err
	}
	defer g.leave()
	return g.c.ledger.GetBalance(ctx)
}

func (g guardedLedger) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	if err := g.enter(); err != nil {
		return nil, err
	}
	defer g.leave()
	return g.c.ledger.ListUsers(ctx)
}

func (g guardedLedger) ListTransfers(ctx context.Context) ([]models.Transfer, error) {
	if err := g.enter(); err != nil {
		return nil, err
	}
	defer g.leave()
	return g.c.ledger.ListTransfers(ctx)
}

func (g guardedLedger) GetTransferDetail(ctx context.Context, transferID int64) (models.Transfer, error) {
	if err := g.enter(); err != nil {
		return models.Transfer{}, err
	}
	defer g.leave()
	return g.c.ledger.GetTransferDetail(ctx, transferID)
}

func (g guardedLedger) SubmitTransfer(ctx context.Context, fromUserID, toUserID int64, amount decimal.Decimal) (models.Transfer, error) {
	if err := g.enter(); err != nil {
		return models.Transfer{}, err
	}
	defer g.leave()
	return g.c.ledger.SubmitTransfer(ctx, fromUserID, toUserID, amount)
}

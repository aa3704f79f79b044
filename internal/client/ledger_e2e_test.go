package client_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger/internal/adapter"
	"github.com/MKhiriev/go-ledger/internal/config"
	"github.com/MKhiriev/go-ledger/internal/crypto"
	"github.com/MKhiriev/go-ledger/internal/handler"
	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/service"
	"github.com/MKhiriev/go-ledger/internal/session"
	"github.com/MKhiriev/go-ledger/internal/store"
	"github.com/MKhiriev/go-ledger/models"
)

// newLedgerServer starts the HTTP ledger over an in-memory SQLite database.
func newLedgerServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	storages, err := store.NewStorages(ctx, config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	hasher := crypto.NewPasswordHasherWithParams(crypto.Params{Time: 1, Memory: 8 * 1024, Threads: 1, SaltLen: 16, KeyLen: 32})
	appCfg := config.ServerApp{
		TokenSignKey:   "e2e-sign-key",
		TokenIssuer:    "ledger-e2e",
		TokenDuration:  time.Hour,
		InitialBalance: decimal.RequireFromString("1000.00"),
	}
	services, err := service.NewServicesWithHasher(storages, hasher, appCfg, models.NewAppBuildInfo("e2e", "", ""), log)
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(services, config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: 5 * time.Second}, log)
	require.NoError(t, err)

	srv := httptest.NewServer(handlers.HTTP.Init())
	t.Cleanup(srv.Close)
	return srv
}

func newController(t *testing.T, serverURL string) *service.SessionController {
	t.Helper()

	sess := session.New()
	ledgerAdapter, err := adapter.NewHTTPLedgerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, sess.Credentials(), logger.Nop())
	require.NoError(t, err)

	return service.NewClientServices(ledgerAdapter, sess, logger.Nop()).Controller
}

func TestLedgerEndToEnd(t *testing.T) {
	srv := newLedgerServer(t)
	c := newController(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, c.Register(ctx, models.User{Username: "alice", Password: "alice-pw"}))
	require.NoError(t, c.Register(ctx, models.User{Username: "bob", Password: "bob-pw"}))

	err := c.Register(ctx, models.User{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, service.ErrUsernameTaken)

	_, err = c.Ledger()
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)

	_, err = c.Login(ctx, models.User{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, service.ErrWrongCredentials)
	assert.Equal(t, service.StateAnonymous, c.State())

	alice, err := c.Login(ctx, models.User{Username: "alice", Password: "alice-pw"})
	require.NoError(t, err)
	assert.Equal(t, "alice", alice.Username)
	assert.NotEmpty(t, alice.Credential)

	ledger, err := c.Ledger()
	require.NoError(t, err)

	balance, err := ledger.GetBalance(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1000").Equal(balance.Balance), balance.Balance.String())

	users, err := ledger.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	bob := users[0]
	assert.Equal(t, "bob", bob.Username)

	sent, err := c.SendFunds(ctx, bob.UserID, decimal.RequireFromString("25.00"))
	require.NoError(t, err)
	assert.Equal(t, models.TransferStatusApproved, sent.Status)
	assert.Equal(t, models.TransferTypeSend, sent.Type)
	assert.Equal(t, alice.UserID, sent.FromUserID)
	assert.Equal(t, bob.UserID, sent.ToUserID)

	balance, err = ledger.GetBalance(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("975").Equal(balance.Balance), balance.Balance.String())

	_, err = c.SendFunds(ctx, bob.UserID, decimal.RequireFromString("5000"))
	assert.ErrorIs(t, err, service.ErrInsufficientFunds)

	_, err = c.SendFunds(ctx, bob.UserID+1000, decimal.RequireFromString("1"))
	assert.ErrorIs(t, err, service.ErrInvalidRecipient)

	_, err = c.SendFunds(ctx, alice.UserID, decimal.RequireFromString("1"))
	assert.ErrorIs(t, err, service.ErrSelfTransfer)

	_, err = c.SendFunds(ctx, bob.UserID, decimal.Zero)
	assert.ErrorIs(t, err, service.ErrNonPositiveAmount)

	for _, subCent := range []string{"0.004", "0.005", "25.001"} {
		_, err = c.SendFunds(ctx, bob.UserID, decimal.RequireFromString(subCent))
		assert.ErrorIs(t, err, service.ErrAmountPrecision, subCent)
		assert.ErrorIs(t, err, service.ErrValidation, subCent)
	}

	balance, err = ledger.GetBalance(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("975").Equal(balance.Balance), balance.Balance.String())

	transfers, err := ledger.ListTransfers(ctx)
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	assert.Equal(t, sent.TransferID, transfers[0].TransferID)

	detail, err := ledger.GetTransferDetail(ctx, sent.TransferID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("25").Equal(detail.Amount))

	_, err = ledger.GetTransferDetail(ctx, sent.TransferID+1)
	assert.ErrorIs(t, err, service.ErrTransferNotFound)

	c.Logout()
	_, err = ledger.GetBalance(ctx)
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)

	_, err = c.Login(ctx, models.User{Username: "bob", Password: "bob-pw"})
	require.NoError(t, err)

	ledger, err = c.Ledger()
	require.NoError(t, err)

	balance, err = ledger.GetBalance(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1025").Equal(balance.Balance), balance.Balance.String())

	detail, err = ledger.GetTransferDetail(ctx, sent.TransferID)
	require.NoError(t, err)
	assert.Equal(t, "alice", detail.FromUsername)
}

func TestLedgerEndToEnd_ServerDown(t *testing.T) {
	srv := newLedgerServer(t)
	c := newController(t, srv.URL)
	srv.Close()

	err := c.Register(context.Background(), models.User{Username: "alice", Password: "alice-pw"})

	assert.ErrorIs(t, err, service.ErrTransport)
}

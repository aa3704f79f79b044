package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-ledger/internal/service"
	"github.com/MKhiriev/go-ledger/models"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// fakeController implements Controller for unit tests.
// Each method field can be overridden per test case.
type fakeController struct {
	registerFn  func(ctx context.Context, user models.User) error
	loginFn     func(ctx context.Context, user models.User) (models.Identity, error)
	sendFundsFn func(ctx context.Context, toUserID int64, amount decimal.Decimal) (models.Transfer, error)

	ledger    service.LedgerOperations
	ledgerErr error

	logouts int
}

func (f *fakeController) Register(ctx context.Context, user models.User) error {
	return f.registerFn(ctx, user)
}

func (f *fakeController) Login(ctx context.Context, user models.User) (models.Identity, error) {
	return f.loginFn(ctx, user)
}

func (f *fakeController) Logout() {
	f.logouts++
}

func (f *fakeController) Identity() (models.Identity, bool) {
	return alice, true
}

func (f *fakeController) Ledger() (service.LedgerOperations, error) {
	if f.ledgerErr != nil {
		return nil, f.ledgerErr
	}
	return f.ledger, nil
}

func (f *fakeController) SendFunds(ctx context.Context, toUserID int64, amount decimal.Decimal) (models.Transfer, error) {
	return f.sendFundsFn(ctx, toUserID, amount)
}

// fakeLedger implements service.LedgerOperations with canned answers.
type fakeLedger struct {
	balance   models.AccountBalance
	users     []models.UserSummary
	transfers []models.Transfer
	detail    models.Transfer
	err       error

	detailID int64
}

func (f *fakeLedger) GetBalance(context.Context) (models.AccountBalance, error) {
	return f.balance, f.err
}

func (f *fakeLedger) ListUsers(context.Context) ([]models.UserSummary, error) {
	return f.users, f.err
}

func (f *fakeLedger) ListTransfers(context.Context) ([]models.Transfer, error) {
	return f.transfers, f.err
}

func (f *fakeLedger) GetTransferDetail(_ context.Context, transferID int64) (models.Transfer, error) {
	f.detailID = transferID
	return f.detail, f.err
}

func (f *fakeLedger) SubmitTransfer(context.Context, int64, int64, decimal.Decimal) (models.Transfer, error) {
	return models.Transfer{}, errors.New("not used by the screens")
}

var alice = models.Identity{UserID: 1001, Username: "alice", Credential: "tok-alice"}

// runCmd executes cmd and every command of a batch, returning the produced
// messages except spinner ticks.
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	var out []tea.Msg
	switch msg := cmd().(type) {
	case nil, spinner.TickMsg:
	case tea.BatchMsg:
		for _, c := range msg {
			out = append(out, runCmd(t, c)...)
		}
	default:
		out = append(out, msg)
	}
	return out
}

// only returns the single message of type T produced by cmd.
func only[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()

	var found []T
	for _, msg := range runCmd(t, cmd) {
		if m, ok := msg.(T); ok {
			found = append(found, m)
		}
	}
	require.Len(t, found, 1)
	return found[0]
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-ledger/internal/service"
	"github.com/MKhiriev/go-ledger/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransfers() []models.Transfer {
	return []models.Transfer{
		{
			TransferID: 3001, FromUserID: 1001, ToUserID: 1002,
			FromUsername: "alice", ToUsername: "bob",
			Amount: amount("25.00"), Status: models.TransferStatusApproved, Type: models.TransferTypeSend,
			CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			TransferID: 3002, FromUserID: 1003, ToUserID: 1001,
			FromUsername: "carol", ToUsername: "alice",
			Amount: amount("7.5"), Status: models.TransferStatusApproved, Type: models.TransferTypeSend,
		},
	}
}

func newTestMainLoop(c *fakeController) mainLoopModel {
	return newMainLoopModel(context.Background(), c, alice)
}

// step feeds msg to m and returns the new model and command.
func step(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(mainLoopModel)
	require.True(t, ok)
	return next, cmd
}

// settle delivers every message cmd produces back to m.
func settle(t *testing.T, m mainLoopModel, cmd tea.Cmd) mainLoopModel {
	t.Helper()
	for _, msg := range runCmd(t, cmd) {
		m, _ = step(t, m, msg)
	}
	return m
}

func stubClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	prev := writeClipboard
	writeClipboard = fn
	t.Cleanup(func() { writeClipboard = prev })
}

func TestMainLoop_Balance(t *testing.T) {
	c := &fakeController{ledger: &fakeLedger{
		balance: models.AccountBalance{OwnerID: 1001, Balance: amount("1000")},
	}}
	m := newTestMainLoop(c)

	m, cmd := step(t, m, keyRunes("1"))
	assert.Equal(t, screenBalance, m.screen)
	assert.True(t, m.loading)

	m = settle(t, m, cmd)
	assert.False(t, m.loading)
	assert.Contains(t, m.View(), "Your current account balance is: $1000.00")
	assert.Contains(t, m.View(), "Logged in as alice (ID 1001)")

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.screen)
}

func TestMainLoop_BalanceNotAuthenticated(t *testing.T) {
	c := &fakeController{ledgerErr: service.ErrNotAuthenticated}
	m := newTestMainLoop(c)

	m, cmd := step(t, m, keyRunes("1"))
	msgs := runCmd(t, cmd)
	require.NotEmpty(t, msgs)
	m, cmd = step(t, m, msgs[len(msgs)-1])

	assert.Equal(t, "Your session has expired. Log in again.", m.errMsg)
	assert.True(t, m.logout)
	assert.Equal(t, 1, c.logouts)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMainLoop_RejectedTokenReturnsToLogin(t *testing.T) {
	rejected := fmt.Errorf("%w: %s", service.ErrTokenIsExpiredOrInvalid, "401")

	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"balance", balanceLoadedMsg{err: rejected}},
		{"history", transfersLoadedMsg{err: rejected}},
		{"detail", transferLoadedMsg{err: rejected}},
		{"recipients", usersLoadedMsg{err: rejected}},
		{"send", transferSentMsg{err: rejected}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeController{}
			m := newTestMainLoop(c)

			m, cmd := step(t, m, tt.msg)

			assert.True(t, m.logout)
			assert.Equal(t, 1, c.logouts)
			assert.Equal(t, "Your session has expired. Log in again.", m.errMsg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestMainLoop_OtherErrorsKeepSession(t *testing.T) {
	c := &fakeController{}
	m := newTestMainLoop(c)

	m, cmd := step(t, m, transferSentMsg{err: service.ErrAmountPrecision})

	assert.Nil(t, cmd)
	assert.False(t, m.logout)
	assert.Zero(t, c.logouts)
	assert.Equal(t, "Amounts can have at most two decimal places.", m.errMsg)
}

func TestMainLoop_MenuNavigation(t *testing.T) {
	m := newTestMainLoop(&fakeController{})

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.menuIdx)

	for range len(mainMenuItems) + 2 {
		m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, len(mainMenuItems)-1, m.menuIdx)

	_, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMainLoop_TransfersAndDetail(t *testing.T) {
	ledger := &fakeLedger{transfers: sampleTransfers(), detail: sampleTransfers()[1]}
	m := newTestMainLoop(&fakeController{ledger: ledger})

	m, cmd := step(t, m, keyRunes("2"))
	m = settle(t, m, cmd)

	require.Equal(t, screenTransfers, m.screen)
	view := m.View()
	assert.Contains(t, view, "To: bob")
	assert.Contains(t, view, "From: carol")
	assert.Contains(t, view, "$7.50")

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, m, cmd)

	assert.Equal(t, int64(3002), ledger.detailID)
	require.Equal(t, screenTransferDetail, m.screen)
	view = m.View()
	assert.Contains(t, view, "Id       │ 3002")
	assert.Contains(t, view, "From     │ carol")
	assert.Contains(t, view, "Status   │ Approved")

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenTransfers, m.screen)
}

func TestMainLoop_NoTransfers(t *testing.T) {
	m := newTestMainLoop(&fakeController{ledger: &fakeLedger{}})

	m, cmd := step(t, m, keyRunes("2"))
	m = settle(t, m, cmd)

	assert.Contains(t, m.View(), "You have no transfers yet.")

	m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, screenTransfers, m.screen)
}

func TestMainLoop_DetailNotFound(t *testing.T) {
	ledger := &fakeLedger{transfers: sampleTransfers()}
	m := newTestMainLoop(&fakeController{ledger: ledger})
	m, cmd := step(t, m, keyRunes("2"))
	m = settle(t, m, cmd)

	ledger.err = service.ErrTransferNotFound
	m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, m, cmd)

	assert.Equal(t, screenTransfers, m.screen)
	assert.Equal(t, service.ErrTransferNotFound.Error(), m.errMsg)
}

func TestMainLoop_CopyTransferID(t *testing.T) {
	var copied string
	stubClipboard(t, func(text string) error {
		copied = text
		return nil
	})

	m := newTestMainLoop(&fakeController{})
	m.screen = screenTransferDetail
	m.transfer = sampleTransfers()[0]

	m, cmd := step(t, m, keyRunes("c"))
	msg := only[copiedMsg](t, cmd)
	m, clearCmd := step(t, m, msg)

	assert.Equal(t, "3001", copied)
	assert.Equal(t, "Transfer ID 3001 copied to clipboard.", m.status)
	assert.NotNil(t, clearCmd)

	m, _ = step(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestMainLoop_CopyFails(t *testing.T) {
	stubClipboard(t, func(string) error { return errors.New("no clipboard utility") })

	m := newTestMainLoop(&fakeController{})
	m.screen = screenTransferDetail
	m.transfer = sampleTransfers()[0]

	m, cmd := step(t, m, keyRunes("c"))
	m = settle(t, m, cmd)

	assert.Equal(t, "Copy to clipboard failed: no clipboard utility", m.errMsg)
}

func TestMainLoop_SendFunds(t *testing.T) {
	var (
		gotTo     int64
		gotAmount decimal.Decimal
	)
	c := &fakeController{
		ledger: &fakeLedger{users: []models.UserSummary{{UserID: 1002, Username: "bob"}}},
		sendFundsFn: func(_ context.Context, toUserID int64, amt decimal.Decimal) (models.Transfer, error) {
			gotTo, gotAmount = toUserID, amt
			return sampleTransfers()[0], nil
		},
	}
	m := newTestMainLoop(c)

	m, cmd := step(t, m, keyRunes("4"))
	m = settle(t, m, cmd)
	require.Equal(t, screenSend, m.screen)
	assert.Contains(t, m.View(), "1002     │ bob")

	m.sendInputs[0].SetValue("1002")
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, m.sendFocus)

	m.sendInputs[1].SetValue(" 25.00 ")
	m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.sending)
	m = settle(t, m, cmd)

	assert.Equal(t, int64(1002), gotTo)
	assert.True(t, amount("25").Equal(gotAmount))
	assert.Equal(t, screenMenu, m.screen)
	assert.Equal(t, "Transfer #3001 approved: $25.00 sent to bob.", m.status)
	assert.Empty(t, m.sendInputs[0].Value())
}

func TestMainLoop_SendFundsParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		recipient string
		amount    string
		wantErr   string
	}{
		{name: "recipient not a number", recipient: "bob", amount: "5", wantErr: "Enter the numeric ID of the recipient."},
		{name: "amount not a number", recipient: "1002", amount: "five", wantErr: "Enter an amount such as 25.00."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeController{
				ledger: &fakeLedger{},
				sendFundsFn: func(context.Context, int64, decimal.Decimal) (models.Transfer, error) {
					t.Fatal("send must not be called")
					return models.Transfer{}, nil
				},
			}
			m := newTestMainLoop(c)
			m, cmd := step(t, m, keyRunes("4"))
			m = settle(t, m, cmd)

			m.sendInputs[0].SetValue(tt.recipient)
			m.sendInputs[1].SetValue(tt.amount)
			m.setSendFocus(1)

			m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

			assert.Nil(t, cmd)
			assert.False(t, m.sending)
			assert.Equal(t, tt.wantErr, m.errMsg)
		})
	}
}

func TestMainLoop_SendFundsRejected(t *testing.T) {
	c := &fakeController{
		ledger: &fakeLedger{},
		sendFundsFn: func(context.Context, int64, decimal.Decimal) (models.Transfer, error) {
			return models.Transfer{}, service.ErrInsufficientFunds
		},
	}
	m := newTestMainLoop(c)
	m, cmd := step(t, m, keyRunes("4"))
	m = settle(t, m, cmd)

	m.sendInputs[0].SetValue("1002")
	m.sendInputs[1].SetValue("5000")
	m.setSendFocus(1)

	m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, m, cmd)

	assert.Equal(t, screenSend, m.screen)
	assert.False(t, m.sending)
	assert.Equal(t, "Insufficient funds for this transfer.", m.errMsg)
	assert.Equal(t, "5000", m.sendInputs[1].Value())
}

func TestMainLoop_ComingSoon(t *testing.T) {
	for _, hotkey := range []string{"3", "5"} {
		t.Run(hotkey, func(t *testing.T) {
			m := newTestMainLoop(&fakeController{})

			m, cmd := step(t, m, keyRunes(hotkey))

			assert.Nil(t, cmd)
			assert.Equal(t, screenComingSoon, m.screen)
			assert.Contains(t, m.View(), "coming soon")
		})
	}
}

func TestMainLoop_SwitchUserLogsOut(t *testing.T) {
	c := &fakeController{}
	m := newTestMainLoop(c)

	m, cmd := step(t, m, keyRunes("6"))

	assert.True(t, m.logout)
	assert.Equal(t, 1, c.logouts)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMainLoop_ExitKeepsSession(t *testing.T) {
	c := &fakeController{}
	m := newTestMainLoop(c)

	m, cmd := step(t, m, keyRunes("0"))

	assert.False(t, m.logout)
	assert.Zero(t, c.logouts)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

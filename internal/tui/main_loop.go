package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-ledger/internal/service"
	"github.com/MKhiriev/go-ledger/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

type screen int

const (
	screenMenu screen = iota
	screenBalance
	screenTransfers
	screenTransferDetail
	screenSend
	screenComingSoon
)

type menuAction int

const (
	actionBalance menuAction = iota
	actionTransfers
	actionPending
	actionSend
	actionRequest
	actionSwitchUser
	actionExit
)

type menuItem struct {
	hotkey string
	label  string
	action menuAction
}

var mainMenuItems = []menuItem{
	{"1", "View your current balance", actionBalance},
	{"2", "View your past transfers", actionTransfers},
	{"3", "View your pending requests", actionPending},
	{"4", "Send TE bucks", actionSend},
	{"5", "Request TE bucks", actionRequest},
	{"6", "Log in as different user", actionSwitchUser},
	{"0", "Exit", actionExit},
}

// writeClipboard is swapped in tests; headless runners have no clipboard.
var writeClipboard = clipboard.WriteAll

const statusTTL = 2 * time.Second

type mainLoopModel struct {
	ctx        context.Context
	controller Controller
	identity   models.Identity

	screen  screen
	menuIdx int
	loading bool
	spinner spinner.Model
	status  string
	errMsg  string
	notice  string

	balance     models.AccountBalance
	transfers   []models.Transfer
	transferIdx int
	transfer    models.Transfer

	users      []models.UserSummary
	sendInputs []textinput.Model
	sendFocus  int
	sending    bool

	logout bool
}

func newMainLoopModel(ctx context.Context, controller Controller, identity models.Identity) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	recipient := textinput.New()
	recipient.Placeholder = "user ID"
	recipient.CharLimit = 19
	recipient.Width = 20

	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 16
	amount.Width = 20

	return mainLoopModel{
		ctx:        ctx,
		controller: controller,
		identity:   identity,
		spinner:    s,
		sendInputs: []textinput.Model{recipient, amount},
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return nil
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading && !m.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case balanceLoadedMsg:
		m.loading = false
		if sessionLost(msg.err) {
			return m.endSession(msg.err)
		}
		m.setErr(msg.err)
		m.balance = msg.balance
		return m, nil
	case transfersLoadedMsg:
		m.loading = false
		if sessionLost(msg.err) {
			return m.endSession(msg.err)
		}
		m.setErr(msg.err)
		m.transfers = msg.transfers
		if m.transferIdx >= len(m.transfers) {
			m.transferIdx = len(m.transfers) - 1
		}
		if m.transferIdx < 0 {
			m.transferIdx = 0
		}
		return m, nil
	case transferLoadedMsg:
		m.loading = false
		if sessionLost(msg.err) {
			return m.endSession(msg.err)
		}
		m.setErr(msg.err)
		if msg.err == nil {
			m.transfer = msg.transfer
			m.screen = screenTransferDetail
		}
		return m, nil
	case usersLoadedMsg:
		m.loading = false
		if sessionLost(msg.err) {
			return m.endSession(msg.err)
		}
		m.setErr(msg.err)
		m.users = msg.users
		return m, nil
	case transferSentMsg:
		m.sending = false
		if sessionLost(msg.err) {
			return m.endSession(msg.err)
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("Transfer #%d %s: %s sent to %s.",
			msg.transfer.TransferID,
			strings.ToLower(string(msg.transfer.Status)),
			money(msg.transfer.Amount),
			recipientName(msg.transfer))
		m.resetSendForm()
		m.screen = screenMenu
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Copy to clipboard failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "Transfer ID " + msg.text + " copied to clipboard."
		return m, clearStatusAfter(statusTTL)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenSend {
			return m.updateSendInputs(msg)
		}
		return m, nil
	}

	if key.Matches(keyMsg, keys.quit) {
		return m, tea.Quit
	}

	switch m.screen {
	case screenMenu:
		return m.updateMenu(keyMsg)
	case screenTransfers:
		return m.updateTransfers(keyMsg)
	case screenTransferDetail:
		return m.updateTransferDetail(keyMsg)
	case screenSend:
		return m.updateSend(keyMsg)
	case screenBalance:
		if key.Matches(keyMsg, keys.refresh) {
			return m.startLoading(m.cmdLoadBalance())
		}
	}

	if key.Matches(keyMsg, keys.esc) {
		m.errMsg = ""
		m.screen = screenMenu
	}
	return m, nil
}

// sessionLost reports whether err means the server no longer accepts the
// session, so the user has to log in again.
func sessionLost(err error) bool {
	return errors.Is(err, service.ErrTokenIsExpiredOrInvalid) ||
		errors.Is(err, service.ErrCredentialAbsent) ||
		errors.Is(err, service.ErrNotAuthenticated)
}

// endSession drops the session and leaves the main loop for the login flow.
func (m mainLoopModel) endSession(err error) (tea.Model, tea.Cmd) {
	m.errMsg = humanizeError(err)
	m.controller.Logout()
	m.logout = true
	return m, tea.Quit
}

func (m *mainLoopModel) setErr(err error) {
	if err != nil {
		m.errMsg = humanizeError(err)
		return
	}
	m.errMsg = ""
}

func (m mainLoopModel) startLoading(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.loading = true
	m.errMsg = ""
	return m, tea.Batch(m.spinner.Tick, cmd)
}

func (m mainLoopModel) updateMenu(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menuIdx > 0 {
			m.menuIdx--
		}
		return m, nil
	case key.Matches(keyMsg, keys.down):
		if m.menuIdx < len(mainMenuItems)-1 {
			m.menuIdx++
		}
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		return m.choose(mainMenuItems[m.menuIdx].action)
	}

	for i, item := range mainMenuItems {
		if keyMsg.String() == item.hotkey {
			m.menuIdx = i
			return m.choose(item.action)
		}
	}
	return m, nil
}

func (m mainLoopModel) choose(action menuAction) (tea.Model, tea.Cmd) {
	m.status = ""
	m.errMsg = ""

	switch action {
	case actionBalance:
		m.screen = screenBalance
		return m.startLoading(m.cmdLoadBalance())
	case actionTransfers:
		m.screen = screenTransfers
		return m.startLoading(m.cmdLoadTransfers())
	case actionPending:
		m.screen = screenComingSoon
		m.notice = "Viewing pending requests is coming soon."
		return m, nil
	case actionSend:
		m.screen = screenSend
		m.resetSendForm()
		return m.startLoading(m.cmdLoadUsers())
	case actionRequest:
		m.screen = screenComingSoon
		m.notice = "Requesting TE bucks is coming soon."
		return m, nil
	case actionSwitchUser:
		m.controller.Logout()
		m.logout = true
		return m, tea.Quit
	case actionExit:
		return m, tea.Quit
	}
	return m, nil
}

func (m mainLoopModel) updateTransfers(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.transferIdx > 0 {
			m.transferIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.transferIdx < len(m.transfers)-1 {
			m.transferIdx++
		}
	case key.Matches(keyMsg, keys.refresh):
		return m.startLoading(m.cmdLoadTransfers())
	case key.Matches(keyMsg, keys.enter):
		if m.loading || len(m.transfers) == 0 {
			return m, nil
		}
		return m.startLoading(m.cmdLoadTransfer(m.transfers[m.transferIdx].TransferID))
	case key.Matches(keyMsg, keys.esc):
		m.errMsg = ""
		m.screen = screenMenu
	}
	return m, nil
}

func (m mainLoopModel) updateTransferDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopy(strconv.FormatInt(m.transfer.TransferID, 10))
	case key.Matches(keyMsg, keys.esc):
		m.errMsg = ""
		m.status = ""
		m.screen = screenTransfers
	}
	return m, nil
}

func (m mainLoopModel) updateSend(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.errMsg = ""
		m.resetSendForm()
		m.screen = screenMenu
		return m, nil
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
		m.setSendFocus(1 - m.sendFocus)
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.sending {
			return m, nil
		}
		if m.sendFocus == 0 {
			m.setSendFocus(1)
			return m, nil
		}
		return m.submitSend()
	}

	return m.updateSendInputs(keyMsg)
}

func (m mainLoopModel) updateSendInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.sendInputs[m.sendFocus], cmd = m.sendInputs[m.sendFocus].Update(msg)
	return m, cmd
}

// submitSend parses the form into typed values. Range checks such as a
// positive amount or a foreign recipient are left to the ledger client.
func (m mainLoopModel) submitSend() (tea.Model, tea.Cmd) {
	toUserID, err := strconv.ParseInt(strings.TrimSpace(m.sendInputs[0].Value()), 10, 64)
	if err != nil {
		m.errMsg = "Enter the numeric ID of the recipient."
		m.setSendFocus(0)
		return m, nil
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(m.sendInputs[1].Value()))
	if err != nil {
		m.errMsg = "Enter an amount such as 25.00."
		return m, nil
	}

	m.errMsg = ""
	m.sending = true
	return m, tea.Batch(m.spinner.Tick, m.cmdSend(toUserID, amount))
}

func (m *mainLoopModel) setSendFocus(i int) {
	m.sendInputs[m.sendFocus].Blur()
	m.sendFocus = i
	m.sendInputs[m.sendFocus].Focus()
}

func (m *mainLoopModel) resetSendForm() {
	for i := range m.sendInputs {
		m.sendInputs[i].SetValue("")
	}
	m.setSendFocus(0)
}

func (m mainLoopModel) cmdLoadBalance() tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		ledger, err := controller.Ledger()
		if err != nil {
			return balanceLoadedMsg{err: err}
		}
		balance, err := ledger.GetBalance(ctx)
		return balanceLoadedMsg{balance: balance, err: err}
	}
}

func (m mainLoopModel) cmdLoadTransfers() tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		ledger, err := controller.Ledger()
		if err != nil {
			return transfersLoadedMsg{err: err}
		}
		transfers, err := ledger.ListTransfers(ctx)
		return transfersLoadedMsg{transfers: transfers, err: err}
	}
}

func (m mainLoopModel) cmdLoadTransfer(transferID int64) tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		ledger, err := controller.Ledger()
		if err != nil {
			return transferLoadedMsg{err: err}
		}
		transfer, err := ledger.GetTransferDetail(ctx, transferID)
		return transferLoadedMsg{transfer: transfer, err: err}
	}
}

func (m mainLoopModel) cmdLoadUsers() tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		ledger, err := controller.Ledger()
		if err != nil {
			return usersLoadedMsg{err: err}
		}
		users, err := ledger.ListUsers(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m mainLoopModel) cmdSend(toUserID int64, amount decimal.Decimal) tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		transfer, err := controller.SendFunds(ctx, toUserID, amount)
		return transferSentMsg{transfer: transfer, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{text: text, err: writeClipboard(text)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func recipientName(t models.Transfer) string {
	if t.ToUsername != "" {
		return t.ToUsername
	}
	return "user " + strconv.FormatInt(t.ToUserID, 10)
}

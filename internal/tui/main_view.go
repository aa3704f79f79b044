package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ledger/models"
)

const createdAtLayout = "2006-01-02 15:04"

func (m mainLoopModel) View() string {
	var body, title, hotKeys string

	switch m.screen {
	case screenBalance:
		title, body, hotKeys = "BALANCE", m.viewBalance(), "r: refresh │ esc: back"
	case screenTransfers:
		title, body, hotKeys = "TRANSFERS", m.viewTransfers(), "enter: details │ ↑/↓: navigate │ r: refresh │ esc: back"
	case screenTransferDetail:
		title, body, hotKeys = "TRANSFER DETAILS", m.viewTransferDetail(), "c: copy ID │ esc: back"
	case screenSend:
		title, body, hotKeys = "SEND TE BUCKS", m.viewSend(), "tab: next field │ enter: send │ esc: cancel"
	case screenComingSoon:
		title, body, hotKeys = "COMING SOON", m.notice, "esc: back"
	default:
		title, body, hotKeys = "TENMO", m.viewMenu(), "enter: select │ ↑/↓: navigate │ 0-6: shortcut"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Logged in as %s (ID %d)\n\n", m.identity.Username, m.identity.UserID))
	b.WriteString(body)

	if m.loading || m.sending {
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...")
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(renderError(m.errMsg))
	}

	return renderPage(title, b.String(), hotKeys)
}

func (m mainLoopModel) viewMenu() string {
	var b strings.Builder
	for i, item := range mainMenuItems {
		cursor := " "
		if i == m.menuIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s: %s\n", cursor, item.hotkey, item.label))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) viewBalance() string {
	if m.loading {
		return ""
	}
	if m.errMsg != "" {
		return "Balance is unavailable."
	}
	return "Your current account balance is: " + money(m.balance.Balance)
}

func (m mainLoopModel) viewTransfers() string {
	if m.loading && len(m.transfers) == 0 {
		return ""
	}
	if len(m.transfers) == 0 {
		return "You have no transfers yet."
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-8s │ %-26s │ %12s\n", "ID", "From/To", "Amount"))
	b.WriteString("  " + strings.Repeat("─", 9) + "┼" + strings.Repeat("─", 28) + "┼" + strings.Repeat("─", 13) + "\n")

	for i, t := range m.transfers {
		cursor := " "
		if i == m.transferIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-8d │ %-26s │ %12s\n", cursor, t.TransferID, fitText(counterparty(t, m.identity.UserID), 26), money(t.Amount)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) viewTransferDetail() string {
	t := m.transfer

	rows := [][2]string{
		{"Id", fmt.Sprintf("%d", t.TransferID)},
		{"From", userLabel(t.FromUsername, t.FromUserID)},
		{"To", userLabel(t.ToUsername, t.ToUserID)},
		{"Type", string(t.Type)},
		{"Status", string(t.Status)},
		{"Amount", money(t.Amount)},
	}
	if !t.CreatedAt.IsZero() {
		rows = append(rows, [2]string{"Created", t.CreatedAt.Local().Format(createdAtLayout)})
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-8s │ %s\n", row[0], row[1]))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) viewSend() string {
	var b strings.Builder

	switch {
	case m.loading:
	case len(m.users) == 0:
		b.WriteString("There is nobody to send TE bucks to yet.\n")
	default:
		b.WriteString(fmt.Sprintf("%-8s │ %s\n", "User ID", "Name"))
		b.WriteString(strings.Repeat("─", 9) + "┼" + strings.Repeat("─", 28) + "\n")
		for _, u := range m.users {
			b.WriteString(fmt.Sprintf("%-8d │ %s\n", u.UserID, fitText(u.Username, 26)))
		}
	}

	b.WriteString("\nRecipient ID │ [")
	b.WriteString(m.sendInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Amount       │ [")
	b.WriteString(m.sendInputs[1].View())
	b.WriteString("]")

	return b.String()
}

// counterparty is the "From/To" column as seen by userID.
func counterparty(t models.Transfer, userID int64) string {
	if t.FromUserID == userID {
		return "To: " + userLabel(t.ToUsername, t.ToUserID)
	}
	return "From: " + userLabel(t.FromUsername, t.FromUserID)
}

func userLabel(username string, userID int64) string {
	if username == "" {
		return fmt.Sprintf("user %d", userID)
	}
	return username
}

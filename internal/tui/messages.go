package tui

import "github.com/MKhiriev/go-ledger/models"

// NavigateTo switches the root model to Page. A non-nil Payload is delivered
// to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult finishes the login screen's async call.
type LoginResult struct {
	Identity models.Identity
	Username string
	Err      error
}

// RegisterResult finishes the register screen's async call.
type RegisterResult struct {
	Username string
	Err      error
}

// RegisterSuccessNotice is shown by the welcome menu after a registration.
type RegisterSuccessNotice struct {
	Username string
}

type balanceLoadedMsg struct {
	balance models.AccountBalance
	err     error
}

type transfersLoadedMsg struct {
	transfers []models.Transfer
	err       error
}

type transferLoadedMsg struct {
	transfer models.Transfer
	err      error
}

type usersLoadedMsg struct {
	users []models.UserSummary
	err   error
}

type transferSentMsg struct {
	transfer models.Transfer
	err      error
}

type copiedMsg struct {
	text string
	err  error
}

type clearStatusMsg struct{}

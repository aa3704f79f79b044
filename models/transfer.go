// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferType tells whether funds were pushed by the sender or pulled by a
// request from the recipient.
type TransferType string

const (
	TransferTypeRequest TransferType = "Request"
	TransferTypeSend    TransferType = "Send"
)

// TransferStatus is the lifecycle state of a transfer on the ledger service.
type TransferStatus string

const (
	TransferStatusPending  TransferStatus = "Pending"
	TransferStatusApproved TransferStatus = "Approved"
	TransferStatusRejected TransferStatus = "Rejected"
)

// Transfer is a directed movement of funds between two accounts. It is
// created by the ledger service; TransferID is always service-assigned and
// the record is immutable once accepted.
type Transfer struct {
	TransferID   int64           `json:"transferId"`
	FromUserID   int64           `json:"fromUserId"`
	ToUserID     int64           `json:"toUserId"`
	FromUsername string          `json:"fromUsername,omitempty"`
	ToUsername   string          `json:"toUsername,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Status       TransferStatus  `json:"status"`
	Type         TransferType    `json:"type"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Transfer model.
func (t Transfer) TableName() string {
	return "transfers"
}

// Involves reports whether userID is the sender or the recipient.
func (t Transfer) Involves(userID int64) bool {
	return t.FromUserID == userID || t.ToUserID == userID
}

// TransferRequest is the body of POST /transfers.
type TransferRequest struct {
	FromUserID int64           `json:"fromUserId"`
	ToUserID   int64           `json:"toUserId"`
	Amount     decimal.Decimal `json:"amount"`

	// IdempotencyKey travels in the Idempotency-Key header, not in the body.
	IdempotencyKey string `json:"-"`
}

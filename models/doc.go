// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the domain and wire types shared by the ledger client
// and the reference ledger server: users, identities, balances and transfers.
//
// Money is always [decimal.Decimal] from github.com/shopspring/decimal so that
// fractional currency amounts keep exact precision end to end.
package models

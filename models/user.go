// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the credential pair exchanged with the ledger service on register
// and login. The server side additionally fills UserID, PasswordHash and
// CreatedAt when it loads the record from storage.
type User struct {
	// UserID is the service-assigned account owner identifier.
	UserID int64 `json:"-"`

	// Username is the unique login name.
	Username string `json:"username"`

	// Password is the plain-text password as typed by the user. It travels
	// only in the register/login request body and is never persisted.
	Password string `json:"password,omitempty"`

	// PasswordHash is the encoded argon2id hash kept by the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserSummary is the public view of an account holder returned by the
// user listing.
type UserSummary struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

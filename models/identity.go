// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the logged-in user as seen by the client: who they are and the
// bearer credential proving it to the ledger service.
type Identity struct {
	UserID     int64
	Username   string
	Credential string
}

// LoginResponse is the body returned by POST /login.
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// Identity converts the login reply into a client-side [Identity].
func (r LoginResponse) Identity() Identity {
	return Identity{
		UserID:     r.UserID,
		Username:   r.Username,
		Credential: r.Token,
	}
}

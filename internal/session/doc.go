// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the per-process authentication state of the ledger
// client: the [CredentialStore] with the current bearer token and the
// [Session] that pairs it with the logged-in identity.
//
// A Session is created once by the client runtime and passed by pointer into
// the authenticator and the ledger client, so both read and write the same
// credential without package-level globals.
package session

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It alternates the login flow and the main menu of the terminal UI over a
// single session until the user exits.
package client

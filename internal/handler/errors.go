// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration has no HTTP address, so there is nothing to serve. The server
// treats it as a fatal misconfiguration.
var errNoHandlersAreCreated = errors.New("no handlers are created")

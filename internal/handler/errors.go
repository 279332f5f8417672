// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when there is no
// backend to serve or no listen address to serve it on.
var errNoHandlersAreCreated = errors.New("no handlers are created")

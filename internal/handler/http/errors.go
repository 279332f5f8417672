// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidPathParam is reported when a {page} or {id} segment is not
	// an integer.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrMissingCredentials is reported when the login form lacks a
	// username or password.
	ErrMissingCredentials = errors.New("username and password are required")
)

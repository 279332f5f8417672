// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import "errors"

// Envelope error codes reported by the server.
const (
	CodeSuccess   = 0
	CodeFailed    = -1
	CodeNeedLogin = -1001
)

var (
	ErrWrongCredentials = errors.New("username or password is incorrect")
	ErrNeedLogin        = errors.New("please login first")
	ErrArticleNotFound  = errors.New("article not found")
	ErrInvalidPage      = errors.New("invalid page")
)

// Code maps err to the envelope error code it is reported with.
func Code(err error) int {
	switch {
	case err == nil:
		return CodeSuccess
	case errors.Is(err, ErrNeedLogin):
		return CodeNeedLogin
	default:
		return CodeFailed
	}
}

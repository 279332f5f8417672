package service

import "errors"

var (
	ErrNoStoredCredentials = errors.New("no stored credentials to log in with")
	ErrNotLoggedIn         = errors.New("not logged in")
	ErrRefreshFailed       = errors.New("token refresh failed")
	ErrBodyNotReplayable   = errors.New("request body cannot be replayed")
	ErrSessionExpired      = errors.New("session expired, please log in again")
	ErrSavingCredential    = errors.New("error saving credential")
)

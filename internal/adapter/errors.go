package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrTransport           = errors.New("transport error")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrDecodeResponse      = errors.New("cannot decode response")
	ErrMissingToken        = errors.New("login response carries no token")
	ErrRefreshUnavailable  = errors.New("token refresh unavailable")
)

// DomainError is a business failure reported in the response envelope.
type DomainError struct {
	Code    int
	Message string
}

func (e *DomainError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error code %d", e.Code)
	}
	return fmt.Sprintf("server error code %d: %s", e.Code, e.Message)
}

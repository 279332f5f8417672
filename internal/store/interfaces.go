package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CookieRepository persists the encoded cookie set of every request host.
type CookieRepository interface {
	// GetHost returns the payload of host. ok is false when the host has no
	// entry.
	GetHost(ctx context.Context, host string) (payload []byte, ok bool, err error)
	// ListHosts returns every host with an entry.
	ListHosts(ctx context.Context) ([]string, error)
	// PutHost creates or replaces the entry of host.
	PutHost(ctx context.Context, host string, payload []byte) error
	// DeleteHosts removes the given hosts. With no hosts it removes all.
	DeleteHosts(ctx context.Context, hosts ...string) error
}

// CredentialRepository persists the sealed credential values by key.
// Writes are atomic: either every value of a call is applied or none is.
type CredentialRepository interface {
	GetAll(ctx context.Context, keys []string) (map[string][]byte, error)
	PutAll(ctx context.Context, values map[string][]byte) error
	DeleteAll(ctx context.Context, keys []string) error
}

// Package storetest provides in-memory repositories for tests of packages
// built on top of the stores.
package storetest

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// CookieRepository is an in-memory cookie repository. Err, when set, is
// returned by every call.
type CookieRepository struct {
	mu      sync.Mutex
	entries map[string][]byte
	Err     error
	Puts    int
}

// NewCookieRepository returns an empty repository.
func NewCookieRepository() *CookieRepository {
	return &CookieRepository{entries: make(map[string][]byte)}
}

func (r *CookieRepository) GetHost(_ context.Context, host string) ([]byte, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, false, r.Err
	}
	payload, ok := r.entries[host]
	return slices.Clone(payload), ok, nil
}

func (r *CookieRepository) ListHosts(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return slices.Sorted(maps.Keys(r.entries)), nil
}

func (r *CookieRepository) PutHost(_ context.Context, host string, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.entries[host] = slices.Clone(payload)
	r.Puts++
	return nil
}

func (r *CookieRepository) DeleteHosts(_ context.Context, hosts ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if len(hosts) == 0 {
		clear(r.entries)
		return nil
	}
	for _, h := range hosts {
		delete(r.entries, h)
	}
	return nil
}

// Raw returns the stored payload of host.
func (r *CookieRepository) Raw(host string) ([]byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payload, ok := r.entries[host]
	return payload, ok
}

// SetRaw stores payload for host as is.
func (r *CookieRepository) SetRaw(host string, payload []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[host] = payload
}

// CredentialRepository is an in-memory credential repository.
type CredentialRepository struct {
	mu     sync.Mutex
	values map[string][]byte
	Err    error
}

// NewCredentialRepository returns an empty repository.
func NewCredentialRepository() *CredentialRepository {
	return &CredentialRepository{values: make(map[string][]byte)}
}

func (r *CredentialRepository) GetAll(_ context.Context, keys []string) (map[string][]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		if v, ok := r.values[k]; ok {
			out[k] = slices.Clone(v)
		}
	}
	return out, nil
}

func (r *CredentialRepository) PutAll(_ context.Context, values map[string][]byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for k, v := range values {
		r.values[k] = slices.Clone(v)
	}
	return nil
}

func (r *CredentialRepository) DeleteAll(_ context.Context, keys []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, k := range keys {
		delete(r.values, k)
	}
	return nil
}

// Len returns the number of stored values.
func (r *CredentialRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// SetRaw stores value under key as is.
func (r *CredentialRepository) SetRaw(key string, value []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
}

// KeyChain is a reversible, non-secret key chain for tests. Blobs are the
// plaintext prefixed with "sealed:".
type KeyChain struct{}

func (KeyChain) Seal(plaintext []byte) ([]byte, error) {
	return append([]byte("sealed:"), plaintext...), nil
}

func (KeyChain) Open(blob []byte) ([]byte, error) {
	const prefix = "sealed:"
	if len(blob) < len(prefix) || string(blob[:len(prefix)]) != prefix {
		return nil, ErrNotSealed
	}
	return slices.Clone(blob[len(prefix):]), nil
}

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-feed-client/internal/crypto"
	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/models"
)

// Storage keys of the credential bundle.
const (
	KeyAuthToken = "auth_token"
	KeyUserID    = "user_id"
	KeyUsername  = "username"
	KeyPassword  = "password"
)

var credentialKeys = []string{KeyAuthToken, KeyUserID, KeyUsername, KeyPassword}

// AuthTokenStore persists the credential bundle encrypted at rest and keeps
// an in-memory snapshot for synchronous reads from request interceptors.
//
// The snapshot always mirrors the last committed write. Save and Clear are
// serialized with each other; peeks never block on storage I/O.
type AuthTokenStore struct {
	repo   CredentialRepository
	keys   crypto.KeyChain
	logger *logger.Logger

	writeMu sync.Mutex

	mu         sync.RWMutex
	snapshot   models.Credential
	generation uint64
}

// NewAuthTokenStore builds a store on top of repo. Values are sealed with
// keys before they are written.
func NewAuthTokenStore(repo CredentialRepository, keys crypto.KeyChain, log *logger.Logger) *AuthTokenStore {
	return &AuthTokenStore{
		repo:   repo,
		keys:   keys,
		logger: log,
	}
}

// Load hydrates the snapshot from storage. It is called once at start-up,
// before the first peek.
func (s *AuthTokenStore) Load(ctx context.Context) error {
	_, err := s.Credential(ctx)
	return err
}

// Save persists every field of c in one transaction.
func (s *AuthTokenStore) Save(ctx context.Context, c models.Credential) error {
	if !c.IsComplete() {
		return ErrIncompleteCredential
	}

	values := map[string]string{
		KeyAuthToken: c.Token,
		KeyUserID:    c.UserID,
		KeyUsername:  c.Username,
		KeyPassword:  c.Password,
	}

	sealed := make(map[string][]byte, len(values))
	for key, value := range values {
		blob, err := s.keys.Seal([]byte(value))
		if err != nil {
			return fmt.Errorf("error sealing %s: %w", key, err)
		}
		sealed[key] = blob
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.repo.PutAll(ctx, sealed); err != nil {
		return fmt.Errorf("error saving credential: %w", err)
	}

	s.replaceSnapshot(c)
	s.logger.Debug().Str("func", "AuthTokenStore.Save").Str("user_id", c.UserID).Msg("credential saved")

	return nil
}

// Clear removes every field in one transaction.
func (s *AuthTokenStore) Clear(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.repo.DeleteAll(ctx, credentialKeys); err != nil {
		return fmt.Errorf("error clearing credential: %w", err)
	}

	s.replaceSnapshot(models.Credential{})
	s.logger.Debug().Str("func", "AuthTokenStore.Clear").Msg("credential cleared")

	return nil
}

// Credential reads the bundle through storage and refreshes the snapshot.
// Undecryptable or partial data resets the store and yields an empty
// credential.
func (s *AuthTokenStore) Credential(ctx context.Context) (models.Credential, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	stored, err := s.repo.GetAll(ctx, credentialKeys)
	if err != nil {
		return models.Credential{}, fmt.Errorf("error reading credential: %w", err)
	}

	c, err := s.open(stored)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "AuthTokenStore.Credential").
			Msg("resetting corrupted credential store")

		if err := s.repo.DeleteAll(ctx, credentialKeys); err != nil {
			return models.Credential{}, fmt.Errorf("error resetting credential: %w", err)
		}
		s.replaceSnapshot(models.Credential{})
		return models.Credential{}, nil
	}

	s.setSnapshot(c)
	return c, nil
}

// IsLoggedIn reports whether storage holds a token and a user id. The token
// is not validated.
func (s *AuthTokenStore) IsLoggedIn(ctx context.Context) (bool, error) {
	c, err := s.Credential(ctx)
	if err != nil {
		return false, err
	}
	return c.IsLoggedIn(), nil
}

// PeekCredential returns the in-memory snapshot.
func (s *AuthTokenStore) PeekCredential() models.Credential {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// PeekToken returns the cached token, or "" when none is stored.
func (s *AuthTokenStore) PeekToken() string {
	return s.PeekCredential().Token
}

// PeekUserID returns the cached user id.
func (s *AuthTokenStore) PeekUserID() string {
	return s.PeekCredential().UserID
}

// PeekUsername returns the cached username.
func (s *AuthTokenStore) PeekUsername() string {
	return s.PeekCredential().Username
}

// PeekPassword returns the cached password.
func (s *AuthTokenStore) PeekPassword() string {
	return s.PeekCredential().Password
}

// Generation counts the writes that replaced the bundle. Reads through
// storage leave it unchanged unless they had to reset corrupted data.
func (s *AuthTokenStore) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

func (s *AuthTokenStore) setSnapshot(c models.Credential) {
	s.mu.Lock()
	s.snapshot = c
	s.mu.Unlock()
}

func (s *AuthTokenStore) replaceSnapshot(c models.Credential) {
	s.mu.Lock()
	s.snapshot = c
	s.generation++
	s.mu.Unlock()
}

// open decrypts the stored values. An empty map is a valid empty
// credential; anything between empty and complete is corruption.
func (s *AuthTokenStore) open(stored map[string][]byte) (models.Credential, error) {
	if len(stored) == 0 {
		return models.Credential{}, nil
	}

	plain := make(map[string]string, len(stored))
	for _, key := range credentialKeys {
		blob, ok := stored[key]
		if !ok {
			return models.Credential{}, fmt.Errorf("%w: missing %s", ErrCorruptedState, key)
		}

		value, err := s.keys.Open(blob)
		if err != nil {
			if errors.Is(err, crypto.ErrCorruptedBlob) {
				return models.Credential{}, fmt.Errorf("%w: %s: %v", ErrCorruptedState, key, err)
			}
			return models.Credential{}, err
		}
		plain[key] = string(value)
	}

	c := models.Credential{
		Token:    plain[KeyAuthToken],
		UserID:   plain[KeyUserID],
		Username: plain[KeyUsername],
		Password: plain[KeyPassword],
	}
	if !c.IsComplete() {
		return models.Credential{}, fmt.Errorf("%w: empty field", ErrCorruptedState)
	}

	return c, nil
}

package crypto

import "errors"

var (
	// ErrCorruptedBlob is returned by [KeyChain.Open] for blobs that are
	// truncated, tampered with or sealed under another key.
	ErrCorruptedBlob = errors.New("corrupted sealed blob")
	// ErrEmptySecret is returned when a key chain is built without a secret.
	ErrEmptySecret = errors.New("empty key chain secret")
)

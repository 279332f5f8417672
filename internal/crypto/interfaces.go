package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain seals values before they are written to local storage and opens
// them when they are read back. It knows nothing about what it protects.
//
// Sealed blobs have the layout nonce || ciphertext and are authenticated, so
// a blob written under a different key, or modified on disk, fails to open.
type KeyChain interface {
	// Seal encrypts plaintext with a fresh random nonce.
	Seal(plaintext []byte) ([]byte, error)

	// Open decrypts a blob produced by Seal. It returns [ErrCorruptedBlob]
	// when the blob is truncated or fails authentication.
	Open(blob []byte) ([]byte, error)
}

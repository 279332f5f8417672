// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters recommended by OWASP (2024).
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024 // 64 MiB
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32 // 256 bits
)

// keyChain is the AES-256-GCM implementation of [KeyChain].
type keyChain struct {
	aead cipher.AEAD
}

// NewKeyChain derives a 256-bit key from secret and salt with Argon2id and
// returns a [KeyChain] sealing with AES-256-GCM under that key.
//
// Derivation is deterministic, so the same secret and salt open blobs sealed
// by a previous process.
func NewKeyChain(secret, salt string) (KeyChain, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := DeriveKey(secret, []byte(salt))
	return newKeyChain(key)
}

// DeriveKey derives a 256-bit key from secret and salt using Argon2id.
func DeriveKey(secret string, salt []byte) []byte {
	return argon2.IDKey([]byte(secret), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

func newKeyChain(key []byte) (*keyChain, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &keyChain{aead: gcm}, nil
}

// Seal implements [KeyChain].
func (k *keyChain) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, k.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return k.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open implements [KeyChain].
func (k *keyChain) Open(blob []byte) ([]byte, error) {
	nonceSize := k.aead.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrCorruptedBlob)
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := k.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedBlob, err)
	}

	return plaintext, nil
}

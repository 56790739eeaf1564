// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

var (
	// ErrEmptySecret is returned by NewSealer when no secret is configured.
	ErrEmptySecret = errors.New("sealer secret is empty")
	// ErrOpenFailed is returned by Open for any blob that does not
	// authenticate under the current key.
	ErrOpenFailed = errors.New("cannot open sealed value")
)

// keySalt domain-separates the storage key from other uses of the secret.
// It is fixed so the same secret yields the same key across runs.
var keySalt = []byte("health-panda/credentials")

// sealer is the private implementation of [Sealer] using XChaCha20-Poly1305
// with a key derived by Argon2id.
type sealer struct {
	aead cipher.AEAD
}

// NewSealer derives a 256-bit key from secret with Argon2id
// (1 iteration, 64 MiB, 4 threads) and returns a [Sealer] using it.
func NewSealer(secret string) (Sealer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := argon2.IDKey([]byte(secret), keySalt, 1, 64*1024, 4, chacha20poly1305.KeySize)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	return &sealer{aead: aead}, nil
}

// Seal implements [Sealer].
func (s *sealer) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return s.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open implements [Sealer].
func (s *sealer) Open(blob []byte) ([]byte, error) {
	nonceSize := s.aead.NonceSize()
	if len(blob) < nonceSize+s.aead.Overhead() {
		return nil, ErrOpenFailed
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}

	return plaintext, nil
}

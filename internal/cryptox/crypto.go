// Package cryptox provides the key derivation and record sealing used by the
// encrypted key-value store wrapper.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// ErrRecordTooShort indicates a sealed record that cannot even hold a nonce.
var ErrRecordTooShort = errors.New("sealed record too short")

// DeriveKey derives a 32-byte AES key from a secret and a per-store salt
// using argon2id.
func DeriveKey(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}

// Seal encrypts plaintext with AES-256-GCM under key and returns
// nonce||ciphertext. A fresh random nonce is generated per call.
func Seal(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return append(nonce, aesgcm.Seal(nil, nonce, plaintext, nil)...), nil
}

// Open decrypts a record produced by Seal. It fails if the key is wrong or
// the record was tampered with.
func Open(key, sealed []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}

	if len(sealed) < aesgcm.NonceSize() {
		return nil, ErrRecordTooShort
	}
	nonce, ciphertext := sealed[:aesgcm.NonceSize()], sealed[aesgcm.NonceSize():]

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("open sealed record: %w", err)
	}
	return plaintext, nil
}

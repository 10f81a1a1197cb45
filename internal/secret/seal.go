// Package secret seals stored tokens with a per-user key so secrets are
// never written to disk in the clear.
package secret

import (
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/nacl/secretbox"
)

const keySize = 32

var (
	// ErrCorruptSecret is returned when sealed data cannot be opened
	ErrCorruptSecret = errors.New("sealed secret is corrupt or key mismatch")
)

// Sealer encrypts and decrypts short secrets with a symmetric key.
type Sealer struct {
	key [keySize]byte
}

// LoadOrCreate loads the key file at path, generating a new key on first
// use. The key file is written with owner-only permissions.
func LoadOrCreate(path string) (*Sealer, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) != keySize {
			return nil, fmt.Errorf("key file %s has unexpected size %d", path, len(data))
		}

		s := &Sealer{}
		copy(s.key[:], data)

		return s, nil
	}

	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read key file %s: %w", path, err)
	}

	s := &Sealer{}
	if _, err := rand.Read(s.key[:]); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create key directory: %w", err)
	}

	if err := os.WriteFile(path, s.key[:], 0600); err != nil {
		return nil, fmt.Errorf("failed to write key file %s: %w", path, err)
	}

	return s, nil
}

// Seal encrypts plain and returns nonce-prefixed ciphertext.
func (s *Sealer) Seal(plain string) ([]byte, error) {
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return secretbox.Seal(nonce[:], []byte(plain), &nonce, &s.key), nil
}

// Open decrypts data produced by Seal.
func (s *Sealer) Open(data []byte) (string, error) {
	if len(data) < 24 {
		return "", ErrCorruptSecret
	}

	var nonce [24]byte
	copy(nonce[:], data[:24])

	plain, ok := secretbox.Open(nil, data[24:], &nonce, &s.key)
	if !ok {
		return "", ErrCorruptSecret
	}

	return string(plain), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bonitasoft Labs

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// seal encrypts plaintext with AES-256-GCM under key and nonce. The
// returned blob is ciphertext with the 16-byte authentication tag appended.
// Zero-length plaintext is valid and produces a tag-only blob.
func seal(key, nonce, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// open decrypts a sealed blob produced by seal and verifies its
// authentication tag. A tag mismatch almost always means the key was
// derived from the wrong master password, so the failure is reported as
// ErrWrongMasterPassword rather than a generic cipher error.
func open(key, nonce, sealed []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrongMasterPassword, err)
	}

	return plaintext, nil
}

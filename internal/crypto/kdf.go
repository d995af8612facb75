// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bonitasoft Labs

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Argon2id work factor, the OWASP (2024) recommendation:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//
// The cost is a fixed, process-wide constant: decryption re-derives the
// same key from the salt embedded in the envelope, so the parameters must
// not vary per call.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024 // 64 MiB
	argonThreads = 4
)

// deriveKey derives the 256-bit encryption key from the master password and
// salt using Argon2id. Deterministic: the same (password, salt) pair always
// yields the same key. Panics on a salt of the wrong length, which can only
// be a programming error here since salts either come from newSalt or from
// a size-checked envelope.
func deriveKey(masterPassword string, salt []byte) []byte {
	if len(salt) != saltSize {
		panic(fmt.Sprintf("crypto: salt must be %d bytes, got %d", saltSize, len(salt)))
	}
	return argon2.IDKey([]byte(masterPassword), salt, argonTime, argonMemory, argonThreads, keySize)
}

// newSalt reads a fresh 16-byte key-derivation salt from the OS CSPRNG.
// The salt is not a secret; it travels in the clear inside the envelope.
func newSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// newNonce reads a fresh 12-byte GCM nonce from the OS CSPRNG. A nonce is
// never reused: every encryption call draws a new one.
func newNonce() ([]byte, error) {
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return nonce, nil
}

// wipe overwrites key material no longer needed. Best effort under a
// garbage-collected runtime, but keeps derived keys from outliving the call
// that produced them.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bonitasoft Labs

// Package crypto implements password-based symmetric encryption for secrets
// at rest, such as stored datasource passwords.
//
// Pipeline:
//
//	key      = Argon2id(masterPassword, salt)      (fresh salt per encryption)
//	sealed   = AES-256-GCM(key, nonce, plaintext)  (fresh nonce per encryption)
//	envelope = Base64(salt ‖ nonce ‖ sealed)
//
// The master password is the single shared secret; everything needed to
// re-derive the key travels inside the envelope.
package crypto

import "strings"

// MasterPasswordEnvVar is the name of the environment variable holding the
// master password.
const MasterPasswordEnvVar = "MASTER_BONITA_PWD"

// StaticSource is a SecretSource holding a fixed in-memory master password.
// Used when the password has already been resolved at the configuration
// boundary, and in tests.
type StaticSource string

// MasterPassword implements [SecretSource].
func (s StaticSource) MasterPassword() string { return string(s) }

// vault is the private implementation of [Vault].
type vault struct {
	source SecretSource
}

// NewVault constructs a [Vault] resolving the master password from source
// on every operation that needs it. source may be nil, in which case the
// zero-argument operations fail with [ErrMasterPasswordNotSet] and only the
// *WithPassword variants are usable.
func NewVault(source SecretSource) Vault {
	return &vault{source: source}
}

// Encrypt implements [Vault].
func (v *vault) Encrypt(plaintext string) (string, error) {
	masterPassword, err := v.resolveMasterPassword()
	if err != nil {
		return "", err
	}
	return v.EncryptWithPassword(plaintext, masterPassword)
}

// Decrypt implements [Vault]. The input is validated before the master
// password is resolved, so blank input is reported as such even when the
// password is unconfigured.
func (v *vault) Decrypt(encryptedText string) (string, error) {
	if strings.TrimSpace(encryptedText) == "" {
		return "", ErrEmptyEncryptedText
	}

	masterPassword, err := v.resolveMasterPassword()
	if err != nil {
		return "", err
	}
	return v.DecryptWithPassword(encryptedText, masterPassword)
}

// EncryptWithPassword implements [Vault]. Every call draws a fresh salt and
// nonce, so encrypting the same plaintext twice yields different envelopes.
func (v *vault) EncryptWithPassword(plaintext, masterPassword string) (string, error) {
	salt, err := newSalt()
	if err != nil {
		return "", err
	}

	nonce, err := newNonce()
	if err != nil {
		return "", err
	}

	key := deriveKey(masterPassword, salt)
	defer wipe(key)

	sealed, err := seal(key, nonce, []byte(plaintext))
	if err != nil {
		return "", err
	}

	return encodeEnvelope(salt, nonce, sealed), nil
}

// DecryptWithPassword implements [Vault].
func (v *vault) DecryptWithPassword(encryptedText, masterPassword string) (string, error) {
	if strings.TrimSpace(encryptedText) == "" {
		return "", ErrEmptyEncryptedText
	}

	salt, nonce, sealed, err := decodeEnvelope(encryptedText)
	if err != nil {
		return "", err
	}

	key := deriveKey(masterPassword, salt)
	defer wipe(key)

	plaintext, err := open(key, nonce, sealed)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// IsEncrypted implements [Vault].
func (v *vault) IsEncrypted(text string) bool {
	return IsEncrypted(text)
}

// EncryptIfNeeded implements [Vault]. Blank input and values that already
// look encrypted pass through unchanged, making re-encryption of mixed
// plaintext/ciphertext configuration idempotent.
func (v *vault) EncryptIfNeeded(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	if IsEncrypted(text) {
		return text, nil
	}

	return v.Encrypt(text)
}

// DecryptIfNeeded implements [Vault]. This is the only operation that
// absorbs failures: a value that merely looks like Base64 but is not a
// genuine envelope comes back unchanged instead of raising an error.
func (v *vault) DecryptIfNeeded(text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	if !IsEncrypted(text) {
		return text
	}

	plaintext, err := v.Decrypt(text)
	if err != nil {
		return text
	}

	return plaintext
}

// IsMasterPasswordConfigured implements [Vault]. A present but all-blank
// value counts as unconfigured.
func (v *vault) IsMasterPasswordConfigured() bool {
	return v.source != nil && strings.TrimSpace(v.source.MasterPassword()) != ""
}

func (v *vault) resolveMasterPassword() (string, error) {
	if v.source == nil {
		return "", ErrMasterPasswordNotSet
	}

	masterPassword := v.source.MasterPassword()
	if strings.TrimSpace(masterPassword) == "" {
		return "", ErrMasterPasswordNotSet
	}

	return masterPassword, nil
}

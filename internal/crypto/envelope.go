// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bonitasoft Labs

package crypto

import (
	"encoding/base64"
	"fmt"
)

// Envelope layout: salt ‖ nonce ‖ ciphertext+tag, Base64 (standard
// alphabet) as the transport encoding. The byte layout is private to this
// build; only the round-trip is guaranteed.
const (
	saltSize  = 16
	nonceSize = 12
	keySize   = 32 // 256 bits
	tagSize   = 16 // AES-GCM authentication tag

	// minEnvelopeSize is the decoded size of an envelope carrying an empty
	// plaintext: salt + nonce + tag alone.
	minEnvelopeSize = saltSize + nonceSize + tagSize
)

// MinEncryptedLength is the length of the shortest possible genuine
// envelope as Base64 text (a 44-byte envelope encodes to 60 characters).
// Anything shorter can never be an encrypted value.
const MinEncryptedLength = 60

// encodeEnvelope serializes the envelope parts into the transport string.
// sealed is the ciphertext with the authentication tag appended, as
// produced by seal.
func encodeEnvelope(salt, nonce, sealed []byte) string {
	blob := make([]byte, 0, len(salt)+len(nonce)+len(sealed))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, sealed...)
	return base64.StdEncoding.EncodeToString(blob)
}

// decodeEnvelope splits a transport string back into salt, nonce and sealed
// ciphertext. Returns ErrInvalidBase64 when text is not valid Base64 and
// ErrTooShort when the decoded blob cannot contain all three parts.
func decodeEnvelope(text string) (salt, nonce, sealed []byte, err error) {
	blob, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}

	if len(blob) < minEnvelopeSize {
		return nil, nil, nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrTooShort, len(blob), minEnvelopeSize)
	}

	return blob[:saltSize], blob[saltSize : saltSize+nonceSize], blob[saltSize+nonceSize:], nil
}

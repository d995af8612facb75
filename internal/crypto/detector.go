// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bonitasoft Labs

package crypto

import "strings"

// IsEncrypted reports whether text looks like an encrypted envelope: at
// least MinEncryptedLength characters, all of them from the standard Base64
// alphabet (A–Z, a–z, 0–9, +, /, =). Blank input is never encrypted.
//
// This is a deliberate heuristic, not a format check: it never decodes the
// text, and a sufficiently long plaintext that happens to look like Base64
// will be misclassified. Callers of EncryptIfNeeded/DecryptIfNeeded rely on
// this permissive shape check to handle configuration values that arrive
// either as plaintext or as previously encrypted text, so do not tighten it.
func IsEncrypted(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	if len(text) < MinEncryptedLength {
		return false
	}

	for i := 0; i < len(text); i++ {
		if !isBase64Char(text[i]) {
			return false
		}
	}

	return true
}

func isBase64Char(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '+' || c == '/' || c == '=':
		return true
	}
	return false
}

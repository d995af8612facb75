package crypto_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/bonitasoft-labs/passvault/internal/crypto"
	"github.com/bonitasoft-labs/passvault/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testMasterPassword = "TestMasterPassword123!"

func newTestVault() crypto.Vault {
	return crypto.NewVault(crypto.StaticSource(testMasterPassword))
}

// ── Round trips ──────────────────────────────────────────────────────────────

func TestVault_RoundTripWithPassword(t *testing.T) {
	v := crypto.NewVault(nil)

	tests := []struct {
		name      string
		plaintext string
	}{
		{"simple", "mySecretPassword123"},
		{"empty", ""},
		{"whitespace only", "   \t  "},
		{"unicode", "pässwörd-密码-🔑"},
		{"very long", strings.Repeat("datasource-password-", 2000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted, err := v.EncryptWithPassword(tt.plaintext, testMasterPassword)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(encrypted), crypto.MinEncryptedLength)

			decrypted, err := v.DecryptWithPassword(encrypted, testMasterPassword)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, decrypted)
		})
	}
}

func TestVault_EncryptIsNonDeterministic(t *testing.T) {
	v := crypto.NewVault(nil)

	e1, err := v.EncryptWithPassword("same plaintext", testMasterPassword)
	require.NoError(t, err)
	e2, err := v.EncryptWithPassword("same plaintext", testMasterPassword)
	require.NoError(t, err)

	assert.NotEqual(t, e1, e2, "fresh salt and nonce must make envelopes differ")

	d1, err := v.DecryptWithPassword(e1, testMasterPassword)
	require.NoError(t, err)
	d2, err := v.DecryptWithPassword(e2, testMasterPassword)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestVault_DecryptWithWrongPasswordFails(t *testing.T) {
	v := crypto.NewVault(nil)

	encrypted, err := v.EncryptWithPassword("mySecretPassword123", testMasterPassword)
	require.NoError(t, err)

	_, err = v.DecryptWithPassword(encrypted, "WrongPassword!")
	require.ErrorIs(t, err, crypto.ErrWrongMasterPassword)
}

func TestVault_ExampleScenario(t *testing.T) {
	v := crypto.NewVault(nil)

	encrypted, err := v.EncryptWithPassword("mySecretPassword123", testMasterPassword)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(encrypted), 60)
	assert.True(t, v.IsEncrypted(encrypted))

	decrypted, err := v.DecryptWithPassword(encrypted, testMasterPassword)
	require.NoError(t, err)
	assert.Equal(t, "mySecretPassword123", decrypted)
}

// ── Zero-argument operations ─────────────────────────────────────────────────

func TestVault_EncryptDecryptWithConfiguredSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock.NewMockSecretSource(ctrl)
	source.EXPECT().MasterPassword().Return(testMasterPassword).AnyTimes()

	v := crypto.NewVault(source)

	encrypted, err := v.Encrypt("db-password")
	require.NoError(t, err)

	decrypted, err := v.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "db-password", decrypted)
}

func TestVault_UnconfiguredMasterPassword(t *testing.T) {
	tests := []struct {
		name   string
		source crypto.SecretSource
	}{
		{"nil source", nil},
		{"empty value", crypto.StaticSource("")},
		{"blank value", crypto.StaticSource("   ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := crypto.NewVault(tt.source)

			_, err := v.Encrypt("anything")
			require.ErrorIs(t, err, crypto.ErrMasterPasswordNotSet)
			assert.Contains(t, err.Error(), crypto.MasterPasswordEnvVar)

			_, err = v.Decrypt(strings.Repeat("A", crypto.MinEncryptedLength))
			require.ErrorIs(t, err, crypto.ErrMasterPasswordNotSet)

			assert.False(t, v.IsMasterPasswordConfigured())
		})
	}
}

func TestVault_IsMasterPasswordConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock.NewMockSecretSource(ctrl)
	source.EXPECT().MasterPassword().Return(testMasterPassword)

	v := crypto.NewVault(source)
	assert.True(t, v.IsMasterPasswordConfigured())
}

// ── Input validation and malformed envelopes ─────────────────────────────────

func TestVault_DecryptRejectsBlankInput(t *testing.T) {
	v := newTestVault()

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := v.Decrypt(text)
		require.ErrorIs(t, err, crypto.ErrEmptyEncryptedText)

		_, err = v.DecryptWithPassword(text, testMasterPassword)
		require.ErrorIs(t, err, crypto.ErrEmptyEncryptedText)
	}
}

func TestVault_DecryptRejectsInvalidBase64(t *testing.T) {
	v := newTestVault()

	_, err := v.Decrypt("not-valid-base64!!!")
	require.ErrorIs(t, err, crypto.ErrInvalidBase64)
	assert.Contains(t, err.Error(), "Base64")
}

func TestVault_DecryptRejectsTooShortEnvelope(t *testing.T) {
	v := newTestVault()
	short := base64.StdEncoding.EncodeToString(make([]byte, 10))

	_, err := v.Decrypt(short)
	require.ErrorIs(t, err, crypto.ErrTooShort)
	assert.Contains(t, err.Error(), "too short")
}

// ── If-needed operations ─────────────────────────────────────────────────────

func TestVault_EncryptIfNeeded(t *testing.T) {
	v := newTestVault()

	// Blank input passes through untouched.
	for _, text := range []string{"", "  "} {
		got, err := v.EncryptIfNeeded(text)
		require.NoError(t, err)
		assert.Equal(t, text, got)
	}

	// Plaintext gets encrypted.
	encrypted, err := v.EncryptIfNeeded("plaintext-value")
	require.NoError(t, err)
	assert.NotEqual(t, "plaintext-value", encrypted)
	assert.True(t, v.IsEncrypted(encrypted))

	// Re-applying returns the already-encrypted value unchanged.
	again, err := v.EncryptIfNeeded(encrypted)
	require.NoError(t, err)
	assert.Equal(t, encrypted, again)

	decrypted, err := v.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "plaintext-value", decrypted)
}

func TestVault_DecryptIfNeeded(t *testing.T) {
	v := newTestVault()

	// Blank and plain values pass through untouched.
	assert.Equal(t, "", v.DecryptIfNeeded(""))
	assert.Equal(t, "short-plaintext", v.DecryptIfNeeded("short-plaintext"))

	// A genuine envelope is decrypted.
	encrypted, err := v.Encrypt("db-password")
	require.NoError(t, err)
	assert.Equal(t, "db-password", v.DecryptIfNeeded(encrypted))
}

func TestVault_DecryptIfNeededFallsBackOnFakeEnvelope(t *testing.T) {
	v := newTestVault()

	// Structurally valid Base64 of sufficient length, but not produced by
	// Encrypt: authentication fails and the input must come back unchanged.
	fake := base64.StdEncoding.EncodeToString(make([]byte, 45))
	require.True(t, v.IsEncrypted(fake))

	assert.Equal(t, fake, v.DecryptIfNeeded(fake))
}

func TestVault_DecryptIfNeededFallsBackOnBase64Lookalike(t *testing.T) {
	v := newTestVault()

	lookalike := strings.Repeat("JustAPlainConfigValue123", 3)
	require.True(t, v.IsEncrypted(lookalike))

	assert.Equal(t, lookalike, v.DecryptIfNeeded(lookalike))
}

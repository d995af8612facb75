package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// SecretSource resolves the master password from the calling environment.
// An empty or all-whitespace result means the password is not configured;
// implementations never fail, they return "" instead.
type SecretSource interface {
	// MasterPassword returns the configured master password, or "" when it
	// is absent. Called on every operation that needs the password, so an
	// implementation may read live configuration each time.
	MasterPassword() string
}

// Vault is the password-based encryption facade. All operations are
// stateless and safe for concurrent use.
//
// Encrypted values are single Base64 strings bundling a random salt, a
// random nonce, the ciphertext and the authentication tag. Two encryptions
// of the same plaintext always produce different strings; both decrypt back
// to the original.
type Vault interface {
	// Encrypt encrypts plaintext under the configured master password and
	// returns the encoded envelope. Returns [ErrMasterPasswordNotSet] when
	// no master password is configured. Empty plaintext is valid.
	Encrypt(plaintext string) (string, error)

	// Decrypt decodes and decrypts an envelope produced by Encrypt.
	// Returns [ErrEmptyEncryptedText] for blank input,
	// [ErrMasterPasswordNotSet] when unconfigured, [ErrInvalidBase64] or
	// [ErrTooShort] for malformed input, and [ErrWrongMasterPassword] when
	// the authentication tag does not verify.
	Decrypt(encryptedText string) (string, error)

	// EncryptWithPassword is Encrypt with an explicit master password,
	// bypassing the configured source.
	EncryptWithPassword(plaintext, masterPassword string) (string, error)

	// DecryptWithPassword is Decrypt with an explicit master password.
	// Decrypting with a password different from the one used to encrypt
	// fails with [ErrWrongMasterPassword].
	DecryptWithPassword(encryptedText, masterPassword string) (string, error)

	// IsEncrypted reports whether text looks like an encrypted envelope.
	// Purely structural, see [IsEncrypted].
	IsEncrypted(text string) bool

	// EncryptIfNeeded encrypts text unless it is blank or already looks
	// encrypted, in which case it is returned unchanged. Never
	// double-encrypts.
	EncryptIfNeeded(text string) (string, error)

	// DecryptIfNeeded decrypts text when it looks encrypted and returns it
	// unchanged otherwise. Any decryption failure is swallowed and the
	// original input returned: values that merely look like Base64 are
	// treated as plaintext.
	DecryptIfNeeded(text string) string

	// IsMasterPasswordConfigured reports whether a non-blank master
	// password is available. Never fails.
	IsMasterPasswordConfigured() bool
}

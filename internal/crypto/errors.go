package crypto

import "errors"

// Failure modes of the encryption facade. Callers classify errors with
// [errors.Is]; wrapped causes (e.g. the base64 decoder error) are carried in
// the message.
var (
	// ErrMasterPasswordNotSet is returned by the zero-argument operations
	// when the master password cannot be resolved from configuration.
	ErrMasterPasswordNotSet = errors.New("master password is not set: configure the " + MasterPasswordEnvVar + " environment variable")

	// ErrEmptyEncryptedText is returned by Decrypt when the input is empty
	// or contains only whitespace.
	ErrEmptyEncryptedText = errors.New("encrypted text cannot be empty")

	// ErrInvalidBase64 is returned when the encrypted text is not valid
	// standard Base64.
	ErrInvalidBase64 = errors.New("invalid Base64 in encrypted text")

	// ErrTooShort is returned when the decoded envelope is too short to
	// contain a salt, a nonce and an authentication tag.
	ErrTooShort = errors.New("encrypted text too short")

	// ErrWrongMasterPassword is returned when the authentication tag does
	// not verify: either the master password is wrong or the data was
	// corrupted. This is the dominant real-world failure mode.
	ErrWrongMasterPassword = errors.New("wrong master password or corrupted data")
)

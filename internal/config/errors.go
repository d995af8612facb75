package config

import "errors"

// Validation errors returned by [Config.validate] when the merged
// configuration is invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bonitasoft Labs

package config

import "fmt"

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup.
//
// The master password is deliberately not required here: whether it is
// needed depends on the requested operation, and the crypto layer reports
// its absence with a precise error at call time.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *Config) validate() error {
	switch cfg.App.LogLevel {
	case "", "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
		return nil
	}

	return fmt.Errorf("%w: unknown log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
}

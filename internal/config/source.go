// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bonitasoft Labs

package config

import "github.com/caarlos0/env/v11"

// EnvSource resolves the master password from the MASTER_BONITA_PWD
// environment variable on every call, so a value exported after process
// start is still picked up. It satisfies the crypto layer's SecretSource
// interface and returns "" when the variable is unset or unreadable.
type EnvSource struct{}

// MasterPassword returns the current value of MASTER_BONITA_PWD, or ""
// when it is absent.
func (EnvSource) MasterPassword() string {
	var c Crypto
	if err := env.Parse(&c); err != nil {
		return ""
	}
	return c.MasterPassword
}

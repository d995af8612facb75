// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bonitasoft Labs

// Package config loads the passvault configuration from environment
// variables, command-line flags, and an optional JSON file, merged in that
// order of precedence.
package config

// Config is the top-level configuration container for the passvault CLI.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// App holds application-level settings such as the log level.
	App App `envPrefix:"APP_"`

	// Crypto holds the encryption settings, i.e. the master password.
	Crypto Crypto

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds the positional command-line arguments left after flag
	// parsing (the CLI command and its value). Flags-only; never read from
	// the environment or a JSON file.
	Args []string
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the minimum zerolog level emitted by the CLI
	// (trace, debug, info, warn, error, fatal, panic, disabled).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Crypto holds the encryption settings.
type Crypto struct {
	// MasterPassword is the single shared secret from which all per-call
	// encryption keys are derived. Must be kept confidential and is never
	// logged.
	// Env: MASTER_BONITA_PWD
	MasterPassword string `env:"MASTER_BONITA_PWD"`
}

// GetConfig builds the final [Config] from all sources. args are the raw
// command-line arguments without the program name (os.Args[1:]).
func GetConfig(args []string) (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

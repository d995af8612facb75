// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bonitasoft Labs

// passvault is a one-shot command-line tool for encrypting and decrypting
// configuration secrets with the master password.
//
// Usage:
//
//	passvault [flags] <command> [value]
//
// Commands:
//
//	encrypt            encrypt a plaintext value
//	decrypt            decrypt an encrypted value
//	encrypt-if-needed  encrypt unless the value already looks encrypted
//	decrypt-if-needed  decrypt when the value looks encrypted, else echo it
//	check              report whether the value looks encrypted
//	status             report whether the master password is configured
//
// The value is taken from the first positional argument, or from stdin when
// absent. Results are written to stdout; logs go to stderr.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bonitasoft-labs/passvault/internal/config"
	"github.com/bonitasoft-labs/passvault/internal/crypto"
	"github.com/bonitasoft-labs/passvault/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("passvault", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("passvault", cfg.App.LogLevel)
	logBuildInfo(log)

	// A password resolved through config (flag or JSON file) is pinned for
	// the process; otherwise MASTER_BONITA_PWD is read live on every call.
	var source crypto.SecretSource = config.EnvSource{}
	if cfg.Crypto.MasterPassword != "" {
		source = crypto.StaticSource(cfg.Crypto.MasterPassword)
	}

	vault := crypto.NewVault(source)

	if err := run(vault, cfg.Args, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func run(vault crypto.Vault, args []string, in io.Reader, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("usage: passvault [flags] <encrypt|decrypt|encrypt-if-needed|decrypt-if-needed|check|status> [value]")
	}

	command := args[0]

	if command == "status" {
		if vault.IsMasterPasswordConfigured() {
			fmt.Fprintln(out, "master password configured")
		} else {
			fmt.Fprintln(out, "master password not configured")
		}
		return nil
	}

	value, err := readValue(args[1:], in)
	if err != nil {
		return err
	}

	switch command {
	case "encrypt":
		encrypted, err := vault.Encrypt(value)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, encrypted)

	case "decrypt":
		decrypted, err := vault.Decrypt(value)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, decrypted)

	case "encrypt-if-needed":
		encrypted, err := vault.EncryptIfNeeded(value)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, encrypted)

	case "decrypt-if-needed":
		fmt.Fprintln(out, vault.DecryptIfNeeded(value))

	case "check":
		fmt.Fprintln(out, strconv.FormatBool(vault.IsEncrypted(value)))

	default:
		return fmt.Errorf("unknown command %q", command)
	}

	return nil
}

// readValue takes the value from the remaining positional arguments, or
// reads it from stdin with the trailing newline stripped.
func readValue(args []string, in io.Reader) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read value from stdin: %w", err)
	}

	return strings.TrimRight(string(data), "\r\n"), nil
}

func logBuildInfo(log *logger.Logger) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	log.Debug().
		Str("build_version", buildVersion).
		Str("build_date", buildDate).
		Str("build_commit", buildCommit).
		Msg("build info")
}

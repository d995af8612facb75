package config

import (
	"flag"
)

// parseFlags parses the configuration flags from args (os.Args[1:]).
// Positional arguments left after the flags are preserved in Config.Args.
//
// Flags:
//
//	-c/-config json file path with configs
//	-log-level minimum log level (trace, debug, info, warn, error, fatal, panic, disabled)
//	-master-password master password (overrides MASTER_BONITA_PWD)
func parseFlags(args []string) (*Config, error) {
	var logLevel string
	var masterPassword string
	var jsonConfigPath string

	fs := flag.NewFlagSet("passvault", flag.ContinueOnError)
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&masterPassword, "master-password", "", "Master password")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &Config{
		App: App{
			LogLevel: logLevel,
		},
		Crypto: Crypto{
			MasterPassword: masterPassword,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}

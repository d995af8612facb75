package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONConfig mirrors [Config] with json tags for file-based configuration.
type JSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
		Version  string `json:"version"`
	} `json:"app,omitempty"`

	Crypto struct {
		MasterPassword string `json:"master_password"`
	} `json:"crypto,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg JSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
			Version:  jsonCfg.App.Version,
		},
		Crypto: Crypto{
			MasterPassword: jsonCfg.Crypto.MasterPassword,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// LoadUserConfig loads config.toml from the config directory, writing a
// commented template first if the file does not exist yet.
func LoadUserConfig() (*UserConfig, error) {
	configPath := GetConfigFilePath()

	if !FileExists(configPath) {
		if err := CreateDefaultUserConfig(); err != nil {
			return nil, fmt.Errorf("failed to create user config: %w", err)
		}
		return DefaultUserConfig(), nil
	}

	return LoadUserConfigFromPath(configPath)
}

// LoadUserConfigFromPath loads user config from a specific file path.
// Returns nil if the file doesn't exist (not an error).
func LoadUserConfigFromPath(configPath string) (*UserConfig, error) {
	if !FileExists(configPath) {
		return nil, nil
	}

	// Decode over defaults so keys absent from the file keep their defaults
	cfg := DefaultUserConfig()
	_, err := toml.DecodeFile(configPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	return cfg, nil
}

// SaveUserConfig writes the user config back to config.toml.
func SaveUserConfig(cfg *UserConfig) error {
	configDir := GetConfigDir()
	if err := EnsureDir(configDir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := GetConfigFilePath()
	// 0600 - user configuration data
	f, err := os.OpenFile(configPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create user config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode user config: %w", err)
	}

	return nil
}

func CreateDefaultUserConfig() error {
	configDir := GetConfigDir()
	if err := EnsureDir(configDir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := GetConfigFilePath()
	if FileExists(configPath) {
		return nil
	}

	content := GenerateUserConfigTemplate()
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write user config: %w", err)
	}

	return nil
}

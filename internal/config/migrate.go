package config

import (
	"fmt"
	"os"

	"github.com/zbiljic/vconfig-go"
)

// loadCreateMigrate loads the file returned by find, or the default
// configuration when there is none. The path is empty in the latter case.
func loadCreateMigrate(find func() (string, error)) (*Config, string, error) {
	configPath, err := find()
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefault(), "", nil
		}
		return nil, "", fmt.Errorf("error searching for config file: %w", err)
	}

	config, err := LoadFile(configPath)
	if err != nil {
		return nil, "", err
	}

	return config, configPath, nil
}

// LoadFile loads the configuration at configPath, migrating older versions
// in memory. The file itself is left untouched.
func LoadFile(configPath string) (*Config, error) {
	version, err := vconfig.GetVersion(configPath)
	if err != nil {
		return nil, err
	}

	var config *Config

	switch version {
	case configVersionV0:
		old, err := vconfig.LoadConfig[configV0](configPath)
		if err != nil {
			return nil, errLoadVersion(version, err)
		}
		config, err = old.migrate()
		if err != nil {
			return nil, errLoadVersion(version, err)
		}
	case configVersionV1:
		config, err = vconfig.LoadConfig[configV1](configPath)
		if err != nil {
			return nil, errLoadVersion(version, err)
		}
	default:
		return nil, errUnknownVersion(version)
	}

	if err := config.Validate(); err != nil {
		return nil, errInvalidConfig(configPath, err)
	}

	return config, nil
}

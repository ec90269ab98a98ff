package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"wizard-server/internal/util"
)

// Config provides configuration for the Wizard server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Game struct {
		MaxRounds           int  `yaml:"maxRounds" envconfig:"max_rounds"`
		CardsPerRoundOffset int  `yaml:"cardsPerRoundOffset" envconfig:"cards_per_round_offset"`
		StrictPlay          bool `yaml:"strictPlay" envconfig:"strict_play"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration.
// The config file is optional; environment variables always apply on top.
func Load() error {
	config = Config{}

	configFile := util.Getenv("WIZARD_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("wizard", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

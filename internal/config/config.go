package config

import (
	"os"

	"cardsagainstagility-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for Cards Against Agility
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	JWT struct {
		PublicKey  string `yaml:"publicKey" envconfig:"public_key"`
		PrivateKey string `yaml:"privateKey" envconfig:"private_key"`
	}
	Game struct {
		TargetScore int `yaml:"targetScore" envconfig:"target_score"`
		HandSize    int `yaml:"handSize" envconfig:"hand_size"`
		MinPlayers  int `yaml:"minPlayers" envconfig:"min_players"`
	}
}

var config Config

// DefaultConfig returns the configuration defaults
func DefaultConfig() Config {
	var c Config
	c.JWT.PublicKey = ".keys/public.pem"
	c.JWT.PrivateKey = ".keys/private.key"
	c.Game.TargetScore = 5
	c.Game.HandSize = 7
	c.Game.MinPlayers = 3
	return c
}

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

// Load will load the configuration. A missing config file is not an error;
// the defaults plus environment overrides apply.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("CAA_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("caa", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"twentyeight-server/internal/util"
)

// Config provides configuration for the Twenty-Eight server
type Config struct {
	loaded         bool
	Listen         string `yaml:"listen" envconfig:"listen"`
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	JWT            struct {
		PublicKey  string `yaml:"publicKey" envconfig:"public_key"`
		PrivateKey string `yaml:"privateKey" envconfig:"private_key"`
	}
	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		Format            string `yaml:"format" envconfig:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	// PlayerCreateDelay is the number of seconds a remote address must
	// wait between creating players
	PlayerCreateDelay int `yaml:"playerCreateDelay" envconfig:"player_create_delay"`
	// StartGameDelay is the number of seconds between a game being
	// requested and the cards being dealt
	StartGameDelay int `yaml:"startGameDelay" envconfig:"start_game_delay"`
	// TrickClearDelay is the number of seconds a completed trick stays
	// on display before the next trick starts
	TrickClearDelay int `yaml:"trickClearDelay" envconfig:"trick_clear_delay"`
}

var config Config

// DefaultConfig returns the configuration defaults
func DefaultConfig() Config {
	cfg := Config{
		Listen:            ":5000",
		PGDSN:             "postgres://postgres@localhost:5432/postgres?sslmode=disable",
		MigrationsPath:    "./sql",
		PlayerCreateDelay: 60,
		StartGameDelay:    10,
		TrickClearDelay:   2,
	}

	cfg.JWT.PublicKey = "public.pem"
	cfg.JWT.PrivateKey = "private.key"

	return cfg
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

// Load will load the configuration
// A missing config file is not an error; the defaults and the environment
// still apply.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("T28_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("t28", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

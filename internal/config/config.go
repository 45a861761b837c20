package config

import (
	"errors"
	"os"
	"padeltour-server/internal/util"
	"strings"

	"github.com/badoux/checkmail"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config provides configuration for the tournament server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	Storage        string `yaml:"storage"`
	JWT            struct {
		PublicKey  string `yaml:"publicKey" envconfig:"public_key"`
		PrivateKey string `yaml:"privateKey" envconfig:"private_key"`
	}
	// Admins are the emails allowed to create and score tournaments
	Admins []string `yaml:"admins"`
	Log    struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Tournament struct {
		CourtCount    int  `yaml:"courtCount" envconfig:"court_count"`
		FixedPartners bool `yaml:"fixedPartners" envconfig:"fixed_partners"`
	}
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var cfg Config
	cfg.PGDSN = "postgres://postgres@localhost:5432/postgres?sslmode=disable"
	cfg.MigrationsPath = "./sql"
	cfg.Storage = StoragePostgres
	cfg.JWT.PublicKey = ".keys/public.pem"
	cfg.JWT.PrivateKey = ".keys/private.key"
	cfg.Admins = []string{}
	cfg.Log.Level = "info"
	cfg.Tournament.CourtCount = 2

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
// The config file is optional, the environment is applied on top of it
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("PADEL_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("padel", &cfg); err != nil {
		return err
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

func (c *Config) validate() error {
	switch c.Storage {
	case StoragePostgres, StorageMemory:
	default:
		return errors.New("storage must be postgres or memory")
	}

	if c.Tournament.CourtCount < 1 {
		return errors.New("tournament.courtCount must be at least 1")
	}

	for i, admin := range c.Admins {
		admin = strings.TrimSpace(admin)
		if err := checkmail.ValidateFormat(admin); err != nil {
			return errors.New("invalid admin email: " + admin)
		}

		c.Admins[i] = strings.ToLower(admin)
	}

	return nil
}

// IsAdmin returns true if the email belongs to a configured admin
func (c Config) IsAdmin(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}

	for _, admin := range c.Admins {
		if admin == email {
			return true
		}
	}

	return false
}

// Package config loads tool configuration from an optional YAML file plus
// environment variables. Environment variables override file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sitedesk/sitedesk/internal/domain"
)

// Config holds all configuration for sitedesk.
type Config struct {
	// DBPath is the SQLite store location. Empty means ~/.sitedesk/sitedesk.db.
	DBPath string `yaml:"db_path" env:"SITEDESK_DB" env-default:""`
	// UsersFile points at a YAML credential list. Empty means built-in defaults.
	UsersFile string `yaml:"users_file" env:"SITEDESK_USERS" env-default:""`
	// Log enables use-case logging to stderr.
	Log bool `yaml:"log" env:"SITEDESK_LOG" env-default:"false"`
}

// Load reads the config file at SITEDESK_CONFIG (or ~/.sitedesk/config.yaml
// when present), then applies environment overrides. A missing file is fine.
func Load() (Config, error) {
	var cfg Config

	path := os.Getenv("SITEDESK_CONFIG")
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(home, ".sitedesk", "config.yaml")
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".sitedesk", "sitedesk.db")
	}

	return cfg, nil
}

type usersFile struct {
	Users []domain.User `yaml:"users"`
}

// defaultUsers is the built-in credential list used when no users file is
// configured. A UI gate only; these are not secrets.
func defaultUsers() []domain.User {
	return []domain.User{
		{Email: "admin@sitedesk.local", Password: "admin123", Name: "Site Admin", Role: "admin"},
		{Email: "manager@sitedesk.local", Password: "manager123", Name: "Site Manager", Role: "manager"},
		{Email: "viewer@sitedesk.local", Password: "viewer123", Name: "Site Viewer", Role: "user"},
	}
}

// LoadUsers reads the credential list from path, or returns the built-in
// defaults when path is empty. Users without an id get one assigned.
func LoadUsers(path string) ([]domain.User, error) {
	users := defaultUsers()
	if path != "" {
		var f usersFile
		if err := cleanenv.ReadConfig(path, &f); err != nil {
			return nil, fmt.Errorf("reading users file %s: %w", path, err)
		}
		if len(f.Users) > 0 {
			users = f.Users
		}
	}
	for i := range users {
		if users[i].ID == "" {
			users[i].ID = uuid.New().String()
		}
	}
	return users, nil
}

package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        int
	DatabaseURL string
	SQLitePath  string
	CodesDir    string
}

func Load() Config {
	cfg := Config{
		Port:        8000,
		DatabaseURL: os.Getenv("INTAKE_DATABASE_URL"),
		SQLitePath:  "./submissions.db",
		CodesDir:    "codes",
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if v := os.Getenv("INTAKE_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 && p < 65536 {
			cfg.Port = p
		}
	}

	if v := os.Getenv("INTAKE_SQLITE_PATH"); v != "" {
		cfg.SQLitePath = v
	}

	if v := os.Getenv("INTAKE_CODES_DIR"); v != "" {
		cfg.CodesDir = v
	}

	return cfg
}

func (c Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.Port)
}

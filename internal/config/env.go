package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by FromEnv.
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvAPIKey      = "GEMINI_API_KEY"
	EnvSkillCache  = "JOBBOARD_SKILL_CACHE"
	EnvWorkers     = "JOBBOARD_WORKERS"
	EnvPort        = "PORT"
)

// FromEnv builds a Config from environment variables. It is used as the
// lowest-priority defaults under the config file and flags.
func FromEnv() (Config, error) {
	cfg := Config{
		DatabaseURL: os.Getenv(EnvDatabaseURL),
		APIKey:      os.Getenv(EnvAPIKey),
		SkillCache:  os.Getenv(EnvSkillCache),
	}

	var err error
	if cfg.Workers, err = intFromEnv(EnvWorkers); err != nil {
		return Config{}, err
	}
	if cfg.Port, err = intFromEnv(EnvPort); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func intFromEnv(name string) (int, error) {
	s := os.Getenv(name)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", name, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must be non-negative, got: %d", name, n)
	}
	return n, nil
}

package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// Environment overrides.
const (
	EnvToken   = "LEADFINDER_TOKEN"
	EnvActorID = "LEADFINDER_ACTOR_ID"
	EnvBaseURL = "LEADFINDER_BASE_URL"
)

// LoadDotEnv loads KEY=VALUE files into the process environment without
// overriding variables already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// ApplyEnv overlays environment values on cfg.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvToken)); v != "" {
		cfg.APIToken = v
	}
	if v := strings.TrimSpace(getenv(EnvActorID)); v != "" {
		cfg.ActorID = v
	}
	if v := strings.TrimSpace(getenv(EnvBaseURL)); v != "" {
		cfg.BaseURL = v
	}
}

// Resolve loads the settings file, the keychain token and the
// environment, in increasing order of precedence.
func Resolve(path string, getenv func(string) string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	if tok, err := Token(); err == nil {
		cfg.APIToken = tok
	}
	ApplyEnv(&cfg, getenv)
	return cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/altinukshini/leadfinder/internal/api"
)

const appName = "leadfinder"

// Store backends for saved runs.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

type Config struct {
	ActorID         string        `yaml:"actor_id"`
	MaxItems        int           `yaml:"max_items"`
	BaseURL         string        `yaml:"base_url,omitempty"`
	Store           string        `yaml:"store"`
	DataDir         string        `yaml:"data_dir,omitempty"`
	PollInterval    time.Duration `yaml:"poll_interval"`
	MaxPollAttempts int           `yaml:"max_poll_attempts"`
	LogFile         string        `yaml:"log_file,omitempty"`

	// APIToken lives in the OS keychain or the environment, never in the file.
	APIToken string `yaml:"-"`
}

func Default() Config {
	return Config{
		MaxItems:        100,
		BaseURL:         api.DefaultBaseURL,
		Store:           StoreFile,
		PollInterval:    api.DefaultPollInterval,
		MaxPollAttempts: api.DefaultMaxPollAttempts,
	}
}

// Dir returns the per-user configuration directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(base, appName), nil
}

// DefaultPath is where the settings file lives unless -config says otherwise.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, cfg.Check()
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.MaxItems <= 0 {
		c.MaxItems = d.MaxItems
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = d.BaseURL
	}
	if c.Store == "" {
		c.Store = d.Store
	}
	if c.PollInterval <= 0 {
		c.PollInterval = d.PollInterval
	}
	if c.MaxPollAttempts <= 0 {
		c.MaxPollAttempts = d.MaxPollAttempts
	}
}

// Check validates the file-level settings.
func (c Config) Check() error {
	var errs []string
	if c.Store != StoreFile && c.Store != StoreSQLite {
		errs = append(errs, fmt.Sprintf("store must be %q or %q, got %q", StoreFile, StoreSQLite, c.Store))
	}
	if c.MaxItems < 0 {
		errs = append(errs, "max_items must be >= 0")
	}
	if c.PollInterval < 0 {
		errs = append(errs, "poll_interval must be >= 0")
	}
	if c.MaxPollAttempts < 0 {
		errs = append(errs, "max_poll_attempts must be >= 0")
	}
	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

// Validate reports the first missing setting a job needs.
func (c Config) Validate() error {
	return api.ValidateJob(api.Job{
		ActorID: strings.TrimSpace(c.ActorID),
		Token:   strings.TrimSpace(c.APIToken),
	})
}

// ResolvedDataDir returns DataDir, or the config directory when unset.
func (c Config) ResolvedDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	return Dir()
}

// ResolvedLogFile returns LogFile, or leadfinder.log in the data directory.
func (c Config) ResolvedLogFile() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	dir, err := c.ResolvedDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName+".log"), nil
}

// SaveAtomic writes cfg to path through a temp file and rename.
func SaveAtomic(path string, cfg Config) error {
	if err := cfg.Check(); err != nil {
		return err
	}

	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}

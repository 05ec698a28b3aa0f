package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/zalando/go-keyring"

	"github.com/altinukshini/leadfinder/internal/api"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxItems != 100 || cfg.Store != StoreFile || cfg.PollInterval != 5*time.Second || cfg.MaxPollAttempts != 120 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestSaveAtomicKeepsTokenOutOfFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.ActorID = "code_crafter/leads-finder"
	cfg.MaxItems = 250
	cfg.APIToken = "apify_api_secret"

	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatalf("SaveAtomic: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "apify_api_secret") {
		t.Fatal("token written to config file")
	}
	if !strings.Contains(string(raw), "poll_interval: 5s") {
		t.Errorf("poll_interval not written as a duration:\n%s", raw)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ActorID != cfg.ActorID || got.MaxItems != 250 {
		t.Errorf("loaded %+v", got)
	}
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("store: redis\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantFld string
	}{
		{name: "complete", cfg: Config{ActorID: "a", APIToken: "t"}},
		{name: "no token", cfg: Config{ActorID: "a"}, wantFld: "apiToken"},
		{name: "no actor", cfg: Config{APIToken: "t"}, wantFld: "actorId"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantFld == "" {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			var ve *api.ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.wantFld {
				t.Fatalf("got %v, want validation error on %s", err, tt.wantFld)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{EnvToken: " envtok ", EnvActorID: "env/actor"}
	cfg := Config{ActorID: "file/actor", APIToken: "keyring"}
	ApplyEnv(&cfg, func(k string) string { return env[k] })
	if cfg.APIToken != "envtok" || cfg.ActorID != "env/actor" {
		t.Errorf("got %+v", cfg)
	}
	if cfg.BaseURL != "" {
		t.Errorf("BaseURL should be untouched, got %q", cfg.BaseURL)
	}
}

func TestLoadDotEnvSkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("LEADFINDER_TEST_DOTENV=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LEADFINDER_TEST_DOTENV", "")
	os.Unsetenv("LEADFINDER_TEST_DOTENV")

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), envFile); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("LEADFINDER_TEST_DOTENV"); got != "from-file" {
		t.Errorf("env = %q", got)
	}
}

func TestTokenKeyring(t *testing.T) {
	keyring.MockInit()

	if tok, err := Token(); err != nil || tok != "" {
		t.Fatalf("empty keyring: %q, %v", tok, err)
	}
	if err := SetToken(" abc "); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	if tok, _ := Token(); tok != "abc" {
		t.Errorf("Token = %q", tok)
	}
	if err := SetToken(""); err != nil {
		t.Fatalf("SetToken empty: %v", err)
	}
	if tok, _ := Token(); tok != "" {
		t.Errorf("token should be deleted, got %q", tok)
	}
	if err := DeleteToken(); err != nil {
		t.Errorf("DeleteToken on empty keyring: %v", err)
	}
}

func TestResolvePrecedence(t *testing.T) {
	keyring.MockInit()
	if err := SetToken("from-keyring"); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("actor_id: file/actor\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Resolve(path, func(string) string { return "" })
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.APIToken != "from-keyring" || cfg.ActorID != "file/actor" {
		t.Errorf("got %+v", cfg)
	}

	cfg, _ = Resolve(path, func(k string) string {
		if k == EnvToken {
			return "from-env"
		}
		return ""
	})
	if cfg.APIToken != "from-env" {
		t.Errorf("env should win, got %q", cfg.APIToken)
	}
}

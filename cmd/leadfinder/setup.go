package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/altinukshini/leadfinder/internal/api"
	"github.com/altinukshini/leadfinder/internal/cache"
	"github.com/altinukshini/leadfinder/internal/config"
)

type options struct {
	configPath string
	envFile    string
	debug      bool
}

// environment is everything a command needs, built once in main.
type environment struct {
	cfg     config.Config
	cfgPath string
	log     *zap.Logger
	client  *api.Client
	invoker *api.Invoker
	runs    *cache.RunCache
	closed  bool
}

func setup(opts options) (*environment, error) {
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return nil, fmt.Errorf("load %s: %w", opts.envFile, err)
	}

	path := opts.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	cfg, err := config.Resolve(path, os.Getenv)
	if err != nil {
		return nil, err
	}

	dataDir, err := cfg.ResolvedDataDir()
	if err != nil {
		return nil, err
	}
	logPath, err := cfg.ResolvedLogFile()
	if err != nil {
		return nil, err
	}
	log, err := newLogger(logPath, opts.debug)
	if err != nil {
		// Logging is best effort; the TUI owns the terminal.
		log = zap.NewNop()
	}

	store, err := openStore(cfg.Store, dataDir)
	if err != nil {
		return nil, err
	}
	runs := cache.New(store, cache.WithLogger(log.Named("cache")))

	client, err := api.NewClient(api.ClientOptions{
		BaseURL: cfg.BaseURL,
		Timeout: api.DefaultSyncTimeout + 30*time.Second,
		Logger:  log.Named("api"),
	})
	if err != nil {
		runs.Close()
		return nil, err
	}
	invoker := api.NewInvoker(client, api.InvokerOptions{
		PollInterval:    cfg.PollInterval,
		MaxPollAttempts: cfg.MaxPollAttempts,
		Logger:          log.Named("invoker"),
	})

	log.Debug("started",
		zap.String("version", version),
		zap.String("config", path),
		zap.String("store", cfg.Store),
		zap.String("data_dir", dataDir))

	return &environment{
		cfg:     cfg,
		cfgPath: path,
		log:     log,
		client:  client,
		invoker: invoker,
		runs:    runs,
	}, nil
}

func (e *environment) close() {
	if e.closed {
		return
	}
	e.closed = true
	if err := e.runs.Close(); err != nil {
		e.log.Warn("close store", zap.Error(err))
	}
	_ = e.log.Sync()
}

func openStore(kind, dir string) (cache.Store, error) {
	switch kind {
	case config.StoreSQLite:
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return cache.OpenSQLite(filepath.Join(dir, "leadfinder.db"))
	default:
		return cache.NewFileStore(dir)
	}
}

// newLogger writes JSON lines to path.
func newLogger(path string, debug bool) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil
	return cfg.Build()
}

package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/andras/talent-sonar/internal/config"
	"github.com/andras/talent-sonar/internal/embedding"
	"github.com/andras/talent-sonar/internal/llm"
	"github.com/andras/talent-sonar/internal/logger"
	"github.com/andras/talent-sonar/internal/matching"
	"github.com/andras/talent-sonar/internal/outreach"
	"github.com/andras/talent-sonar/internal/store"
)

// Flags shared across subcommands.
var (
	configPath string
	verbose    bool
	jsonLogs   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit JSON-encoded logs")
}

// loadAppConfig resolves the effective configuration: config file values,
// then environment, then defaults.
func loadAppConfig() (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}
	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.Defaults())
	if verbose {
		cfg.Verbose = true
	}
	if jsonLogs {
		cfg.JSONLogs = true
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// app bundles the wired collaborators behind one teardown.
type app struct {
	cfg     config.Config
	log     *zap.Logger
	repo    store.Repository
	engine  *matching.Engine
	drafter *outreach.Drafter

	pg     *store.Postgres
	client llm.Client
}

// buildApp wires the repository, LLM client, engine, and drafter from
// configuration. Without a database URL the in-memory repository is used,
// pre-loaded with the demo dataset; without an API key every AI surface
// degrades to deterministic output.
func buildApp(ctx context.Context) (*app, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	a := &app{cfg: cfg, log: log}
	embedder := embedding.NewHashProvider()

	if cfg.DatabaseURL != "" {
		pg, err := store.ConnectPostgres(ctx, cfg.DatabaseURL, embedder)
		if err != nil {
			return nil, err
		}
		a.pg = pg
		a.repo = pg
	} else {
		mem := store.NewMemory(embedder)
		if err := store.SeedDemoData(ctx, mem); err != nil {
			return nil, err
		}
		log.Info("no DATABASE_URL set, using in-memory repository with demo data")
		a.repo = mem
	}

	var reasoner matching.Reasoner
	if cfg.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.client = client
		reasoner = llm.NewGenerator(client, llm.TierStandard, log)
	} else {
		log.Info("no GEMINI_API_KEY set, AI features use deterministic fallbacks")
	}

	a.engine = matching.NewEngine(a.repo, reasoner, log)
	if cfg.PoolSize > 0 {
		a.engine.SetPoolSize(cfg.PoolSize)
	}
	a.drafter = outreach.NewDrafter(a.repo, a.client, log)
	return a, nil
}

// Close releases the database pool and LLM client if present.
func (a *app) Close() {
	if a.client != nil {
		_ = a.client.Close()
	}
	if a.pg != nil {
		a.pg.Close()
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

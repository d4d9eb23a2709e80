// Package app wires configuration, logging, the Redis store and the MOTD use
// cases for the command-line entry points.
package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"leaguemotd/internal/application/motd/usecases"
	"leaguemotd/internal/domain/motd"
	"leaguemotd/internal/infrastructure/cache"
	"leaguemotd/internal/infrastructure/config"
	"leaguemotd/internal/shared/logger"
)

// Options are the global flags shared by every command.
type Options struct {
	ConfigPath string
	RedisURL   string
	LogLevel   string
}

// BindFlags registers the global flags on the root command.
func (o *Options) BindFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&o.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.PersistentFlags().StringVar(&o.RedisURL, "redis-url", "", "Redis URL, overrides REDIS_URL")
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// Factory creates the App a command runs against.
type Factory func(ctx context.Context) (*App, error)

type App struct {
	Config    *config.Config
	Logger    logger.Interface
	Languages *usecases.LanguagePolicy

	ListMOTDs   *usecases.ListMOTDsUseCase
	AddMOTD     *usecases.AddMOTDUseCase
	RemoveMOTD  *usecases.RemoveMOTDUseCase
	ReplaceMOTD *usecases.ReplaceMOTDUseCase

	redis *redis.Client
}

// LoadConfig reads configuration, applies flag overrides and initializes
// the logger.
func LoadConfig(opts *Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.RedisURL != "" {
		cfg.Redis.URL = opts.RedisURL
	}
	if opts.LogLevel != "" {
		cfg.Logger.Level = opts.LogLevel
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, nil
}

// New connects to Redis and builds the use cases.
func New(ctx context.Context, opts *Options) (*App, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}

	transport, err := cache.NewTextTransport(cfg.Redis.Charset)
	if err != nil {
		return nil, err
	}

	client, err := cache.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		return nil, err
	}

	log := logger.NewLogger()
	log.Debugw("redis connection established", "address", client.Options().Addr, "charset", cfg.Redis.Charset)

	store := cache.NewRedisMOTDStore(client, transport, log.Named("motd_store"))

	a := NewWithRepository(cfg, store, log)
	a.redis = client
	return a, nil
}

// NewWithRepository builds the use cases on top of an existing repository.
func NewWithRepository(cfg *config.Config, repo motd.Repository, log logger.Interface) *App {
	languages := usecases.NewLanguagePolicy(cfg.MOTD.Languages)

	return &App{
		Config:      cfg,
		Logger:      log,
		Languages:   languages,
		ListMOTDs:   usecases.NewListMOTDsUseCase(repo, languages, log),
		AddMOTD:     usecases.NewAddMOTDUseCase(repo, languages, log),
		RemoveMOTD:  usecases.NewRemoveMOTDUseCase(repo, languages, log),
		ReplaceMOTD: usecases.NewReplaceMOTDUseCase(repo, languages, log),
	}
}

// DefaultFactory returns a Factory that calls New with opts.
func DefaultFactory(opts *Options) Factory {
	return func(ctx context.Context) (*App, error) {
		return New(ctx, opts)
	}
}

func (a *App) Close() error {
	if a.redis == nil {
		return nil
	}
	return a.redis.Close()
}

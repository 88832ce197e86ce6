package initializer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/amirasaad/bankcore/infra"
	infra_repository "github.com/amirasaad/bankcore/infra/repository"
	"github.com/amirasaad/bankcore/infra/repository/memory"
	"github.com/amirasaad/bankcore/infra/repository/redisstore"
	"github.com/amirasaad/bankcore/pkg/app"
	"github.com/amirasaad/bankcore/pkg/config"
	"github.com/amirasaad/bankcore/pkg/decorator"
	"github.com/amirasaad/bankcore/pkg/domain"
	"github.com/amirasaad/bankcore/pkg/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

// InitializeDependencies builds the logger, the configured account store and its metrics.
// Log output goes to logOut, or stderr when it is nil.
func InitializeDependencies(ctx context.Context, cfg *config.App, logOut io.Writer) (
	deps *app.Deps,
	err error,
) {
	if logOut == nil {
		logOut = os.Stderr
	}
	deps = &app.Deps{}
	logger := SetupLogger(cfg.Log, logOut)
	deps.Logger = logger

	store, err := newStore(ctx, cfg, deps)
	if err != nil {
		_ = deps.Close()
		return nil, err
	}

	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		deps.Registry = prometheus.NewRegistry()
		deps.Metrics, err = decorator.NewMetrics(deps.Registry)
		if err != nil {
			_ = deps.Close()
			return nil, fmt.Errorf("failed to register store metrics: %w", err)
		}
		store = decorator.NewInstrumentedStore(store, deps.Metrics, logger)
	}
	deps.Store = store

	logger.Info("Dependencies initialized", "store", cfg.Bank.Store, "metrics", deps.Metrics != nil)
	return deps, nil
}

// newStore selects the account store backend.
func newStore(ctx context.Context, cfg *config.App, deps *app.Deps) (repository.AccountStore, error) {
	policy := repository.CreditPolicy{
		MinimalCreditBalanceRatio: cfg.Bank.MinimalCreditBalanceRatio,
		LoanInterestRate:          cfg.Bank.LoanInterestRate,
	}
	logger := deps.Logger

	switch cfg.Bank.Store {
	case config.StoreMemory, "":
		logger.Warn("Using in-memory account store; balances are lost on exit")
		return memory.New(policy), nil

	case config.StorePostgres:
		db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
		if err != nil {
			logger.Error("Failed to initialize database", "error", err)
			return nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			deps.OnClose(sqlDB.Close)
		}
		store := infra_repository.NewStore(db, policy)
		if err := store.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("failed to migrate account tables: %w", err)
		}
		return store, nil

	case config.StoreRedis:
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("redis store: invalid URL: %w", err)
		}
		opt.PoolSize = cfg.Redis.PoolSize
		opt.DialTimeout = cfg.Redis.DialTimeout
		opt.ReadTimeout = cfg.Redis.ReadTimeout
		opt.WriteTimeout = cfg.Redis.WriteTimeout
		client := redis.NewClient(opt)
		deps.OnClose(client.Close)
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Error("Failed to connect to redis", "error", err)
			return nil, fmt.Errorf("%w: redis store: connection failed: %w", domain.ErrStoreUnavailable, err)
		}
		return redisstore.New(client, policy,
			redisstore.WithPrefix(cfg.Redis.KeyPrefix),
			redisstore.WithMaxRetries(cfg.Redis.MaxRetries),
			redisstore.WithLogger(logger),
		), nil
	}
	return nil, fmt.Errorf("%w: unknown store %q", config.ErrInvalid, cfg.Bank.Store)
}

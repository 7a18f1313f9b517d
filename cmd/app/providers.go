package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/anvitha/outfit-advisor/internal/domain/auth"
	"github.com/anvitha/outfit-advisor/internal/domain/recommender"
	"github.com/anvitha/outfit-advisor/internal/domain/wardrobe"
	"github.com/anvitha/outfit-advisor/internal/infra/config"
	"github.com/anvitha/outfit-advisor/internal/infra/imagestore"
	"github.com/anvitha/outfit-advisor/internal/infra/trendstore"
	"github.com/anvitha/outfit-advisor/internal/infra/userrepo"
	"github.com/anvitha/outfit-advisor/internal/infra/wardrobecat"
)

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:   cfg.Auth.Secret,
		TokenTTL: cfg.Auth.TokenTTL,
	}
}

func provideRecommenderConfig(cfg *config.Config) recommender.Config {
	return recommender.Config{
		TrendingLimit: cfg.Trending.TopLimit,
	}
}

func provideUserRepository(cfg *config.Config, logger *slog.Logger) auth.Repository {
	pool := newPostgresPool(cfg.Wardrobe.Postgres, logger)
	if pool == nil {
		logger.Info("postgres dsn not set, using memory user repository")
		return userrepo.NewMemoryRepository()
	}
	logger.Info("postgres user repository enabled")
	return userrepo.NewPostgresRepository(pool)
}

func provideCatalogRepository(cfg *config.Config, logger *slog.Logger) wardrobe.Repository {
	pool := newPostgresPool(cfg.Wardrobe.Postgres, logger)
	if pool != nil {
		logger.Info("postgres wardrobe repository enabled")
		return wardrobecat.NewPostgresRepository(pool)
	}
	items, err := wardrobecat.LoadFile(cfg.Wardrobe.CatalogPath)
	if err != nil {
		logger.Error("failed to load wardrobe catalog, starting with empty catalog", "path", cfg.Wardrobe.CatalogPath, "error", err)
		items = nil
	} else {
		logger.Info("wardrobe catalog loaded", "path", cfg.Wardrobe.CatalogPath, "items", len(items))
	}
	return wardrobecat.NewMemoryRepository(items)
}

func provideTrendStore(cfg *config.Config, logger *slog.Logger) recommender.TrendStore {
	if cfg.Trending.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg.Trending.Valkey.Addr)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory trend store", "error", err)
			return trendstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory trend store", "error", err)
			return trendstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory trend store", "error", err)
		} else {
			logger.Info("valkey trend store enabled", "addr", cfg.Trending.Valkey.Addr)
			return trendstore.NewValkeyStore(client, "outfits")
		}
	}
	return trendstore.NewMemoryStore()
}

func provideImageStore(cfg *config.Config, logger *slog.Logger) wardrobe.ImageStore {
	if cfg.Images.S3.Enabled {
		store, err := imagestore.NewS3Store(
			cfg.Images.S3.Endpoint,
			cfg.Images.S3.AccessKey,
			cfg.Images.S3.SecretKey,
			cfg.Images.S3.Bucket,
			cfg.Images.S3.Region,
			logger,
		)
		if err != nil {
			logger.Error("failed to initialize s3 image store, falling back to local directory", "error", err)
		} else {
			logger.Info("s3 image store enabled", "bucket", cfg.Images.S3.Bucket)
			return store
		}
	}
	return imagestore.NewLocalStore(cfg.Images.Dir)
}

func newPostgresPool(pgCfg config.PostgresConfig, logger *slog.Logger) *pgxpool.Pool {
	dsn := strings.TrimSpace(pgCfg.DSN)
	if dsn == "" {
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn", "error", err)
		return nil
	}
	if pgCfg.MaxConns > 0 {
		poolConfig.MaxConns = pgCfg.MaxConns
	}
	if pgCfg.MinConns > 0 {
		poolConfig.MinConns = pgCfg.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed", "error", err)
		pool.Close()
		return nil
	}
	return pool
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(addr, "://") {
		opt, err = valkey.ParseURL(addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

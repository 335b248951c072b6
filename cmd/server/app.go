package main

import (
	"context"
	"fmt"
	"log/slog"

	"onutec/internal/platform/config"
	"onutec/internal/platform/database"
	"onutec/internal/platform/logger"
	platformredis "onutec/internal/platform/redis"
	"onutec/internal/registration/cache"
	regmetrics "onutec/internal/registration/metrics"
	"onutec/internal/registration/service"
	"onutec/internal/registration/store"
	"onutec/pkg/platform/audit/publishers/compliance"
	"onutec/pkg/platform/audit/store/outbox"
)

// app holds what every subcommand needs.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	db     *database.DB
	outbox *outbox.Store
}

func loadApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(cfg.Database); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:    cfg,
		logger: log,
		db:     db,
		outbox: outbox.New(db.SQL, db.Dialect),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

type serviceOptions struct {
	metrics *regmetrics.Metrics
	cache   service.Cache
	audit   *compliance.Metrics
}

// registrationService builds the service over the app store. Metrics and
// cache are only wired by serve.
func (a *app) registrationService(opts serviceOptions) *service.Service {
	publisherOpts := []compliance.Option{compliance.WithLogger(a.logger)}
	if opts.audit != nil {
		publisherOpts = append(publisherOpts, compliance.WithMetrics(opts.audit))
	}
	svcOpts := []service.Option{
		service.WithLogger(a.logger),
		service.WithAuditPublisher(compliance.New(a.outbox, publisherOpts...)),
	}
	if opts.metrics != nil {
		svcOpts = append(svcOpts, service.WithMetrics(opts.metrics))
	}
	if opts.cache != nil {
		svcOpts = append(svcOpts, service.WithCache(opts.cache))
	}
	return service.New(store.New(a.db.SQL, a.db.Dialect), a.db.Runner, svcOpts...)
}

// availabilityCache picks Redis when configured, otherwise process memory.
// A zero TTL disables caching.
func availabilityCache(a *app, redisClient *platformredis.Client) service.Cache {
	switch {
	case a.cfg.Cache.TTL == 0:
		return nil
	case redisClient != nil:
		return cache.NewRedis(redisClient.Client, a.cfg.Cache.TTL, cache.WithLogger(a.logger))
	default:
		return cache.NewMemory(a.cfg.Cache.TTL)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"onutec/internal/admin"
	jwttoken "onutec/internal/jwt_token"
	"onutec/internal/platform/httpserver"
	"onutec/internal/platform/metrics"
	platformredis "onutec/internal/platform/redis"
	"onutec/internal/platform/tracing"
	"onutec/internal/registration/handler"
	regmetrics "onutec/internal/registration/metrics"
	httptransport "onutec/internal/transport/http"
	"onutec/pkg/platform/audit/publishers/compliance"
	"onutec/pkg/platform/audit/publishers/kafka"
	"onutec/pkg/platform/audit/publishers/logsink"
	"onutec/pkg/platform/audit/relay"
	"onutec/pkg/secrets"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the audit relay",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	log := a.logger

	shutdownTracing, err := tracing.Setup(ctx, a.cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	redisClient, err := platformredis.New(ctx, a.cfg.Cache.Redis)
	if err != nil {
		return err
	}
	health := map[string]httptransport.HealthChecker{"database": a.db}
	if redisClient != nil {
		defer redisClient.Close()
		health["redis"] = redisClient
	}

	svc := a.registrationService(serviceOptions{
		metrics: regmetrics.New(),
		cache:   availabilityCache(a, redisClient),
		audit:   compliance.NewMetrics(),
	})

	signingKey := a.cfg.Admin.JWTSigningKey
	if signingKey == "" {
		if signingKey, err = secrets.Generate(); err != nil {
			return err
		}
		log.Warn("no JWT signing key configured; using an ephemeral key, tokens will not survive a restart")
	}
	tokens := jwttoken.NewJWTService(signingKey, a.cfg.Admin.JWTIssuer, "onutec-admin")
	loginOpts := []admin.Option{
		admin.WithLogger(log),
		admin.WithAuditPublisher(compliance.New(a.outbox, compliance.WithLogger(log))),
	}
	if a.cfg.Admin.LockoutAttempts > 0 {
		loginOpts = append(loginOpts, admin.WithLockout(admin.NewLockout(a.cfg.Admin.LockoutAttempts, a.cfg.Admin.LockoutWindow)))
	}
	login := admin.NewService(admin.Credentials{
		Username:     a.cfg.Admin.Username,
		PasswordHash: a.cfg.Admin.PasswordHash,
		Password:     a.cfg.Admin.Password,
	}, tokens, a.cfg.Admin.TokenTTL, loginOpts...)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:         log,
		Metrics:        metrics.New(),
		RequestTimeout: a.cfg.Server.RequestTimeout,
		Registration:   handler.New(svc, log),
		Login:          admin.NewHandler(login, log),
		Verifier:       tokens,
		Health:         health,
		MetricsHandler: metrics.Handler(),
	})
	srv := httpserver.New(a.cfg.Server, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server listening", "addr", srv.Addr, "env", a.cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownGrace)
		defer cancel()
		log.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if a.cfg.Audit.RelayEnabled {
		r, closeRelay, err := newRelay(a)
		if err != nil {
			return err
		}
		defer closeRelay()
		g.Go(func() error { return r.Run(gctx) })
	}

	return g.Wait()
}

// newRelay ships outbox entries to Kafka when brokers are configured and to
// the log otherwise.
func newRelay(a *app) (*relay.Relay, func(), error) {
	opts := []relay.Option{
		relay.WithLogger(a.logger),
		relay.WithMetrics(relay.NewMetrics()),
		relay.WithInterval(a.cfg.Audit.RelayInterval),
		relay.WithBatchSize(a.cfg.Audit.RelayBatch),
	}
	if len(a.cfg.Audit.KafkaBrokers) == 0 {
		return relay.New(a.outbox, logsink.New(a.logger), opts...), func() {}, nil
	}
	producer, err := kafka.New(a.cfg.Audit.KafkaBrokers, a.cfg.Audit.TopicPrefix)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Info("relaying audit events to kafka", "brokers", a.cfg.Audit.KafkaBrokers)
	return relay.New(a.outbox, producer, opts...), producer.Close, nil
}

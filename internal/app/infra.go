package app

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"
	"go.uber.org/fx"

	"github.com/rahulxs/folio_backend/config"
	"github.com/rahulxs/folio_backend/pkg/database"
	"github.com/rahulxs/folio_backend/pkg/email"
	"github.com/rahulxs/folio_backend/pkg/observability"
	redispkg "github.com/rahulxs/folio_backend/pkg/redis"
	s3pkg "github.com/rahulxs/folio_backend/pkg/s3"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideDB),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideEmailClient),
	fx.Provide(ProvideS3Client),
	fx.Provide(ProvideOTel),
)

func ProvideDB(lc fx.Lifecycle, cfg *config.Config) (*bun.DB, error) {
	db, err := database.New(cfg.Database)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing database connection")
			return db.Close()
		},
	})
	return db, nil
}

// ProvideRedis returns nil when no address is configured; the server then
// runs without the rate limiter rather than refusing to start.
func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		slog.Warn("redis not configured, rate limiting disabled")
		return nil, nil
	}

	rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideEmailClient(cfg *config.Config) (*email.Client, error) {
	client, err := email.NewFromCentral(cfg.Email)
	if err != nil {
		return nil, err
	}
	if !client.IsConfigured() {
		slog.Warn("email credential absent, contact notifications disabled")
	}
	return client, nil
}

// ProvideS3Client returns nil when no bucket is configured; the resume
// endpoint then reports itself unavailable.
func ProvideS3Client(cfg *config.Config) (*s3pkg.Client, error) {
	if cfg.Resume.S3.Bucket == "" {
		return nil, nil
	}
	return s3pkg.New(cfg.Resume.S3)
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Server.Environment,
		OTLPEndpoint:   cfg.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.Tracing.OTLPInsecure,
		SamplingRate:   cfg.Observability.Tracing.SamplingRate,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}

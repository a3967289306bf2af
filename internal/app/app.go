// Package app wires configuration, storage, services and the HTTP router
// into a runnable child wallet server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"child-wallet/config"
	httpHandler "child-wallet/internal/adapter/http/handler"
	"child-wallet/internal/adapter/realtime"
	"child-wallet/internal/adapter/storage/memory"
	pgStorage "child-wallet/internal/adapter/storage/postgres"
	redisStorage "child-wallet/internal/adapter/storage/redis"
	"child-wallet/internal/core/ports"
	"child-wallet/internal/service"

	"github.com/rs/zerolog"
)

const idempotencyPurgeInterval = time.Hour

// Option customises collaborators that tests need to control.
type Option func(*options)

type options struct {
	clock      ports.Clock
	httpClient service.HTTPClient
}

// WithClock replaces the wall clock used by every service.
func WithClock(c ports.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithHTTPClient replaces the client used for webhook delivery.
func WithHTTPClient(c service.HTTPClient) Option {
	return func(o *options) { o.httpClient = c }
}

// App is a fully wired server.
type App struct {
	handler http.Handler
	hub     *realtime.Hub
	closers []func(context.Context) error
	log     zerolog.Logger
}

// New connects the configured backends and builds the router. On error
// everything opened so far is closed again.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger, opts ...Option) (_ *App, err error) {
	o := options{clock: service.SystemClock{}, httpClient: &http.Client{}}
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{log: log}
	defer func() {
		if err != nil {
			_ = a.Close(context.Background())
		}
	}()

	var (
		repos    ports.Repositories
		checkers []ports.HealthChecker
	)
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		a.onClose(func(context.Context) error {
			pool.Close()
			return nil
		})
		if cfg.Database.AutoMigrate {
			if err := pgStorage.Migrate(pool); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
			log.Info().Msg("Database migrations applied")
		}
		repos = pgStorage.NewRepositories(pool)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
	default:
		repos = memory.New().Repositories()
		log.Warn().Msg("Using in-memory storage, state is lost on restart")
	}

	var (
		idempCache ports.IdempotencyCache
		limiter    ports.RateLimiter
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.onClose(func(context.Context) error { return rdb.Close() })
		idempCache = redisStorage.NewIdempotencyCache(rdb)
		if cfg.RateLimit.Enabled {
			limiter = redisStorage.NewRateLimitStore(rdb)
		}
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	}

	a.hub = realtime.NewHub(log)
	events := service.Fanout{a.hub}
	if cfg.Webhook.Enabled {
		notifier := service.NewWebhookNotifier(
			cfg.Webhook.URL,
			service.NewHMACSigner(cfg.Webhook.Secret),
			o.httpClient,
			cfg.Webhook.Timeout,
			log,
		)
		a.onClose(func(context.Context) error {
			notifier.Close()
			return nil
		})
		events = append(events, notifier)
		log.Info().Str("url", cfg.Webhook.URL).Msg("Webhook notifications enabled")
	}

	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	guardianSvc := service.NewGuardianService(repos.Guardians, repos.Credentials, repos.Transactor, o.clock, events, log)
	investmentSvc := service.NewInvestmentService(repos, o.clock, events, log)
	walletSvc := service.NewWalletService(repos, guardianSvc, investmentSvc, idempCache, o.clock, events, log)
	authSvc := service.NewAuthService(repos.Credentials, service.NewArgon2HashService(), tokenSvc, log)
	auditSvc := service.NewAuditService(repos.Audit, log)

	janitor := service.NewIdempotencyJanitor(repos.Idempotency, o.clock, log)
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	janitorDone := make(chan struct{})
	go func() {
		defer close(janitorDone)
		janitor.Run(janitorCtx, idempotencyPurgeInterval)
	}()
	a.onClose(func(context.Context) error {
		stopJanitor()
		<-janitorDone
		return nil
	})

	var docs *httpHandler.APIDocs
	if path := cfg.Server.OpenAPIPath; path != "" {
		spec, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
		} else if docs, err = httpHandler.NewAPIDocs(spec); err != nil {
			return nil, fmt.Errorf("render api docs: %w", err)
		} else {
			log.Info().Str("path", path).Msg("OpenAPI spec loaded for Swagger UI at /swagger")
		}
	}

	a.handler = httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		GuardianSvc:    guardianSvc,
		WalletSvc:      walletSvc,
		InvestmentSvc:  investmentSvc,
		TokenSvc:       tokenSvc,
		RateLimiter:    limiter,
		RateRequests:   int64(cfg.RateLimit.Requests),
		RateWindow:     cfg.RateLimit.Window,
		Events:         a.hub,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		HealthCheckers: checkers,
		AuditSvc:       auditSvc,
		Docs:           docs,
		Logger:         log,
	})
	return a, nil
}

// Handler returns the HTTP entry point.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Hub returns the live event hub.
func (a *App) Hub() *realtime.Hub {
	return a.hub
}

func (a *App) onClose(fn func(context.Context) error) {
	a.closers = append(a.closers, fn)
}

// Close releases backends in reverse order of acquisition.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

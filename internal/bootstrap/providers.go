package bootstrap

import (
	"context"
	"errors"
	"net/http"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/application"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/config"
	infraconfig "github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/config"
	httpserver "github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/http"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/httpx"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/logx"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/pg"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/provider"
	redisstore "github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/redis"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/stripepay"

	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

var ErrMissingDBURL = errors.New("DATABASE_URL is required")

func ProvideLogger() *zap.Logger { return logx.L() }

func ProvideConfig() config.Config { return config.Load() }

func ProvideDB(ctx context.Context, log *zap.Logger, cfg config.Config) (*pg.DB, func(), error) {
	if cfg.DatabaseURL == "" {
		return nil, func() {}, ErrMissingDBURL
	}
	db, err := pg.Connect(ctx, cfg.DatabaseURL, pg.PoolOptions{
		MaxConns: int32(cfg.PGMaxConns),
		MinConns: int32(cfg.PGMinConns),
	})
	if err != nil {
		return nil, func() {}, err
	}
	if err := pg.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, func() {}, err
	}
	cleanup := func() {
		log.Info("closing pg")
		db.Close()
	}
	return db, cleanup, nil
}

func ProvideDocumentRepo(db *pg.DB) *pg.DocumentRepo { return pg.NewDocumentRepo(db) }

func ProvideSubscriptionRepo(db *pg.DB) *pg.SubscriptionRepo { return pg.NewSubscriptionRepo(db) }

func ProvideQuoteProvider(cfg config.Config) application.QuoteProvider {
	switch cfg.MarketProvider {
	case "finnhub":
		return &provider.FinnhubProvider{
			BaseURL: cfg.MarketAPIBase,
			APIKey:  cfg.MarketAPIKey,
			Client:  &httpx.Client{HTTP: &http.Client{Timeout: infraconfig.DefaultMarketTimeout}},
		}
	default:
		return provider.NewFake(100.25, 100)
	}
}

// ProvideStripeClient builds the one payment-provider client shared by
// every request.
func ProvideStripeClient(cfg config.Config) *client.API {
	return client.New(cfg.StripeSecretKey, nil)
}

func ProvideCheckout(api *client.API, cfg config.Config) *stripepay.Checkout {
	return stripepay.NewCheckout(api, cfg.StripePriceID, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL)
}

func ProvideVerifier(cfg config.Config) *stripepay.Verifier {
	return stripepay.NewVerifier(cfg.StripeWebhookSecret)
}

// ProvideDeduper returns the redis event store when WEBHOOK_DEDUPE=redis;
// otherwise replayed webhook events are reapplied.
func ProvideDeduper(ctx context.Context, cfg config.Config, log *zap.Logger) (application.EventDeduper, func(), error) {
	if cfg.WebhookDedupe != "redis" {
		return application.NoopDeduper{}, func() {}, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, func() {}, err
	}
	log.Info("webhook dedupe enabled", zap.String("redis_addr", cfg.RedisAddr), zap.Duration("ttl", cfg.DedupeTTL))
	return redisstore.New(rdb, cfg.DedupeTTL), func() { _ = rdb.Close() }, nil
}

func ProvideSnapshotService(docs application.DocumentRepo, quotes application.QuoteProvider, cfg config.Config) *application.SnapshotService {
	return application.NewSnapshotService(docs, quotes, application.WithStockSymbols(cfg.StockSymbols))
}

func ProvideBillingService(checkout application.CheckoutProvider, verifier application.EventVerifier, subs application.SubscriptionRepo, dedupe application.EventDeduper) *application.BillingService {
	return application.NewBillingService(checkout, verifier, subs, dedupe)
}

func ProvideServer(snaps *application.SnapshotService, billing *application.BillingService, db *pg.DB, cfg config.Config) *httpserver.Server {
	srv := httpserver.NewServer(snaps, billing)
	srv.SetReadyCheck(db.Ping)
	srv.SetRequestTimeout(cfg.RequestTimeout)
	return srv
}

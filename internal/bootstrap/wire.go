//go:build wireinject

package bootstrap

import (
	"context"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/application"
	httpserver "github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/http"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/pg"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/stripepay"

	"github.com/google/wire"
)

var storeSet = wire.NewSet(
	ProvideLogger,
	ProvideConfig,
	ProvideDB,
	ProvideDocumentRepo,
	ProvideSubscriptionRepo,
	wire.Bind(new(application.DocumentRepo), new(*pg.DocumentRepo)),
	wire.Bind(new(application.SubscriptionRepo), new(*pg.SubscriptionRepo)),
)

var apiSet = wire.NewSet(
	storeSet,
	ProvideQuoteProvider,
	ProvideStripeClient,
	ProvideCheckout,
	ProvideVerifier,
	ProvideDeduper,
	wire.Bind(new(application.CheckoutProvider), new(*stripepay.Checkout)),
	wire.Bind(new(application.EventVerifier), new(*stripepay.Verifier)),
	ProvideSnapshotService,
	ProvideBillingService,
	ProvideServer,
)

// API injector: builds *httpserver.Server + Cleanup
func InitAPI(ctx context.Context) (*httpserver.Server, func(), error) {
	wire.Build(apiSet)
	return nil, nil, nil
}

// Store injector: builds the document repository used by the loader.
func InitDocumentStore(ctx context.Context) (*pg.DocumentRepo, func(), error) {
	wire.Build(storeSet)
	return nil, nil, nil
}

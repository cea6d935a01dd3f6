package httpserver

import (
	"context"
	"errors"
	"sync"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/application"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/domain"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/provider"
)

var _ application.DocumentRepo = (*fakeDocumentRepo)(nil)
var _ application.SubscriptionRepo = (*fakeSubscriptionRepo)(nil)
var _ application.CheckoutProvider = (*fakeCheckout)(nil)

type fakeDocumentRepo struct {
	mu    sync.Mutex
	store map[string]map[string]any
	err   error
}

func (f *fakeDocumentRepo) Get(_ context.Context, collection, id string) (domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return domain.Document{}, f.err
	}
	data, ok := f.store[collection+"/"+id]
	if !ok {
		return domain.Document{}, application.ErrNotFound
	}
	return domain.Document{Collection: collection, ID: id, Data: data}, nil
}

func (f *fakeDocumentRepo) put(collection, id string, data map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.store == nil {
		f.store = map[string]map[string]any{}
	}
	f.store[collection+"/"+id] = data
}

type fakeSubscriptionRepo struct {
	mu       sync.Mutex
	records  map[string]domain.SubscriptionStatus
	writes   int
	// deadline records whether the last write carried a context deadline.
	deadline bool
}

func (f *fakeSubscriptionRepo) SetStatus(ctx context.Context, email string, status domain.SubscriptionStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, f.deadline = ctx.Deadline()
	if f.records == nil {
		f.records = map[string]domain.SubscriptionStatus{}
	}
	f.writes++
	f.records[email] = status
	return nil
}

type fakeCheckout struct {
	calls    int
	err      error
	deadline bool
	// block waits for the request context to end.
	block    bool
}

func (f *fakeCheckout) CreateSubscriptionSession(ctx context.Context, email string) (string, error) {
	f.calls++
	_, f.deadline = ctx.Deadline()
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if f.err != nil {
		return "", f.err
	}
	return "https://checkout.example/" + email, nil
}

var errStore = errors.New("store unavailable")

type inMemory struct {
	docs     *fakeDocumentRepo
	subs     *fakeSubscriptionRepo
	checkout *fakeCheckout
}

func newInMemoryServer(verifier application.EventVerifier) (*Server, *inMemory) {
	m := &inMemory{docs: &fakeDocumentRepo{}, subs: &fakeSubscriptionRepo{}, checkout: &fakeCheckout{}}
	snaps := application.NewSnapshotService(m.docs, provider.NewFake(101, 100), application.WithStockSymbols([]string{"SPY", "QQQ"}))
	billing := application.NewBillingService(m.checkout, verifier, m.subs, nil)
	return NewServer(snaps, billing), m
}

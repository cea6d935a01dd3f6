package application

import (
	"context"
	"errors"
	"sync"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/domain"
)

var (
	ErrRepo = errors.New("repo error")
)

type fakeDocumentRepo struct {
	mu    sync.Mutex
	store map[string]map[string]any
	err   error
	calls int
}

func (f *fakeDocumentRepo) Get(_ context.Context, collection, id string) (domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return domain.Document{}, f.err
	}
	data, ok := f.store[collection+"/"+id]
	if !ok {
		return domain.Document{}, ErrNotFound
	}
	return domain.Document{Collection: collection, ID: id, Data: data}, nil
}

type fakeQuoteProvider struct {
	quotes map[string]domain.LiveQuote
	err    error
}

func (f *fakeQuoteProvider) Quote(_ context.Context, symbol string) (domain.LiveQuote, error) {
	if f.err != nil {
		return domain.LiveQuote{}, f.err
	}
	return f.quotes[symbol], nil
}

type fakeCheckout struct {
	url    string
	err    error
	emails []string
}

func (f *fakeCheckout) CreateSubscriptionSession(_ context.Context, email string) (string, error) {
	f.emails = append(f.emails, email)
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type fakeVerifier struct {
	secret string
	event  domain.PaymentEvent
}

func (f fakeVerifier) Verify(_ []byte, signature string) (domain.PaymentEvent, error) {
	if signature != f.secret {
		return domain.PaymentEvent{}, ErrInvalidSignature
	}
	return f.event, nil
}

type fakeSubscriptionRepo struct {
	records map[string]domain.SubscriptionStatus
	writes  int
	err     error
}

func (f *fakeSubscriptionRepo) SetStatus(_ context.Context, email string, status domain.SubscriptionStatus) error {
	if f.err != nil {
		return f.err
	}
	if f.records == nil {
		f.records = map[string]domain.SubscriptionStatus{}
	}
	f.writes++
	f.records[email] = status
	return nil
}

type fakeDeduper struct{ seen map[string]bool }

func (f *fakeDeduper) TryReserve(_ context.Context, k string) (bool, error) {
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	if f.seen[k] {
		return false, nil
	}
	f.seen[k] = true
	return true, nil
}

func (f *fakeDeduper) Release(_ context.Context, k string) error {
	delete(f.seen, k)
	return nil
}

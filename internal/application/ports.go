package application

import (
	"context"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/domain"
)

// DocumentRepo returns ErrNotFound for an absent document.
type DocumentRepo interface {
	Get(ctx context.Context, collection, id string) (domain.Document, error)
}

type SubscriptionRepo interface {
	SetStatus(ctx context.Context, email string, status domain.SubscriptionStatus) error
}

type QuoteProvider interface {
	Quote(ctx context.Context, symbol string) (domain.LiveQuote, error)
}

// CheckoutProvider creates hosted checkout sessions and returns the
// redirect URL.
type CheckoutProvider interface {
	CreateSubscriptionSession(ctx context.Context, email string) (string, error)
}

// EventVerifier authenticates a raw webhook payload. Implementations
// return ErrInvalidSignature when the signature does not match.
type EventVerifier interface {
	Verify(payload []byte, signature string) (domain.PaymentEvent, error)
}

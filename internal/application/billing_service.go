package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/domain"
)

// WebhookOutcome says what HandleWebhook did with a verified event.
type WebhookOutcome string

const (
	WebhookApplied   WebhookOutcome = "applied"
	WebhookIgnored   WebhookOutcome = "ignored"
	WebhookSkipped   WebhookOutcome = "skipped"
	WebhookDuplicate WebhookOutcome = "duplicate"
)

type BillingService struct {
	checkout CheckoutProvider
	verifier EventVerifier
	subs     SubscriptionRepo
	dedupe   EventDeduper
}

func NewBillingService(checkout CheckoutProvider, verifier EventVerifier, subs SubscriptionRepo, dedupe EventDeduper) *BillingService {
	if dedupe == nil {
		dedupe = NoopDeduper{}
	}
	return &BillingService{checkout: checkout, verifier: verifier, subs: subs, dedupe: dedupe}
}

func (s *BillingService) CreateCheckout(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("email is required: %w", ErrBadRequest)
	}
	url, err := s.checkout.CreateSubscriptionSession(ctx, email)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return url, nil
}

// HandleWebhook verifies the payload and applies the subscription
// transition for the event type. Nothing is written unless the signature
// verifies.
func (s *BillingService) HandleWebhook(ctx context.Context, payload []byte, signature string) (domain.PaymentEvent, WebhookOutcome, error) {
	ev, err := s.verifier.Verify(payload, signature)
	if err != nil {
		return domain.PaymentEvent{}, "", err
	}

	var status domain.SubscriptionStatus
	switch ev.Type {
	case domain.EventCheckoutCompleted:
		status = domain.SubscriptionActive
	case domain.EventSubscriptionDeleted, domain.EventInvoicePaymentFail:
		status = domain.SubscriptionInactive
	default:
		return ev, WebhookIgnored, nil
	}
	if ev.Email == "" {
		return ev, WebhookSkipped, nil
	}

	key := "webhook:" + ev.ID
	if ev.ID != "" {
		fresh, err := s.dedupe.TryReserve(ctx, key)
		if err != nil {
			return ev, "", fmt.Errorf("reserve event %s: %w", ev.ID, err)
		}
		if !fresh {
			return ev, WebhookDuplicate, nil
		}
	}

	if err := s.subs.SetStatus(ctx, ev.Email, status); err != nil {
		if ev.ID != "" {
			_ = s.dedupe.Release(ctx, key)
		}
		return ev, "", fmt.Errorf("set subscription %s: %w", status, err)
	}
	return ev, WebhookApplied, nil
}

package stripepay

import (
	"encoding/json"
	"fmt"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/application"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/domain"

	"github.com/stripe/stripe-go/v76/webhook"
)

type Verifier struct {
	secret string
}

var _ application.EventVerifier = (*Verifier)(nil)

func NewVerifier(secret string) *Verifier { return &Verifier{secret: secret} }

// eventObject covers the objects carried by the handled event types:
// checkout sessions and subscriptions hold metadata directly, invoices
// carry it under subscription_details.
type eventObject struct {
	Metadata            map[string]string `json:"metadata"`
	SubscriptionDetails *struct {
		Metadata map[string]string `json:"metadata"`
	} `json:"subscription_details"`
}

func (v *Verifier) Verify(payload []byte, signature string) (domain.PaymentEvent, error) {
	if v.secret == "" {
		return domain.PaymentEvent{}, fmt.Errorf("stripe: webhook secret not configured: %w", application.ErrInvalidSignature)
	}
	ev, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		Tolerance:                webhook.DefaultTolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return domain.PaymentEvent{}, fmt.Errorf("stripe: %v: %w", err, application.ErrInvalidSignature)
	}

	out := domain.PaymentEvent{ID: ev.ID, Type: string(ev.Type)}
	if ev.Data != nil && len(ev.Data.Raw) > 0 {
		var obj eventObject
		if err := json.Unmarshal(ev.Data.Raw, &obj); err == nil {
			out.Email = emailOf(obj)
		}
	}
	return out, nil
}

func emailOf(obj eventObject) string {
	if e := obj.Metadata[MetadataEmailKey]; e != "" {
		return e
	}
	if obj.SubscriptionDetails != nil {
		return obj.SubscriptionDetails.Metadata[MetadataEmailKey]
	}
	return ""
}

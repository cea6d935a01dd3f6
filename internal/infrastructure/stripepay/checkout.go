package stripepay

import (
	"context"
	"errors"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/application"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// MetadataEmailKey tags sessions and subscriptions with the buyer email so
// later webhook events can be correlated.
const MetadataEmailKey = "email"

type sessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type Checkout struct {
	sessions   sessionCreator
	priceID    string
	successURL string
	cancelURL  string
}

var _ application.CheckoutProvider = (*Checkout)(nil)

func NewCheckout(api *client.API, priceID, successURL, cancelURL string) *Checkout {
	return &Checkout{sessions: api.CheckoutSessions, priceID: priceID, successURL: successURL, cancelURL: cancelURL}
}

// CreateSubscriptionSession creates a one-item subscription checkout and
// returns its hosted URL.
func (c *Checkout) CreateSubscriptionSession(ctx context.Context, email string) (string, error) {
	if c.priceID == "" {
		return "", errors.New("stripe: missing price id")
	}
	meta := map[string]string{MetadataEmailKey: email}
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(c.priceID), Quantity: stripe.Int64(1)},
		},
		CustomerEmail: stripe.String(email),
		SuccessURL:    stripe.String(c.successURL),
		CancelURL:     stripe.String(c.cancelURL),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: meta,
		},
	}
	params.Context = ctx
	params.Metadata = map[string]string{MetadataEmailKey: email}

	s, err := c.sessions.New(params)
	if err != nil {
		return "", err
	}
	return s.URL, nil
}

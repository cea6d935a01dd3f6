package provider

import (
	"context"
	"time"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/application"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/domain"
)

// Ensure Fake implements application.QuoteProvider.
var _ application.QuoteProvider = (*Fake)(nil)

// Fake quotes every symbol at a fixed price and previous close.
type Fake struct {
	price     float64
	prevClose float64
}

func NewFake(price, prevClose float64) *Fake { return &Fake{price: price, prevClose: prevClose} }

func (f *Fake) Quote(_ context.Context, symbol string) (domain.LiveQuote, error) {
	cur, prev := f.price, f.prevClose
	return domain.LiveQuote{
		Symbol:    symbol,
		Current:   &cur,
		PrevClose: &prev,
		QuotedAt:  time.Now().UTC(),
	}, nil
}

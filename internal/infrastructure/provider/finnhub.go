package provider

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/application"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/domain"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/httpx"
)

const (
	finnhubQuotePath = "/api/v1/quote"
	// FinnhubTokenHeader carries the API key so it never appears in a URL.
	FinnhubTokenHeader = "X-Finnhub-Token"
)

// FinnhubProvider reads live quotes from a Finnhub-compatible quote API.
type FinnhubProvider struct {
	BaseURL string
	APIKey  string
	Client  *httpx.Client
}

var _ application.QuoteProvider = (*FinnhubProvider)(nil)

// Absent fields decode as nil; Finnhub answers unknown symbols with zeros.
// Change and percent are derived locally from c and pc.
type finnhubQuote struct {
	Current   *float64 `json:"c"`
	PrevClose *float64 `json:"pc"`
	Timestamp int64    `json:"t"`
}

func (p *FinnhubProvider) Quote(ctx context.Context, symbol string) (domain.LiveQuote, error) {
	if p.BaseURL == "" || p.APIKey == "" {
		return domain.LiveQuote{}, errors.New("finnhub: missing configuration")
	}
	if symbol == "" {
		return domain.LiveQuote{}, errors.New("finnhub: empty symbol")
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return domain.LiveQuote{}, fmt.Errorf("finnhub: invalid base url: %w", err)
	}
	u.Path = finnhubQuotePath
	q := u.Query()
	q.Set("symbol", symbol)
	u.RawQuery = q.Encode()

	var client httpx.Client
	if p.Client != nil {
		client = *p.Client
	}
	client.Token, client.TokenHeader = p.APIKey, FinnhubTokenHeader
	var body finnhubQuote
	if err := client.GetJSON(ctx, u.String(), &body); err != nil {
		return domain.LiveQuote{}, fmt.Errorf("finnhub: %w", err)
	}

	quotedAt := time.Now().UTC()
	if body.Timestamp > 0 {
		quotedAt = time.Unix(body.Timestamp, 0).UTC()
	}
	return domain.LiveQuote{
		Symbol:    symbol,
		Current:   body.Current,
		PrevClose: body.PrevClose,
		QuotedAt:  quotedAt,
	}, nil
}

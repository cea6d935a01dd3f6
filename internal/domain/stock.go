package domain

import "time"

// LiveQuote is what the market-data provider returned for one symbol.
// Nil fields were absent upstream.
type LiveQuote struct {
	Symbol    string
	Current   *float64
	PrevClose *float64
	QuotedAt  time.Time
}

// StockQuote is the normalized quote served to the dashboard.
type StockQuote struct {
	Current       string `json:"current"`
	Change        string `json:"change"`
	PercentChange string `json:"percentChange"`
}

// StockBoard maps a symbol to its quote; nil marks an incomplete upstream
// quote. LastUpdated is the newest upstream quote time, RFC 3339 UTC.
type StockBoard struct {
	Quotes      map[string]*StockQuote `json:"quotes"`
	LastUpdated *string                `json:"last_updated"`
}

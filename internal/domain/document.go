package domain

import "time"

// Fixed keys of the pre-computed market documents.
const (
	CollectionMarketData = "market_data"
	CollectionRates      = "mortgage_rates"
	CollectionIndicators = "economic_indicators"

	DocMBSProducts      = "mbs_products"
	DocTreasuryYields   = "treasury_yields"
	DocDailyRates       = "daily"
	DocLatestIndicators = "latest"

	FieldLastUpdated = "last_updated"
)

// Document is a raw stored document. Numeric values arrive as json.Number
// or string; callers never rely on a field being present.
type Document struct {
	Collection string
	ID         string
	Data       map[string]any
	UpdatedAt  time.Time
}

// Key returns "collection/id".
func (d Document) Key() string { return d.Collection + "/" + d.ID }

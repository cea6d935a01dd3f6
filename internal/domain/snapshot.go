package domain

// Reading is one instrument inside a MarketSnapshot. Values are kept as the
// source rendered them.
type Reading struct {
	Current   *string `json:"current"`
	Change    *string `json:"change"`
	Open      *string `json:"open"`
	High      *string `json:"high"`
	Low       *string `json:"low"`
	PrevClose *string `json:"prevClose"`
}

type MarketSnapshot struct {
	Instruments map[string]Reading `json:"instruments"`
	LastUpdated *string            `json:"last_updated"`
}

type Dashboard struct {
	MBS        MarketSnapshot `json:"mbs"`
	Treasuries MarketSnapshot `json:"treasuries"`
}

// Instrument symbols per market document.
var (
	MBSSymbols      = []string{"UMBS_5_5", "UMBS_6_0", "GNMA_5_5", "GNMA_6_0"}
	TreasurySymbols = []string{"US10Y", "US30Y"}
)

package ticker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/domain"
)

// Group is one independently polled data group: a single endpoint and the
// cells it renders.
type Group struct {
	Name     string
	Path     string
	Interval time.Duration
	Render   func(body []byte) (map[string]Cell, error)
}

// DefaultGroups returns the dashboard, rates and stocks groups.
func DefaultGroups(every, ratesEvery time.Duration) []Group {
	return []Group{
		{Name: "dashboard", Path: "/api/dashboard", Interval: every, Render: RenderDashboard},
		{Name: "rates", Path: "/api/mortgage-rates", Interval: ratesEvery, Render: RenderRates},
		{Name: "stocks", Path: "/api/stocks", Interval: every, Render: RenderStocks},
	}
}

func renderMarket(prefix string, s domain.MarketSnapshot, out map[string]Cell) {
	for sym, r := range s.Instruments {
		k := prefix + "." + sym + "."
		out[k+"current"] = Value(r.Current)
		out[k+"change"] = Change(r.Change)
		out[k+"open"] = Value(r.Open)
		out[k+"high"] = Value(r.High)
		out[k+"low"] = Value(r.Low)
		out[k+"prevClose"] = Value(r.PrevClose)
	}
	out[prefix+".last_updated"] = Value(s.LastUpdated)
}

func RenderDashboard(body []byte) (map[string]Cell, error) {
	var d domain.Dashboard
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, fmt.Errorf("decode dashboard: %w", err)
	}
	out := map[string]Cell{}
	renderMarket("mbs", d.MBS, out)
	renderMarket("treasuries", d.Treasuries, out)
	return out, nil
}

func RenderRates(body []byte) (map[string]Cell, error) {
	var s domain.RateSheet
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("decode rates: %w", err)
	}
	out := map[string]Cell{}
	for p, e := range s.Rates {
		k := "rates." + p + "."
		out[k+"latest"] = Value(e.Latest)
		out[k+"yesterday"] = Value(e.Yesterday)
		out[k+"last_month"] = Value(e.LastMonth)
		out[k+"year_ago"] = Value(e.YearAgo)
		out[k+"daily_change"] = Change(e.DailyChange)
	}
	out["rates.last_updated"] = Value(s.LastUpdated)
	return out, nil
}

func RenderStocks(body []byte) (map[string]Cell, error) {
	var b domain.StockBoard
	if err := json.Unmarshal(body, &b); err != nil {
		return nil, fmt.Errorf("decode stocks: %w", err)
	}
	out := map[string]Cell{}
	for sym, q := range b.Quotes {
		k := "stocks." + sym + "."
		if q == nil {
			out[k+"current"], out[k+"change"], out[k+"percentChange"] = blank, blank, blank
			continue
		}
		out[k+"current"] = Value(&q.Current)
		out[k+"change"] = Change(&q.Change)
		out[k+"percentChange"] = Percent(&q.PercentChange)
	}
	out["stocks.last_updated"] = Value(b.LastUpdated)
	return out, nil
}

package normalize

import (
	"github.com/eaglemaker22/mbsgoat-sub000/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	ratePlaces   = 3
	equityPlaces = 2
)

var readingSuffixes = []string{"current", "change", "open", "high", "low", "prevClose"}

// MarketTable maps the flat <SYM>_<field> keys of a market document to
// the fields of one Reading.
func MarketTable(symbol string) []Field {
	fields := make([]Field, 0, len(readingSuffixes))
	for _, s := range readingSuffixes {
		fields = append(fields, Field{Source: symbol + "_" + s, Target: s})
	}
	return fields
}

// RateTable maps one mortgage product. Every value is fixed to 3 places.
func RateTable(product string) []Field {
	return []Field{
		{Source: product + "_latest", Target: "latest", Coerce: Fixed(ratePlaces)},
		{Source: product + "_yesterday", Target: "yesterday", Coerce: Fixed(ratePlaces)},
		{Source: product + "_last_month", Target: "last_month", Coerce: Fixed(ratePlaces)},
		{Source: product + "_year_ago", Target: "year_ago", Coerce: Fixed(ratePlaces)},
	}
}

func RateChange(product string) Derived {
	return Derived{
		Target:     "daily_change",
		Minuend:    product + "_latest",
		Subtrahend: product + "_yesterday",
		Places:     ratePlaces,
		ZeroAsNull: true,
	}
}

func IndicatorTable(id string) []Field {
	return []Field{
		{Source: id + "_latest", Target: "latest"},
		{Source: id + "_latest_date", Target: "latest_date"},
		{Source: id + "_last_month", Target: "last_month"},
		{Source: id + "_last_month_date", Target: "last_month_date"},
		{Source: id + "_year_ago", Target: "year_ago"},
		{Source: id + "_year_ago_date", Target: "year_ago_date"},
	}
}

func IndicatorChange(id string) Derived {
	return Derived{
		Target:     "monthly_change",
		Minuend:    id + "_latest",
		Subtrahend: id + "_last_month",
		Places:     -1,
		ZeroAsNull: true,
	}
}

var lastUpdated = Field{Source: domain.FieldLastUpdated, Target: domain.FieldLastUpdated}

// Market reshapes a market document into a snapshot of the given symbols.
func Market(doc map[string]any, symbols []string) domain.MarketSnapshot {
	out := domain.MarketSnapshot{
		Instruments: make(map[string]domain.Reading, len(symbols)),
		LastUpdated: lastUpdated.value(doc),
	}
	for _, sym := range symbols {
		v := Apply(doc, MarketTable(sym))
		out.Instruments[sym] = domain.Reading{
			Current:   v["current"],
			Change:    v["change"],
			Open:      v["open"],
			High:      v["high"],
			Low:       v["low"],
			PrevClose: v["prevClose"],
		}
	}
	return out
}

func Rates(doc map[string]any, products []string) domain.RateSheet {
	out := domain.RateSheet{
		Rates:       make(map[string]domain.RateEntry, len(products)),
		LastUpdated: lastUpdated.value(doc),
	}
	for _, p := range products {
		v := Apply(doc, RateTable(p))
		out.Rates[p] = domain.RateEntry{
			Latest:      v["latest"],
			Yesterday:   v["yesterday"],
			LastMonth:   v["last_month"],
			YearAgo:     v["year_ago"],
			DailyChange: RateChange(p).Eval(doc),
		}
	}
	return out
}

func Indicators(doc map[string]any, ids []string) domain.IndicatorSheet {
	out := domain.IndicatorSheet{
		Indicators:  make(map[string]domain.IndicatorEntry, len(ids)),
		LastUpdated: lastUpdated.value(doc),
	}
	for _, id := range ids {
		v := Apply(doc, IndicatorTable(id))
		out.Indicators[id] = domain.IndicatorEntry{
			Latest:        v["latest"],
			LatestDate:    v["latest_date"],
			LastMonth:     v["last_month"],
			LastMonthDate: v["last_month_date"],
			YearAgo:       v["year_ago"],
			YearAgoDate:   v["year_ago_date"],
			MonthlyChange: IndicatorChange(id).Eval(doc),
		}
	}
	return out
}

// Quote derives the dashboard quote from a live quote. It returns nil when
// the current price or previous close is missing or zero.
func Quote(q domain.LiveQuote) *domain.StockQuote {
	if q.Current == nil || q.PrevClose == nil || *q.Current == 0 || *q.PrevClose == 0 {
		return nil
	}
	cur := decimal.NewFromFloat(*q.Current)
	prev := decimal.NewFromFloat(*q.PrevClose)
	change := cur.Sub(prev)
	pct := change.Div(prev).Mul(decimal.NewFromInt(100))
	return &domain.StockQuote{
		Current:       cur.StringFixed(equityPlaces),
		Change:        change.StringFixed(equityPlaces),
		PercentChange: pct.StringFixed(equityPlaces) + "%",
	}
}

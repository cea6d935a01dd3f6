package application

import (
	"context"
	"fmt"
	"time"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/domain"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/normalize"

	"golang.org/x/sync/errgroup"
)

var DefaultStockSymbols = []string{"SPY", "QQQ", "DIA", "IWM"}

type SnapshotService struct {
	docs         DocumentRepo
	quotes       QuoteProvider
	stockSymbols []string
}

type SnapshotOption func(*SnapshotService)

func WithStockSymbols(symbols []string) SnapshotOption {
	return func(s *SnapshotService) { s.stockSymbols = symbols }
}

func NewSnapshotService(docs DocumentRepo, quotes QuoteProvider, opts ...SnapshotOption) *SnapshotService {
	s := &SnapshotService{docs: docs, quotes: quotes}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.stockSymbols) == 0 {
		s.stockSymbols = DefaultStockSymbols
	}
	return s
}

func (s *SnapshotService) get(ctx context.Context, collection, id string) (domain.Document, error) {
	doc, err := s.docs.Get(ctx, collection, id)
	if err != nil {
		return domain.Document{}, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

// Dashboard reads the MBS and treasury documents concurrently; the two
// reads are independent and not taken from one consistent snapshot.
func (s *SnapshotService) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	var mbs, tsy domain.Document
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		mbs, err = s.get(gctx, domain.CollectionMarketData, domain.DocMBSProducts)
		return err
	})
	g.Go(func() error {
		var err error
		tsy, err = s.get(gctx, domain.CollectionMarketData, domain.DocTreasuryYields)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Dashboard{}, err
	}
	return domain.Dashboard{
		MBS:        normalize.Market(mbs.Data, domain.MBSSymbols),
		Treasuries: normalize.Market(tsy.Data, domain.TreasurySymbols),
	}, nil
}

func (s *SnapshotService) MBS(ctx context.Context) (domain.MarketSnapshot, error) {
	doc, err := s.get(ctx, domain.CollectionMarketData, domain.DocMBSProducts)
	if err != nil {
		return domain.MarketSnapshot{}, err
	}
	return normalize.Market(doc.Data, domain.MBSSymbols), nil
}

func (s *SnapshotService) Treasuries(ctx context.Context) (domain.MarketSnapshot, error) {
	doc, err := s.get(ctx, domain.CollectionMarketData, domain.DocTreasuryYields)
	if err != nil {
		return domain.MarketSnapshot{}, err
	}
	return normalize.Market(doc.Data, domain.TreasurySymbols), nil
}

func (s *SnapshotService) MortgageRates(ctx context.Context) (domain.RateSheet, error) {
	doc, err := s.get(ctx, domain.CollectionRates, domain.DocDailyRates)
	if err != nil {
		return domain.RateSheet{}, err
	}
	return normalize.Rates(doc.Data, domain.RateProducts), nil
}

func (s *SnapshotService) Indicators(ctx context.Context) (domain.IndicatorSheet, error) {
	doc, err := s.get(ctx, domain.CollectionIndicators, domain.DocLatestIndicators)
	if err != nil {
		return domain.IndicatorSheet{}, err
	}
	return normalize.Indicators(doc.Data, domain.IndicatorIDs), nil
}

// Stocks fetches every configured symbol concurrently. An incomplete
// upstream quote becomes nil; a provider error fails the whole board.
func (s *SnapshotService) Stocks(ctx context.Context) (domain.StockBoard, error) {
	live := make([]domain.LiveQuote, len(s.stockSymbols))
	g, gctx := errgroup.WithContext(ctx)
	for i, sym := range s.stockSymbols {
		g.Go(func() error {
			q, err := s.quotes.Quote(gctx, sym)
			if err != nil {
				return fmt.Errorf("quote %s: %w", sym, err)
			}
			live[i] = q
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.StockBoard{}, err
	}
	board := domain.StockBoard{Quotes: make(map[string]*domain.StockQuote, len(live))}
	var newest time.Time
	for i, q := range live {
		board.Quotes[s.stockSymbols[i]] = normalize.Quote(q)
		if q.QuotedAt.After(newest) {
			newest = q.QuotedAt
		}
	}
	if !newest.IsZero() {
		ts := newest.UTC().Format(time.RFC3339)
		board.LastUpdated = &ts
	}
	return board, nil
}

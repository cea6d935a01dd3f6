package ticker

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/httpx"

	"go.uber.org/zap"
)

const defaultInterval = 60 * time.Second

// Poller refreshes the board from the snapshot endpoints. Every group runs
// on its own timer and failure boundary; a new cycle of a group cancels
// that group's in-flight cycle, and a superseded cycle never writes.
type Poller struct {
	BaseURL  string
	Client   *httpx.Client
	Board    *Board
	Groups   []Group
	Log      *zap.Logger
	OnUpdate func(group string)
}

type groupState struct {
	gen atomic.Int64
}

func (s *groupState) next() int64 { return s.gen.Add(1) }

func (p *Poller) Start(ctx context.Context) {
	log := p.logger()
	var wg sync.WaitGroup
	for _, g := range p.Groups {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.runGroup(ctx, g)
		}()
	}
	log.Info("ticker_started", zap.Int("groups", len(p.Groups)))
	wg.Wait()
	log.Info("ticker_stopped")
}

func (p *Poller) runGroup(ctx context.Context, g Group) {
	every := g.Interval
	if every <= 0 {
		every = defaultInterval
	}
	state := &groupState{}
	cancel := context.CancelFunc(func() {})
	var inflight sync.WaitGroup
	defer func() {
		cancel()
		inflight.Wait()
	}()

	launch := func() {
		cancel()
		cctx, c := context.WithCancel(ctx)
		cancel = c
		gen := state.next()
		inflight.Add(1)
		go func() {
			defer inflight.Done()
			_ = p.cycle(cctx, g, state, gen)
		}()
	}

	launch()
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			launch()
		}
	}
}

// Refresh runs one cycle of g outside the timer.
func (p *Poller) Refresh(ctx context.Context, g Group) error {
	state := &groupState{}
	return p.cycle(ctx, g, state, state.next())
}

func (p *Poller) cycle(ctx context.Context, g Group, state *groupState, gen int64) error {
	log := p.logger().With(zap.String("group", g.Name))
	client := p.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var body json.RawMessage
	if err := client.GetJSON(ctx, strings.TrimRight(p.BaseURL, "/")+g.Path, &body); err != nil {
		switch {
		case ctx.Err() != nil:
		case httpx.IsNotFound(err):
			log.Info("ticker.no_data", zap.String("path", g.Path))
		default:
			log.Warn("ticker.fetch_failed", zap.Error(err))
		}
		return err
	}
	cells, err := g.Render(body)
	if err != nil {
		log.Warn("ticker.render_failed", zap.Error(err))
		return err
	}

	p.Board.mu.Lock()
	current := state.gen.Load() == gen && ctx.Err() == nil
	if current {
		p.Board.merge(cells)
	}
	p.Board.mu.Unlock()

	if !current {
		log.Debug("ticker.superseded", zap.Int64("gen", gen))
		return context.Canceled
	}
	if p.OnUpdate != nil {
		p.OnUpdate(g.Name)
	}
	return nil
}

func (p *Poller) logger() *zap.Logger {
	if p.Log == nil {
		return zap.NewNop()
	}
	return p.Log
}

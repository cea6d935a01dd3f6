package ticker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const ratesBody = `{"rates":{"FIXED30Y":{"latest":"6.875","yesterday":"7.000","last_month":null,"year_ago":null,"daily_change":"-0.125"}},"last_updated":"2025-06-01"}`

func TestRenderers(t *testing.T) {
	cells, err := RenderRates([]byte(ratesBody))
	require.NoError(t, err)
	require.Equal(t, Cell{Text: "-0.125", Class: ClassNegative}, cells["rates.FIXED30Y.daily_change"])
	require.Equal(t, Cell{Text: "--"}, cells["rates.FIXED30Y.last_month"])

	cells, err = RenderStocks([]byte(`{"quotes":{"SPY":{"current":"510.00","change":"0.00","percentChange":"0.00%"},"QQQ":null},"last_updated":"2024-05-01T20:00:00Z"}`))
	require.NoError(t, err)
	require.Equal(t, Cell{Text: "0.00"}, cells["stocks.SPY.change"])
	require.Equal(t, Cell{Text: "--"}, cells["stocks.QQQ.current"])
	require.Equal(t, Cell{Text: "2024-05-01T20:00:00Z"}, cells["stocks.last_updated"])

	cells, err = RenderDashboard([]byte(`{"mbs":{"instruments":{"UMBS_5_5":{"current":"99.5","change":"0.25"}},"last_updated":null},"treasuries":{"instruments":{},"last_updated":"x"}}`))
	require.NoError(t, err)
	require.Equal(t, Cell{Text: "+0.25", Class: ClassPositive}, cells["mbs.UMBS_5_5.change"])
	require.Equal(t, Cell{Text: "--"}, cells["mbs.UMBS_5_5.open"])
	require.Equal(t, Cell{Text: "x"}, cells["treasuries.last_updated"])

	_, err = RenderRates([]byte(`[`))
	require.Error(t, err)
}

func TestRefresh_FailureKeepsPriorValues(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(ratesBody))
	}))
	defer srv.Close()

	board := NewBoard()
	p := &Poller{BaseURL: srv.URL, Board: board}
	g := Group{Name: "rates", Path: "/api/mortgage-rates", Render: RenderRates}

	require.NoError(t, p.Refresh(context.Background(), g))
	require.Equal(t, "6.875", board.Get("rates.FIXED30Y.latest").Text)

	fail.Store(true)
	require.Error(t, p.Refresh(context.Background(), g))
	require.Equal(t, "6.875", board.Get("rates.FIXED30Y.latest").Text)
}

func TestRefresh_GroupsAreIsolated(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/mortgage-rates", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(ratesBody))
	})
	mux.HandleFunc("/api/stocks", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	board := NewBoard()
	var updated []string
	p := &Poller{BaseURL: srv.URL, Board: board, OnUpdate: func(g string) { updated = append(updated, g) }}
	groups := DefaultGroups(time.Minute, 2*time.Minute)

	require.Error(t, p.Refresh(context.Background(), groups[2]))
	require.NoError(t, p.Refresh(context.Background(), groups[1]))
	require.Equal(t, []string{"rates"}, updated)
	require.Equal(t, "--", board.Get("stocks.SPY.current").Text)
	require.Equal(t, "6.875", board.Get("rates.FIXED30Y.latest").Text)
}

func TestCycle_SupersededDoesNotWrite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(ratesBody))
	}))
	defer srv.Close()

	board := NewBoard()
	p := &Poller{BaseURL: srv.URL, Board: board}
	g := Group{Name: "rates", Path: "/api/mortgage-rates", Render: RenderRates}

	state := &groupState{}
	stale := state.next()
	state.next()
	err := p.cycle(context.Background(), g, state, stale)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, Placeholder, board.Get("rates.FIXED30Y.latest").Text)
}

func TestStart_PollsUntilCanceled(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(ratesBody))
	}))
	defer srv.Close()

	board := NewBoard()
	p := &Poller{
		BaseURL: srv.URL,
		Board:   board,
		Groups:  []Group{{Name: "rates", Path: "/api/mortgage-rates", Interval: 25 * time.Millisecond, Render: RenderRates}},
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return hits.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return board.Get("rates.FIXED30Y.latest").Text == "6.875" }, 2*time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop")
	}
}

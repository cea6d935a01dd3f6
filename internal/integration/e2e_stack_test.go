//go:build e2e
// +build e2e

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/bootstrap"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/docload"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/domain"
	httpserver "github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/http"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/httpx"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/ticker"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	startupTimeout = 2 * time.Minute
	requestTimeout = 5 * time.Second
)

// startStack runs postgres in a container, seeds it from seed/ and serves
// the API over httptest.
func startStack(t *testing.T) string {
	t.Helper()
	if _, err := os.Stat("/var/run/docker.sock"); err != nil && os.Getenv("DOCKER_HOST") == "" {
		t.Skip("docker unavailable")
	}
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	t.Cleanup(cancel)

	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		postgres.WithDatabase("mbsgoat"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	t.Setenv("DATABASE_URL", dsn)
	t.Setenv("MARKET_PROVIDER", "fake")
	t.Setenv("WEBHOOK_DEDUPE", "none")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_e2e")

	store, closeStore, err := bootstrap.InitDocumentStore(ctx)
	require.NoError(t, err)
	t.Cleanup(closeStore)
	n, err := docload.Load(ctx, os.DirFS(repoPath(t, "seed")), store, nil)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	srv, cleanup, err := bootstrap.InitAPI(ctx)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	ts := httptest.NewServer(httpserver.NewRouter(srv))
	t.Cleanup(ts.Close)
	return ts.URL
}

func TestE2E_SnapshotEndpoints(t *testing.T) {
	base := startStack(t)
	client := &http.Client{Timeout: requestTimeout}

	resp, err := client.Get(base + "/readyz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rates domain.RateSheet
	getJSON(t, client, base+"/api/mortgage-rates", &rates)
	require.Equal(t, "0.250", *rates.Rates["FIXED30Y"].DailyChange)
	require.Nil(t, rates.Rates["FIXED15Y"].DailyChange)
	require.Nil(t, rates.Rates["FHA30Y"].Yesterday)

	var dash domain.Dashboard
	getJSON(t, client, base+"/api/dashboard", &dash)
	require.Equal(t, "99.53125", *dash.MBS.Instruments["UMBS_5_5"].Current)
	require.Nil(t, dash.MBS.Instruments["GNMA_6_0"].Open)
	require.Equal(t, "4.612", *dash.Treasuries.Instruments["US10Y"].Current)

	var stocks domain.StockBoard
	getJSON(t, client, base+"/api/stocks", &stocks)
	require.Equal(t, "0.25%", stocks.Quotes["SPY"].PercentChange)
}

func TestE2E_TickerAgainstAPI(t *testing.T) {
	base := startStack(t)

	board := ticker.NewBoard()
	p := &ticker.Poller{
		BaseURL: base,
		Client:  &httpx.Client{HTTP: &http.Client{Timeout: requestTimeout}},
		Board:   board,
	}
	ctx := context.Background()
	for _, g := range ticker.DefaultGroups(time.Minute, time.Minute) {
		require.NoError(t, p.Refresh(ctx, g), g.Name)
	}

	require.Equal(t, ticker.Cell{Text: "+0.250", Class: ticker.ClassPositive}, board.Get("rates.FIXED30Y.daily_change"))
	require.Equal(t, ticker.Placeholder, board.Get("rates.FIXED15Y.daily_change").Text)
	require.Equal(t, ticker.ClassNegative, board.Get("mbs.UMBS_5_5.change").Class)
	require.Equal(t, "+0.25%", board.Get("stocks.SPY.percentChange").Text)
}

func getJSON(t *testing.T, client *http.Client, url string, out any) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, url)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func repoPath(t *testing.T, parts ...string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("failed to determine caller")
	}
	// internal/integration -> internal -> repo root
	root := filepath.Dir(filepath.Dir(filepath.Dir(file)))
	return filepath.Join(root, filepath.Join(parts...))
}

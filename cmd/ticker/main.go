package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"text/tabwriter"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/config"
	infraconfig "github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/config"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/httpx"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/logx"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/ticker"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	logger := logx.L()
	cfg := config.Load()

	board := ticker.NewBoard()
	var mu sync.Mutex
	render := func(group string) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(os.Stdout, "\n== %s ==\n", group)
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, row := range board.Rows() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Key, row.Text, row.Class)
		}
		_ = tw.Flush()
	}

	p := &ticker.Poller{
		BaseURL:  cfg.TickerBaseURL,
		Client:   &httpx.Client{HTTP: &http.Client{Timeout: infraconfig.DefaultMarketTimeout}},
		Board:    board,
		Groups:   ticker.DefaultGroups(cfg.TickerInterval, cfg.TickerRatesInterval),
		Log:      logger,
		OnUpdate: render,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info("ticker polling", zap.String("base_url", cfg.TickerBaseURL))
	p.Start(ctx)
}

package main

import (
	"context"
	"flag"
	"os"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/bootstrap"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/docload"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	dir := flag.String("dir", "seed", "directory holding <collection>/<id>.json documents")
	flag.Parse()

	ctx := context.Background()
	logger := logx.L()

	store, cleanup, err := bootstrap.InitDocumentStore(ctx)
	if err != nil {
		logger.Fatal("bootstrap store", zap.Error(err))
	}
	defer cleanup()

	n, err := docload.Load(ctx, os.DirFS(*dir), store, logger)
	if err != nil {
		logger.Error("docload failed", zap.Error(err), zap.Int("written", n))
		cleanup()
		os.Exit(1)
	}
	logger.Info("docload done", zap.String("dir", *dir), zap.Int("written", n))
}

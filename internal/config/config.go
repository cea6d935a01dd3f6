package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port           string
	DatabaseURL    string
	PGMaxConns     int
	PGMinConns     int
	RequestTimeout time.Duration
	// Payments
	StripeSecretKey     string
	StripePriceID       string
	StripeWebhookSecret string
	CheckoutSuccessURL  string
	CheckoutCancelURL   string
	// Market data
	MarketProvider string
	MarketAPIBase  string
	MarketAPIKey   string
	StockSymbols   []string
	// Webhook dedupe (redis)
	WebhookDedupe string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DedupeTTL     time.Duration
	// Ticker
	TickerBaseURL       string
	TickerInterval      time.Duration
	TickerRatesInterval time.Duration
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func durMS(key string, defMS int) time.Duration {
	return time.Duration(atoiDef(getEnv(key, strconv.Itoa(defMS)), defMS)) * time.Millisecond
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToUpper(p))
		}
	}
	return out
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:                 getEnv("ENV", "local"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		PGMaxConns:          atoiDef(getEnv("PG_MAX_CONNS", "0"), 0),
		PGMinConns:          atoiDef(getEnv("PG_MIN_CONNS", "0"), 0),
		RequestTimeout:      durMS("REQUEST_TIMEOUT_MS", 10000),
		StripeSecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
		StripePriceID:       getEnv("STRIPE_PRICE_ID", ""),
		StripeWebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
		CheckoutSuccessURL:  getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:8080/success.html"),
		CheckoutCancelURL:   getEnv("CHECKOUT_CANCEL_URL", "http://localhost:8080/cancel.html"),
		MarketProvider:      getEnv("MARKET_PROVIDER", "fake"),
		MarketAPIBase:       getEnv("MARKET_API_BASE", "https://finnhub.io"),
		MarketAPIKey:        getEnv("MARKET_API_KEY", ""),
		StockSymbols:        splitList(getEnv("STOCK_SYMBOLS", "SPY,QQQ,DIA,IWM")),
		WebhookDedupe:       getEnv("WEBHOOK_DEDUPE", "none"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RedisDB:             atoiDef(getEnv("REDIS_DB", "0"), 0),
		DedupeTTL:           durMS("WEBHOOK_DEDUPE_TTL_MS", 72*60*60*1000),
		TickerBaseURL:       getEnv("TICKER_BASE_URL", "http://localhost:8080"),
		TickerInterval:      durMS("TICKER_INTERVAL_MS", 60000),
		TickerRatesInterval: durMS("TICKER_RATES_INTERVAL_MS", 120000),
	}
}

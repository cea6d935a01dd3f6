package config

import "time"

const (
	DefaultShutdownTimeout = 10 * time.Second
	DefaultPGMaxConns      = 5
	DefaultPGMinConns      = 1
	DefaultPGMaxIdleTime   = 2 * time.Minute
	DefaultWebhookMaxBody  = 64 << 10
	DefaultMarketTimeout   = 4 * time.Second
	DefaultDBWaitMax       = 30 * time.Second
)

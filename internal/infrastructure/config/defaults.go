package config

import "time"

const (
	DefaultHTTPPort        = "8080"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultRateLimitRPS    = 10
	DefaultRateLimitBurst  = 20
	DefaultRateLimitIdle   = 10 * time.Minute
	DefaultDogStatsDAddr   = "127.0.0.1:8125"
	DefaultAppTag          = "jewelers-mutual-clone"
)

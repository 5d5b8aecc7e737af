package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the limit applied to one route. Paths ending in "/" match
// by prefix.
type EndpointConfig struct {
	Path   string        // Exact path, or a prefix ending in "/"
	Method string        // HTTP method
	Limit  int           // Requests per window
	Window time.Duration // Period over which Limit tokens refill
	Burst  int           // Bucket capacity, defaults to Limit
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTTL         time.Duration // Buckets unused this long are dropped
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Defaults used by LoadConfig and NewLimiter(nil).
const (
	DefaultLimit           = 1000
	DefaultWindow          = time.Minute
	DefaultCleanupInterval = 5 * time.Minute
	DefaultIdleTTL         = time.Hour
)

// LoadConfig reads rate limiting configuration from the environment:
//
//	RATE_LIMIT_ENABLED, RATE_LIMIT_DEFAULT_LIMIT, RATE_LIMIT_DEFAULT_WINDOW,
//	RATE_LIMIT_CLEANUP_INTERVAL, RATE_LIMIT_ENRICH_LIMIT,
//	RATE_LIMIT_WHITELIST, RATE_LIMIT_BLACKLIST
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	endpoints := DefaultEndpointConfigs()
	if n := getEnvInt("RATE_LIMIT_ENRICH_LIMIT", 0); n > 0 {
		for i := range endpoints {
			if endpoints[i].Path == "/jobs/enrich" {
				endpoints[i].Limit = n
				endpoints[i].Burst = min(endpoints[i].Burst, n)
			}
		}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", DefaultLimit),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", DefaultWindow),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", DefaultCleanupInterval),
		IdleTTL:         DefaultIdleTTL,
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: endpoints,
	}
}

// DefaultEndpointConfigs returns the per-route limits. Routes not listed use
// the default limit; GET /health is never limited.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Batch enrichment does the most work per request
		{Path: "/jobs/enrich", Method: "POST", Limit: 60, Window: time.Hour, Burst: 10},

		// Compute endpoints
		{Path: "/skills/", Method: "POST", Limit: 600, Window: time.Minute, Burst: 60},
		{Path: "/roles/", Method: "POST", Limit: 600, Window: time.Minute, Burst: 60},
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}

package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// AIMessage is returned when a client exceeds the text-generation limit.
const AIMessage = "Too many requests. Try again in one minute."

// DefaultMessage is returned for every other limited endpoint.
const DefaultMessage = "Rate limit exceeded. Please try again later."

// EndpointConfig represents rate limiting configuration for a specific endpoint.
// Configs sharing a Group draw from one bucket per client.
type EndpointConfig struct {
	Path    string        // Path pattern; a trailing "/" matches by prefix
	Method  string        // HTTP method, empty for any
	Group   string        // Shared bucket name, defaults to Method and Path
	Limit   int           // Maximum requests per window, 0 for unlimited
	Window  time.Duration // Time window
	Burst   int           // Burst capacity (defaults to Limit if 0)
	Message string        // Message shown when the limit is hit
}

// key identifies the bucket of the config
func (c *EndpointConfig) key() string {
	if c.Group != "" {
		return c.Group
	}
	return c.Method + " " + c.Path
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{
			Enabled: false,
		}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 300),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(getEnvString("RATE_LIMIT_WHITELIST", "")),
		Blacklist:       parseIPList(getEnvString("RATE_LIMIT_BLACKLIST", "")),
		EndpointConfigs: DefaultEndpointConfigs(getEnvInt("RATE_LIMIT_AI_LIMIT", 20)),
	}
}

// DefaultEndpointConfigs returns the endpoint groups. aiLimit requests per
// minute are shared by all text-generation endpoints.
func DefaultEndpointConfigs(aiLimit int) []EndpointConfig {
	return []EndpointConfig{
		// Text generation: one shared budget for simplify and translate
		{Path: "/api/simplify", Method: "POST", Group: "ai", Limit: aiLimit, Window: time.Minute, Message: AIMessage},
		{Path: "/api/translate", Method: "POST", Group: "ai", Limit: aiLimit, Window: time.Minute, Message: AIMessage},

		// Writes to history
		{Path: "/api/history/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},

		// Static catalog (unlimited)
		{Path: "/api/profiles", Method: "GET", Limit: 0},

		// Everything else uses the default limit; /api/health is unlimited in the matcher
	}
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
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

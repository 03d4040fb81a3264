package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string

	RedisAddr     string
	RedisPassword string

	// Rate limiting for mutating endpoints (requests/sec and burst per IP).
	RateLimitPerSecond float64
	RateLimitBurst     int

	// Simulated backend latencies. The site has no real backend; submits
	// resolve locally after a fixed delay.
	BookingSubmitLatency   time.Duration
	ContactSubmitLatency   time.Duration
	ContactSuccessDisplay  time.Duration
	TransitionLeaveLatency time.Duration
	TransitionEnterLatency time.Duration

	// Motion defaults.
	ReducedMotion       bool
	DesktopMinWidth     int
	DefaultStaggerDelay time.Duration

	// Idle wizard sessions and helpful-mark sets expire after this TTL.
	SessionTTL time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "")),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitPerSecond: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 5),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 10),

		BookingSubmitLatency:   getEnvAsDuration("BOOKING_SUBMIT_LATENCY", 1600*time.Millisecond),
		ContactSubmitLatency:   getEnvAsDuration("CONTACT_SUBMIT_LATENCY", 1500*time.Millisecond),
		ContactSuccessDisplay:  getEnvAsDuration("CONTACT_SUCCESS_DISPLAY", 5*time.Second),
		TransitionLeaveLatency: getEnvAsDuration("TRANSITION_LEAVE_LATENCY", 150*time.Millisecond),
		TransitionEnterLatency: getEnvAsDuration("TRANSITION_ENTER_LATENCY", 300*time.Millisecond),

		ReducedMotion:       getEnvAsBool("REDUCED_MOTION", false),
		DesktopMinWidth:     getEnvAsInt("DESKTOP_MIN_WIDTH", 960),
		DefaultStaggerDelay: getEnvAsDuration("DEFAULT_STAGGER_DELAY", 100*time.Millisecond),

		SessionTTL: getEnvAsDuration("SESSION_TTL", 30*time.Minute),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	SeedFile string // path to the movies.yaml seed (required unless RedisAddr is set)

	// ClearAllGenresOnReset makes the form deselect every genre after a
	// submit instead of only the first selected one.
	ClearAllGenresOnReset bool

	// Redis (optional seed source, read once at startup)
	RedisAddr           string        // ex: "localhost:6379", empty = disabled
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict access to specific IP (e.g. "1.2.3.4, 10.0.0.0/8")
	TrustProxy   bool     // true => trust X-Forwarded-For headers

	CORSOrigins []string // browser origins allowed to call /api, empty = no CORS headers

	RateLimitBurst  int // requests allowed in a burst per client IP on form mutations
	RateLimitPerMin int // sustained refill per client IP per minute
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("MOVIEDB_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("MOVIEDB_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("MOVIEDB_LOG_LEVEL", "info"),
		PrettyLog: mustBool("MOVIEDB_PRETTY_LOG", true),

		// Catalog & form
		SeedFile:              getenv("MOVIEDB_SEED_FILE", ""),
		ClearAllGenresOnReset: mustBool("MOVIEDB_CLEAR_ALL_GENRES_ON_RESET", false),

		// Redis settings
		RedisAddr:           getenv("MOVIEDB_REDIS_ADDR", ""),
		RedisUser:           getenv("MOVIEDB_REDIS_USERNAME", ""),
		RedisPassword:       getenv("MOVIEDB_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("MOVIEDB_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("MOVIEDB_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("MOVIEDB_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("MOVIEDB_TRUST_PROXY", false),
		CORSOrigins:  splitAndTrim(getenv("MOVIEDB_CORS_ORIGINS", "")),

		RateLimitBurst:  getenvInt("MOVIEDB_RATE_LIMIT_BURST", 20),
		RateLimitPerMin: getenvInt("MOVIEDB_RATE_LIMIT_PER_MIN", 120),
	}

	// At least one seed source is needed to build the catalog
	if cfg.SeedFile == "" && cfg.RedisAddr == "" {
		panic("❌ FATAL: MOVIEDB_SEED_FILE is required when MOVIEDB_REDIS_ADDR is not set")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", cfg.Redacted())
	}

	return cfg
}

// Redacted returns a copy safe to print.
func (c *Config) Redacted() Config {
	cp := *c
	if cp.RedisPassword != "" {
		cp.RedisPassword = "***REDACTED***"
	}
	if cp.RedisUser != "" {
		cp.RedisUser = "***REDACTED***"
	}
	return cp
}

// RedisEnabled reports whether Redis is configured as a seed source.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

package config

import (
	"fmt"
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

	DataFile    string // path to the case studies JSON file
	PendingFile string // path to the pending submissions JSON file
	SourcesFile string // path to the feed sources YAML (optional, empty = built-in list)

	CheckInterval       time.Duration // interval between feed checks (default: 24h)
	FetchTimeout        time.Duration // per-feed HTTP timeout (default: 15s)
	MaxConcurrentFetch  int           // feeds fetched in parallel (default: 4)
	ScoreThreshold      int           // minimum ingest score to queue an entry (default: 15)
	UserAgent           string        // User-Agent sent to feed servers

	// Redis (optional feed-state cache; empty addr disables it)
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisConnectTimeout time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // initial wait between retries (ex: 2s, grows exponentially)

	AllowedHosts []string // optional, restrict access to specific Host headers
	AdminCIDRS   []string // restrict admin endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)

	SubmitBurst  int // rate limit burst for POST /submit
	SubmitPerMin int // sustained submissions per minute per client
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("CASEFOLIO_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("CASEFOLIO_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("CASEFOLIO_LOG_LEVEL", "info"),
		PrettyLog: mustBool("CASEFOLIO_PRETTY_LOG", true),

		// Data files
		DataFile:    requireEnv("CASEFOLIO_DATA_FILE"),
		PendingFile: requireEnv("CASEFOLIO_PENDING_FILE"),
		SourcesFile: getenv("CASEFOLIO_SOURCES_FILE", ""),

		// Feed ingestion
		CheckInterval:      mustDuration("CASEFOLIO_CHECK_INTERVAL", 24*time.Hour),
		FetchTimeout:       mustDuration("CASEFOLIO_FETCH_TIMEOUT", 15*time.Second),
		MaxConcurrentFetch: getenvInt("CASEFOLIO_MAX_CONCURRENT_FETCHES", 4),
		ScoreThreshold:     getenvInt("CASEFOLIO_SCORE_THRESHOLD", 15),
		UserAgent:          getenv("CASEFOLIO_USER_AGENT", "Casefolio/1.0 (RSS Monitor)"),

		// Redis settings (optional)
		RedisAddr:           getenv("CASEFOLIO_REDIS_ADDR", ""),
		RedisPassword:       getenv("CASEFOLIO_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("CASEFOLIO_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("CASEFOLIO_ALLOWED_HOSTS", "")),
		AdminCIDRS:   splitAndTrim(getenv("CASEFOLIO_ADMIN_CIDRS", "")),
		TrustProxy:   mustBool("CASEFOLIO_TRUST_PROXY", true),

		// Submission rate limiting
		SubmitBurst:  getenvInt("CASEFOLIO_SUBMIT_BURST", 3),
		SubmitPerMin: getenvInt("CASEFOLIO_SUBMIT_PER_MIN", 2),
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
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

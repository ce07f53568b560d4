package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MOVIEDB_SEED_FILE", "/data/movies.yaml")

	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %v, want :8080", cfg.ListenPort)
	}
	if cfg.SeedFile != "/data/movies.yaml" {
		t.Errorf("SeedFile = %v", cfg.SeedFile)
	}
	if cfg.ClearAllGenresOnReset {
		t.Error("ClearAllGenresOnReset should default to false")
	}
	if cfg.RedisEnabled() {
		t.Error("Redis should be disabled without MOVIEDB_REDIS_ADDR")
	}
	if cfg.RateLimitBurst != 20 || cfg.RateLimitPerMin != 120 {
		t.Errorf("rate limit = %v/%v, want 20/120", cfg.RateLimitBurst, cfg.RateLimitPerMin)
	}
}

func TestLoadRedisOnly(t *testing.T) {
	t.Setenv("MOVIEDB_SEED_FILE", "")
	t.Setenv("MOVIEDB_REDIS_ADDR", "localhost:6379")
	t.Setenv("MOVIEDB_REDIS_DB", "2")
	t.Setenv("MOVIEDB_ALLOWED_CIDRS", "10.0.0.0/8, 192.168.1.10")
	t.Setenv("MOVIEDB_CORS_ORIGINS", "https://a.example.com,'https://b.example.com'")

	cfg := Load()

	if !cfg.RedisEnabled() || cfg.RedisDB != 2 {
		t.Errorf("redis config = %v db %v", cfg.RedisAddr, cfg.RedisDB)
	}
	if len(cfg.AllowedCIDRS) != 2 {
		t.Errorf("AllowedCIDRS = %v, want 2 entries", cfg.AllowedCIDRS)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example.com" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoadWithoutSeedSourcePanics(t *testing.T) {
	t.Setenv("MOVIEDB_SEED_FILE", "")
	t.Setenv("MOVIEDB_REDIS_ADDR", "")

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Load() should have panicked")
		}
	}()

	Load()
}

func TestRedacted(t *testing.T) {
	cfg := &Config{RedisUser: "admin", RedisPassword: "secret"}

	red := cfg.Redacted()
	if red.RedisPassword == "secret" || red.RedisUser == "admin" {
		t.Errorf("Redacted() leaked credentials: %+v", red)
	}
	if cfg.RedisPassword != "secret" {
		t.Error("Redacted() must not modify the original")
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "single value", input: "value1", expected: []string{"value1"}},
		{name: "multiple values", input: "value1, value2 ,value3", expected: []string{"value1", "value2", "value3"}},
		{name: "quoted values", input: `"a.example.com", 'b.example.com'`, expected: []string{"a.example.com", "b.example.com"}},
		{name: "empty parts dropped", input: "a,, ,b", expected: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitAndTrim(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("splitAndTrim() = %v, want %v", result, tt.expected)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("splitAndTrim()[%d] = %v, want %v", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestGetenvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_INT_INVALID", "not_a_number")

	if got := getenvInt("TEST_INT", 1); got != 42 {
		t.Errorf("getenvInt() = %v, want 42", got)
	}
	if got := getenvInt("TEST_INT_INVALID", 7); got != 7 {
		t.Errorf("getenvInt() invalid = %v, want default 7", got)
	}
	if got := getenvInt("TEST_INT_MISSING", 9); got != 9 {
		t.Errorf("getenvInt() missing = %v, want default 9", got)
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{
			name:     "valid duration",
			key:      "TEST_DURATION",
			value:    "5s",
			def:      1 * time.Second,
			expected: 5 * time.Second,
		},
		{
			name:     "invalid duration uses default",
			key:      "TEST_DURATION_INVALID",
			value:    "invalid",
			def:      10 * time.Second,
			expected: 10 * time.Second,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_DURATION_MISSING",
			value:    "",
			def:      15 * time.Second,
			expected: 15 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}

			result := mustDuration(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      bool
		expected bool
	}{
		{name: "true value", key: "TEST_BOOL", value: "true", def: false, expected: true},
		{name: "false value", key: "TEST_BOOL_FALSE", value: "false", def: true, expected: false},
		{name: "invalid value uses default", key: "TEST_BOOL_INVALID", value: "invalid", def: true, expected: true},
		{name: "missing variable uses default", key: "TEST_BOOL_MISSING", value: "", def: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}

			result := mustBool(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustBool() = %v, want %v", result, tt.expected)
			}
		})
	}
}

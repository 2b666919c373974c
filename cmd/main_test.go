package main

import (
	"bytes"
	"flag"
	"os"
	"testing"
	"time"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

// ----------------- Tests for printBuildInfo -----------------

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Set build info variables
	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-28"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	// Check if all expected strings are present
	if !contains(output, "version v1.0.0") ||
		!contains(output, "commit abcd1234") ||
		!contains(output, "build 2026-08-28") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if cfg.appHost != "localhost" || cfg.appPort != "8080" || cfg.logLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", cfg.appHost, cfg.appPort, cfg.logLevel)
	}

	// PostgreSQL
	if cfg.pgHost != "localhost" || cfg.pgPort != 5432 || cfg.pgUser != "user" || cfg.pgPassword != "password" || cfg.pgDB != "database" ||
		cfg.pgMaxOpenConns != 16 || cfg.pgMaxIdleConns != 8 ||
		cfg.pgMaxAttempts != 10 || cfg.pgBackoff != 2*time.Second {
		t.Errorf("unexpected postgres config")
	}

	// Redis is opt-in: empty host means disabled
	if cfg.redisHost != "" || cfg.redisPort != 6379 || cfg.redisDB != 0 || cfg.redisPassword != "" ||
		cfg.redisPoolSize != 10 || cfg.redisMinIdleConns != 2 || cfg.cacheExp != 60*time.Second {
		t.Errorf("unexpected redis config")
	}

	// Kafka is opt-in: empty address means disabled
	if cfg.kafkaAddr != "" || cfg.kafkaTopic != "feed-activity" {
		t.Errorf("unexpected kafka config")
	}

	// JWT
	if cfg.jwtSecretKey != "my_super_secret_key" || cfg.jwtExp != 24*time.Hour || cfg.jwtRefreshAfter != time.Hour {
		t.Errorf("unexpected jwt config")
	}

	// Pipeline toggles
	if cfg.allowOrigin != "*" || cfg.moderationEnabled || cfg.warmupEnabled || cfg.housekeepingRate != 100 {
		t.Errorf("unexpected pipeline config")
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")
	os.Setenv("POSTGRES_CONNECT_MAX_ATTEMPTS", "3")
	os.Setenv("POSTGRES_CONNECT_BACKOFF_SECOND", "1")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")
	os.Setenv("REDIS_MIN_IDLE_CONNS", "5")
	os.Setenv("CACHE_EXP_SECOND", "120")

	os.Setenv("KAFKA_ADDR", "kafka.example.com:9092")
	os.Setenv("KAFKA_TOPIC", "activity")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")
	os.Setenv("JWT_REFRESH_SECOND", "60")

	os.Setenv("CORS_ALLOW_ORIGIN", "https://feed.example.com")
	os.Setenv("MODERATION_ENABLED", "true")
	os.Setenv("WARMUP_ENABLED", "true")
	os.Setenv("HOUSEKEEPING_RATE", "10")

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Check all variables
	if cfg.appHost != "127.0.0.1" || cfg.appPort != "9090" || cfg.logLevel != "debug" {
		t.Errorf("unexpected app config")
	}
	if cfg.pgHost != "pg.example.com" || cfg.pgPort != 5433 || cfg.pgUser != "admin" || cfg.pgPassword != "secret" || cfg.pgDB != "mydb" ||
		cfg.pgMaxOpenConns != 20 || cfg.pgMaxIdleConns != 10 ||
		cfg.pgMaxAttempts != 3 || cfg.pgBackoff != time.Second {
		t.Errorf("unexpected postgres config")
	}
	if cfg.redisHost != "redis.example.com" || cfg.redisPort != 6380 || cfg.redisDB != 2 || cfg.redisPassword != "redispass" ||
		cfg.redisPoolSize != 15 || cfg.redisMinIdleConns != 5 || cfg.cacheExp != 120*time.Second {
		t.Errorf("unexpected redis config")
	}
	if cfg.kafkaAddr != "kafka.example.com:9092" || cfg.kafkaTopic != "activity" {
		t.Errorf("unexpected kafka config")
	}
	if cfg.jwtSecretKey != "supersecret" || cfg.jwtExp != 300*time.Second || cfg.jwtRefreshAfter != time.Minute {
		t.Errorf("unexpected jwt config")
	}
	if cfg.allowOrigin != "https://feed.example.com" || !cfg.moderationEnabled || !cfg.warmupEnabled || cfg.housekeepingRate != 10 {
		t.Errorf("unexpected pipeline config")
	}
}

func TestParseConfig_MalformedInt(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-number")

	if _, err := parseConfig("nonexistent.env"); err == nil {
		t.Error("expected error for malformed POSTGRES_PORT")
	}
}

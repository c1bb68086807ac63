package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

const (
	AuditBackendMemory = "memory"
	AuditBackendRedis  = "redis"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	UndoHistorySize        int
	RateLimit              int
	AuditBackend           string
	RedisAddr              string
	RedisAuditKey          string
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "tasks.db"),
		UndoHistorySize:        getEnvAsInt("UNDO_HISTORY_SIZE", 50),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		AuditBackend:           getEnv("AUDIT_BACKEND", AuditBackendMemory),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisAuditKey:          getEnv("REDIS_AUDIT_KEY", "task_audit_log"),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.UndoHistorySize <= 0 {
		log.Fatal("UNDO_HISTORY_SIZE must be greater than 0")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.AuditBackend != AuditBackendMemory && cfg.AuditBackend != AuditBackendRedis {
		log.Fatalf("AUDIT_BACKEND must be %q or %q", AuditBackendMemory, AuditBackendRedis)
	}
	if cfg.AuditBackend == AuditBackendRedis && cfg.RedisAuditKey == "" {
		log.Fatal("REDIS_AUDIT_KEY must not be empty")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RedisAddr              string
	SessionKey             string
	NotifyQueueKey         string
	JWTSecret              string
	AuthDelayMS            int
	NotifyWorkers          int
	NotifyQueueSize        int
	RateLimit              int
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "neighbortask.db"),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		SessionKey:             getEnv("SESSION_KEY", "session:user"),
		NotifyQueueKey:         getEnv("NOTIFY_QUEUE_KEY", "notify_queue_tokens"),
		JWTSecret:              getEnv("JWT_SECRET", "neighbortask-dev-secret"),
		AuthDelayMS:            getEnvAsInt("AUTH_DELAY_MS", 1000),
		NotifyWorkers:          getEnvAsInt("NOTIFY_WORKERS", 2),
		NotifyQueueSize:        getEnvAsInt("NOTIFY_QUEUE_SIZE", 16),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.SessionKey == "" {
		log.Fatal("SESSION_KEY must not be empty")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must not be empty")
	}
	if cfg.AuthDelayMS < 0 {
		log.Fatal("AUTH_DELAY_MS must not be negative")
	}
	if cfg.NotifyWorkers <= 0 {
		log.Fatal("NOTIFY_WORKERS must be greater than 0")
	}
	if cfg.NotifyQueueSize <= 0 {
		log.Fatal("NOTIFY_QUEUE_SIZE must be greater than 0")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
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

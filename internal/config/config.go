package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DBDSN          string
	ServerPort     string
	SessionSecret  string
	LogLevel       logrus.Level
	NotifyCapacity int
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		LogLevel:      logrus.InfoLevel,
	}

	if cfg.DBDSN == "" {
		logrus.Fatal("DB_DSN is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		logrus.Fatal("SESSION_SECRET is not set")
	}

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		parsed, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.Fatalf("invalid LOG_LEVEL %q: %v", lvl, err)
		}
		cfg.LogLevel = parsed
	}

	if capStr := os.Getenv("NOTIFY_CAPACITY"); capStr != "" {
		n, err := strconv.Atoi(capStr)
		if err != nil || n <= 0 {
			logrus.Fatalf("invalid NOTIFY_CAPACITY %q", capStr)
		}
		cfg.NotifyCapacity = n
	}

	return cfg
}

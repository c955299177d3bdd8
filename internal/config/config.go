package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Telegram TelegramConfig
	Session  SessionConfig
}

type AppConfig struct {
	Port        string
	ServiceName string
	Environment string
	LogFilePath string
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
	APIBaseURL string
}

type SessionConfig struct {
	Store    string // "memory" or "redis"
	RedisURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:        getEnv("APP_PORT", "3000"),
			ServiceName: getEnv("SERVICE_NAME", "skincare-assistant-bot"),
			Environment: getEnv("GO_ENV", "development"),
			LogFilePath: getEnv("LOG_FILE_PATH", "app.log"),
		},
		Telegram: TelegramConfig{
			BotToken:   getEnv("BOT_TOKEN", ""),
			WebhookURL: getEnv("WEBHOOK_URL", ""),
			APIBaseURL: getEnv("TELEGRAM_API_BASE_URL", "https://api.telegram.org"),
		},
		Session: SessionConfig{
			Store:    getEnv("SESSION_STORE", "memory"),
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

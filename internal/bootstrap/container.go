package bootstrap

import (
	"log"

	"skincare-assistant-be/internal/config"
	"skincare-assistant-be/internal/controller"
	"skincare-assistant-be/internal/pkg/logger"
	"skincare-assistant-be/internal/repository/contract"
	"skincare-assistant-be/internal/repository/memory"
	redisrepo "skincare-assistant-be/internal/repository/redis"
	"skincare-assistant-be/internal/service"
	"skincare-assistant-be/pkg/session"
	"skincare-assistant-be/pkg/telegram"

	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	WebhookController controller.IWebhookController

	// Shared infrastructure (exposed for main.go and the server)
	Logger      logger.ILogger
	TelegramAPI telegram.API
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Session Storage
	var sessionRepo contract.SessionRepository
	if cfg.Session.Store == "redis" {
		opts, err := redis.ParseURL(cfg.Session.RedisURL)
		if err != nil {
			log.Fatalf("[FATAL] Invalid REDIS_URL: %v", err)
		}
		sessionRepo = redisrepo.NewSessionRepository(redis.NewClient(opts), sysLogger)
		log.Printf("[INFO] Using Session Store: REDIS (%s)", cfg.Session.RedisURL)
	} else {
		sessionRepo = memory.NewSessionRepository()
		log.Printf("[INFO] Using Session Store: MEMORY")
	}
	sessionManager := session.NewManager(sessionRepo)

	// 3. Transport Client
	botAPI := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.APIBaseURL)

	// 4. Services
	assistantService := service.NewAssistantService(sessionManager, botAPI, sysLogger)

	// 5. Controllers
	webhookController := controller.NewWebhookController(assistantService, cfg.App.ServiceName, sysLogger)

	return &Container{
		WebhookController: webhookController,
		Logger:            sysLogger,
		TelegramAPI:       botAPI,
	}
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"skincare-assistant-be/internal/bootstrap"
	"skincare-assistant-be/internal/config"
	"skincare-assistant-be/internal/server"
	"skincare-assistant-be/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	if cfg.Telegram.BotToken == "" {
		log.Println("[ERROR] BOT_TOKEN is not set; the bot cannot talk to Telegram")
	}
	if cfg.Telegram.WebhookURL == "" {
		log.Println("[ERROR] WEBHOOK_URL is not set; webhook registration will be skipped")
	}

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg.App.ServiceName)
	defer shutdownTracer(context.Background())

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 4. Register the webhook once at startup. A failure leaves the process
	// running degraded; there is no retry.
	if cfg.Telegram.WebhookURL != "" {
		webhookURL := cfg.Telegram.WebhookURL + "/webhook"
		if err := container.TelegramAPI.SetWebhook(context.Background(), webhookURL); err != nil {
			log.Printf("[ERROR] Failed to register webhook %s: %v", webhookURL, err)
		} else {
			log.Printf("[INFO] Webhook registered: %s", webhookURL)
		}
	}

	// 5. SIGTERM exits immediately, no drain period.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM)
	go func() {
		<-sigs
		log.Println("[INFO] SIGTERM received, shutting down")
		os.Exit(0)
	}()

	// 6. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}

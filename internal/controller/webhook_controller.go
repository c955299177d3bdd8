package controller

import (
	"time"

	"skincare-assistant-be/internal/pkg/logger"
	"skincare-assistant-be/internal/service"
	"skincare-assistant-be/pkg/telegram"

	"github.com/gofiber/fiber/v2"
)

type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	Webhook(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type webhookController struct {
	assistantService service.IAssistantService
	serviceName      string
	log              logger.ILogger
}

func NewWebhookController(assistantService service.IAssistantService, serviceName string, log logger.ILogger) IWebhookController {
	return &webhookController{
		assistantService: assistantService,
		serviceName:      serviceName,
		log:              log,
	}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	r.Post("/webhook", c.Webhook)
	r.Get("/", c.Status)
	r.Get("/health", c.Health)
}

func (c *webhookController) Webhook(ctx *fiber.Ctx) error {
	var update telegram.Update
	if err := ctx.BodyParser(&update); err != nil {
		c.log.Error("webhook_controller", "Failed to parse update payload", map[string]interface{}{
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).SendString("Error")
	}

	if err := c.assistantService.HandleUpdate(ctx.Context(), &update); err != nil {
		c.log.Error("webhook_controller", "Failed to handle update", map[string]interface{}{
			"update_id": update.UpdateID,
			"error":     err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).SendString("Error")
	}

	return ctx.SendString("OK")
}

func (c *webhookController) Status(ctx *fiber.Ctx) error {
	return ctx.SendString("Skincare Formulation Assistant Bot is running")
}

func (c *webhookController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":    "healthy",
		"service":   c.serviceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

package service

import (
	"context"
	"fmt"
	"strings"

	"skincare-assistant-be/internal/catalog"
	"skincare-assistant-be/internal/pkg/logger"
	"skincare-assistant-be/pkg/compat"
	"skincare-assistant-be/pkg/reply"
	"skincare-assistant-be/pkg/session"
	"skincare-assistant-be/pkg/store"
	"skincare-assistant-be/pkg/telegram"
)

// IAssistantService defines the assistant dispatch interface
type IAssistantService interface {
	HandleUpdate(ctx context.Context, update *telegram.Update) error
}

// assistantService routes inbound updates by command keyword, callback token
// or current session step.
type assistantService struct {
	sessionManager *session.Manager
	api            telegram.API
	log            logger.ILogger
}

// NewAssistantService creates a new assistant service
func NewAssistantService(sessionManager *session.Manager, api telegram.API, log logger.ILogger) IAssistantService {
	return &assistantService{
		sessionManager: sessionManager,
		api:            api,
		log:            log,
	}
}

// HandleUpdate processes one inbound update to completion. Transport
// failures are handled internally (logged, optionally answered with a
// generic fallback); an error is returned only for updates the bot cannot
// attribute to a chat and user.
func (s *assistantService) HandleUpdate(ctx context.Context, update *telegram.Update) error {
	switch {
	case update == nil:
		return fmt.Errorf("nil update")
	case update.CallbackQuery != nil:
		return s.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		return s.handleMessage(ctx, update.Message)
	default:
		// Update types the bot does not subscribe to (edits, channel posts).
		return nil
	}
}

func (s *assistantService) handleMessage(ctx context.Context, msg *telegram.Message) error {
	if msg.Chat == nil || msg.From == nil {
		return fmt.Errorf("message update missing chat or sender")
	}

	sess := s.sessionManager.LoadOrCreate(msg.From.ID)

	var payload reply.Payload
	if strings.HasPrefix(msg.Text, "/") {
		payload = s.dispatchCommand(sess, msg.Text)
	} else {
		payload = s.dispatchText(sess, msg.Text)
	}
	s.sessionManager.Save(sess)

	if err := s.send(ctx, msg.Chat.ID, payload); err != nil {
		s.log.Error("assistant_service", "Failed to send reply", map[string]interface{}{
			"chat_id": msg.Chat.ID,
			"user_id": msg.From.ID,
			"error":   err.Error(),
		})
		// Best effort: let the user know something broke.
		if fbErr := s.send(ctx, msg.Chat.ID, reply.GenericError()); fbErr != nil {
			s.log.Error("assistant_service", "Failed to send fallback reply", map[string]interface{}{
				"chat_id": msg.Chat.ID,
				"error":   fbErr.Error(),
			})
		}
	}
	return nil
}

// dispatchCommand handles "/..." messages regardless of the current step.
func (s *assistantService) dispatchCommand(sess *store.Session, text string) reply.Payload {
	command := strings.Fields(text)[0]
	switch command {
	case "/start":
		return reply.Welcome()
	case "/formulate":
		sess.CurrentStep = store.StepSelectProductType
		return reply.ProductTypePrompt()
	case "/ingredients":
		return reply.IngredientList()
	case "/compatibility":
		sess.CurrentStep = store.StepCompatibilityInput
		return reply.CompatibilityPrompt()
	case "/help":
		return reply.Help()
	default:
		return reply.UnknownCommand()
	}
}

// dispatchText handles plain text by current step.
func (s *assistantService) dispatchText(sess *store.Session, text string) reply.Payload {
	if sess.CurrentStep != store.StepCompatibilityInput {
		return reply.UseCommandPrompt()
	}

	result := compat.Match(catalog.Ingredients, text)
	s.log.Info("assistant_service", "Compatibility check completed", map[string]interface{}{
		"user_id":   sess.UserID,
		"found":     len(result.Found),
		"not_found": len(result.NotFound),
		"pairs":     len(result.Pairs),
	})

	// Reset as the final step, whatever the match outcome.
	sess.CurrentStep = store.StepIdle
	return reply.CompatibilityReport(result)
}

func (s *assistantService) handleCallback(ctx context.Context, cb *telegram.CallbackQuery) error {
	// Acknowledge first so the client stops showing a loading indicator.
	// Failure here must not block the reply.
	if err := s.api.AnswerCallbackQuery(ctx, cb.ID); err != nil {
		s.log.Warn("assistant_service", "Failed to acknowledge callback query", map[string]interface{}{
			"callback_id": cb.ID,
			"error":       err.Error(),
		})
	}

	if cb.From == nil || cb.Message == nil || cb.Message.Chat == nil {
		return fmt.Errorf("callback update missing sender or chat")
	}

	sess := s.sessionManager.LoadOrCreate(cb.From.ID)

	var payload reply.Payload
	switch {
	case cb.Data == reply.TokenStartFormulation:
		sess.CurrentStep = store.StepSelectProductType
		payload = reply.ProductTypePrompt()
	case cb.Data == reply.TokenBrowseIngredients:
		payload = reply.IngredientList()
	case cb.Data == reply.TokenCheckCompatibility:
		sess.CurrentStep = store.StepCompatibilityInput
		payload = reply.CompatibilityPrompt()
	case cb.Data == reply.TokenHelp:
		payload = reply.Help()
	case strings.HasPrefix(cb.Data, reply.TokenProductPrefix):
		productType := strings.TrimPrefix(cb.Data, reply.TokenProductPrefix)
		sess.Formulation.ProductType = productType
		payload = reply.Suggestions(productType)
	default:
		// Unrecognized token: no observable action.
		return nil
	}
	s.sessionManager.Save(sess)

	// Callback-triggered send failures are logged only, never surfaced.
	if err := s.send(ctx, cb.Message.Chat.ID, payload); err != nil {
		s.log.Error("assistant_service", "Failed to send callback reply", map[string]interface{}{
			"chat_id": cb.Message.Chat.ID,
			"token":   cb.Data,
			"error":   err.Error(),
		})
	}
	return nil
}

func (s *assistantService) send(ctx context.Context, chatID int64, payload reply.Payload) error {
	return s.api.SendMessage(ctx, &telegram.SendMessageRequest{
		ChatID:      chatID,
		Text:        payload.Text,
		ParseMode:   payload.ParseMode,
		ReplyMarkup: payload.Keyboard,
	})
}

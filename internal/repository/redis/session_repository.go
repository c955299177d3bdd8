package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"skincare-assistant-be/internal/pkg/logger"
	"skincare-assistant-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "assistant:session:"

// SessionRepository keeps sessions in redis so they survive restarts. Values
// are stored as JSON without a TTL, mirroring the in-memory contract of
// no eviction.
type SessionRepository struct {
	client *redis.Client
	log    logger.ILogger
}

func NewSessionRepository(client *redis.Client, log logger.ILogger) *SessionRepository {
	return &SessionRepository{
		client: client,
		log:    log,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	payload, err := json.Marshal(session)
	if err != nil {
		r.log.Error("session_repository", "Failed to marshal session", map[string]interface{}{
			"user_id": session.UserID,
			"error":   err.Error(),
		})
		return
	}
	if err := r.client.Set(context.Background(), key(session.UserID), payload, 0).Err(); err != nil {
		r.log.Error("session_repository", "Failed to save session to redis", map[string]interface{}{
			"user_id": session.UserID,
			"error":   err.Error(),
		})
	}
}

func (r *SessionRepository) Get(userID int64) (*store.Session, bool) {
	payload, err := r.client.Get(context.Background(), key(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.log.Error("session_repository", "Failed to read session from redis", map[string]interface{}{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		return nil, false
	}

	var session store.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		r.log.Error("session_repository", "Failed to unmarshal session", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, false
	}
	return &session, true
}

func (r *SessionRepository) Delete(userID int64) {
	if err := r.client.Del(context.Background(), key(userID)).Err(); err != nil {
		r.log.Error("session_repository", "Failed to delete session from redis", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}

func key(userID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, userID)
}

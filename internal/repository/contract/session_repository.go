package contract

import (
	"skincare-assistant-be/pkg/store"
)

// SessionRepository abstracts the session backing so the in-memory store can
// be swapped for an external one without touching the dispatcher.
type SessionRepository interface {
	Get(userID int64) (*store.Session, bool)
	Save(session *store.Session)
	Delete(userID int64)
}

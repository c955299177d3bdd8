package session

import (
	"skincare-assistant-be/internal/repository/contract"
	"skincare-assistant-be/pkg/store"
)

// Manager handles session lifecycle over the configured backing.
type Manager struct {
	sessionRepo contract.SessionRepository
}

// NewManager creates a new session manager.
func NewManager(sessionRepo contract.SessionRepository) *Manager {
	return &Manager{sessionRepo: sessionRepo}
}

// LoadOrCreate retrieves the user's session or installs a fresh idle one.
// The new session is saved immediately so a second lookup observes it.
func (m *Manager) LoadOrCreate(userID int64) *store.Session {
	session, found := m.sessionRepo.Get(userID)
	if !found {
		session = store.NewSession(userID)
		m.sessionRepo.Save(session)
	}
	return session
}

// Save persists session state.
func (m *Manager) Save(session *store.Session) {
	m.sessionRepo.Save(session)
}

package memory

import (
	"strconv"

	"skincare-assistant-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Sessions live for the lifetime of the process: no default expiration
	// and no janitor sweep.
	c := cache.New(cache.NoExpiration, 0)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(key(session.UserID), session, cache.NoExpiration)
}

func (r *SessionRepository) Get(userID int64) (*store.Session, bool) {
	if x, found := r.cache.Get(key(userID)); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(userID int64) {
	r.cache.Delete(key(userID))
}

func key(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

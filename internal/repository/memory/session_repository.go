package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"conevibes-be/pkg/recommend/selection"
)

// SessionRepository keeps per-session selection trackers in memory. Sessions
// are UI state for a single visit: they expire on their own and are never
// persisted.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// 1 hour lifetime, expired entries purged every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(sessionID string, tracker *selection.Tracker) {
	r.cache.Set(sessionID, tracker, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*selection.Tracker, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*selection.Tracker), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

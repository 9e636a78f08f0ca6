package memory

import (
	"time"

	"ai-stylist-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type ChatSessionRepository struct {
	cache *cache.Cache
}

func NewChatSessionRepository() *ChatSessionRepository {
	// Chat state is ephemeral: expire after an hour of inactivity,
	// purge expired entries every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ChatSessionRepository{
		cache: c,
	}
}

func (r *ChatSessionRepository) Save(session *store.ChatSession) {
	r.cache.Set(session.UserID, session, cache.DefaultExpiration)
}

func (r *ChatSessionRepository) Get(userID string) (*store.ChatSession, bool) {
	if x, found := r.cache.Get(userID); found {
		return x.(*store.ChatSession), true
	}
	return nil, false
}

func (r *ChatSessionRepository) Delete(userID string) {
	r.cache.Delete(userID)
}

package redis

import (
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"restaurant-ordering-assistant/internal/session/repository"
	"restaurant-ordering-assistant/pkg/log"
)

const (
	messagesKeyFormat = "session:%s:messages"
	userDataKeyFormat = "session:%s:user_data"

	defaultMaxUpdateRetries = 5
)

type implRepository struct {
	client     goredis.UniversalClient
	ttl        time.Duration
	maxRetries int
	l          log.Logger
	now        func() time.Time
}

// New creates a Redis-backed session Repository. Every write refreshes the key TTL,
// which must be positive.
func New(client goredis.UniversalClient, ttl time.Duration, l log.Logger) repository.Repository {
	if client == nil {
		panic("session/repository/redis: client is required")
	}
	if ttl <= 0 {
		panic(fmt.Sprintf("session/repository/redis: ttl must be positive, got %s", ttl))
	}
	return &implRepository{
		client:     client,
		ttl:        ttl,
		maxRetries: defaultMaxUpdateRetries,
		l:          l,
		now:        time.Now,
	}
}

func messagesKey(sessionID string) string {
	return fmt.Sprintf(messagesKeyFormat, sessionID)
}

func userDataKey(sessionID string) string {
	return fmt.Sprintf(userDataKeyFormat, sessionID)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("session/repository/redis.%s", method)
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, err)
}

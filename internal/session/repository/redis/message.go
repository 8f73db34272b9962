package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"restaurant-ordering-assistant/internal/session"
	"restaurant-ordering-assistant/internal/session/repository"
)

// AppendMessage pushes a timestamped entry to the session log and refreshes its TTL atomically.
func (r *implRepository) AppendMessage(ctx context.Context, sessionID, sender, text string) error {
	entry, err := json.Marshal(session.Message{
		Sender:    sender,
		Message:   text,
		Timestamp: r.now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("%s: marshal entry: %w", r.dsn("AppendMessage"), err)
	}

	key := messagesKey(sessionID)
	_, err = r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.RPush(ctx, key, entry)
		pipe.Expire(ctx, key, r.ttl)
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AppendMessage"), err)
		return unavailable(err)
	}
	return nil
}

// ReadHistory returns the full message log in append order.
func (r *implRepository) ReadHistory(ctx context.Context, sessionID string) ([]session.Message, error) {
	raw, err := r.client.LRange(ctx, messagesKey(sessionID), 0, -1).Result()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReadHistory"), err)
		return nil, unavailable(err)
	}

	history := make([]session.Message, 0, len(raw))
	for i, item := range raw {
		var msg session.Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			r.l.Errorf(ctx, "%s: entry %d: %v", r.dsn("ReadHistory"), i, err)
			return nil, fmt.Errorf("%w: message %d: %v", repository.ErrCorruptRecord, i, err)
		}
		history = append(history, msg)
	}
	return history, nil
}

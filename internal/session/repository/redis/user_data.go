package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"restaurant-ordering-assistant/internal/session"
	"restaurant-ordering-assistant/internal/session/repository"
)

// updateAborted carries an error returned by the caller's UpdateFunc out of the transaction.
type updateAborted struct {
	err error
}

func (e *updateAborted) Error() string { return e.err.Error() }
func (e *updateAborted) Unwrap() error { return e.err }

// WriteUserData overwrites the whole user-data record.
func (r *implRepository) WriteUserData(ctx context.Context, sessionID string, data session.UserData) error {
	payload, err := encodeUserData(data)
	if err != nil {
		return fmt.Errorf("%s: %w", r.dsn("WriteUserData"), err)
	}

	if err := r.client.Set(ctx, userDataKey(sessionID), payload, r.ttl).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("WriteUserData"), err)
		return unavailable(err)
	}
	return nil
}

// ReadUserData returns the user-data record, or an empty map when none exists.
func (r *implRepository) ReadUserData(ctx context.Context, sessionID string) (session.UserData, error) {
	data, err := r.getUserData(ctx, r.client, userDataKey(sessionID))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReadUserData"), err)
		return nil, err
	}
	return data, nil
}

// UpdateUserData reads the record under WATCH, applies fn and writes the result in MULTI/EXEC.
// A write that lost the race is retried with fresh data up to maxRetries times.
func (r *implRepository) UpdateUserData(ctx context.Context, sessionID string, fn repository.UpdateFunc) error {
	key := userDataKey(sessionID)

	txf := func(tx *goredis.Tx) error {
		current, err := r.getUserData(ctx, tx, key)
		if err != nil {
			return err
		}

		updated, err := fn(current)
		if err != nil {
			return &updateAborted{err: err}
		}
		if updated == nil {
			return nil
		}

		payload, err := encodeUserData(updated)
		if err != nil {
			return &updateAborted{err: err}
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, payload, r.ttl)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}

		var aborted *updateAborted
		switch {
		case errors.As(err, &aborted):
			return aborted.err
		case errors.Is(err, goredis.TxFailedErr):
			r.l.Debugf(ctx, "%s: conflict on %s, attempt %d", r.dsn("UpdateUserData"), key, attempt+1)
			continue
		case errors.Is(err, repository.ErrCorruptRecord), errors.Is(err, repository.ErrStoreUnavailable):
			r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUserData"), err)
			return err
		default:
			r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUserData"), err)
			return unavailable(err)
		}
	}

	r.l.Warnf(ctx, "%s: gave up on %s after %d attempts", r.dsn("UpdateUserData"), key, r.maxRetries)
	return repository.ErrConcurrentUpdate
}

// Ping checks connectivity.
func (r *implRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return unavailable(err)
	}
	return nil
}

func (r *implRepository) getUserData(ctx context.Context, c goredis.Cmdable, key string) (session.UserData, error) {
	raw, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return session.UserData{}, nil
	}
	if err != nil {
		return nil, unavailable(err)
	}

	data := session.UserData{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: user data: %v", repository.ErrCorruptRecord, err)
	}
	if data == nil {
		// stored literal null
		data = session.UserData{}
	}
	return data, nil
}

func encodeUserData(data session.UserData) ([]byte, error) {
	if data == nil {
		data = session.UserData{}
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal user data: %w", err)
	}
	return payload, nil
}

package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/rueidis"
)

// RedisLog appends entries to a redis list, one JSON document per entry.
// RPUSH keeps insertion order, so LRANGE returns the trail chronologically.
type RedisLog struct {
	client rueidis.Client
	key    string
}

var _ Log = (*RedisLog)(nil)

func NewRedisLog(client rueidis.Client, key string) *RedisLog {
	return &RedisLog{
		client: client,
		key:    key,
	}
}

func (l *RedisLog) Record(ctx context.Context, action Action, details string) error {
	entry := Entry{
		Timestamp: time.Now().UTC(),
		Action:    action,
		Details:   details,
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	cmd := l.client.B().Rpush().Key(l.key).Element(string(payload)).Build()
	return l.client.Do(ctx, cmd).Error()
}

func (l *RedisLog) History(ctx context.Context) ([]Entry, error) {
	cmd := l.client.B().Lrange().Key(l.key).Start(0).Stop(-1).Build()
	raw, err := l.client.Do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

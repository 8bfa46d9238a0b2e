package notify

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisStreamDispatcher appends alerts to a Redis stream. Each entry has a
// "data" field with the JSON alert and a "raised_at" Unix timestamp.
type RedisStreamDispatcher struct {
	client *redis.Client
	stream string
}

func NewRedisStreamDispatcher(client *redis.Client, stream string) *RedisStreamDispatcher {
	return &RedisStreamDispatcher{client: client, stream: stream}
}

func (d *RedisStreamDispatcher) Dispatch(ctx context.Context, a Alert) error {
	payload, err := a.payload()
	if err != nil {
		return err
	}
	err = d.client.XAdd(ctx, &redis.XAddArgs{
		Stream: d.stream,
		Values: map[string]interface{}{
			"data":      string(payload),
			"raised_at": a.RaisedAt.Unix(),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("redis dispatch: %w", err)
	}
	return nil
}

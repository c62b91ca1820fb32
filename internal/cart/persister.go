package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisPersister stores each session's serialized line collection under a
// fixed key prefix. The slot is durable across restarts; it is not a cache.
type RedisPersister struct {
	client    *redis.Client
	keyPrefix string
}

func NewRedisPersister(client *redis.Client, keyPrefix string) *RedisPersister {
	return &RedisPersister{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (p *RedisPersister) key(sessionID string) string {
	return p.keyPrefix + sessionID
}

func (p *RedisPersister) Save(ctx context.Context, sessionID string, lines []Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal cart lines: %w", err)
	}

	if err := p.client.Set(ctx, p.key(sessionID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (p *RedisPersister) Load(ctx context.Context, sessionID string) ([]Line, error) {
	data, err := p.client.Get(ctx, p.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // no slot yet, empty cart
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("unmarshal cart lines: %w", err)
	}
	return lines, nil
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/flowcanvas/flowcanvas/pkg/codec"
	"github.com/flowcanvas/flowcanvas/pkg/diagram"
	"github.com/flowcanvas/flowcanvas/pkg/persist"
)

// newKV opens the persistence backend named in the config.
func (c *CLI) newKV(ctx context.Context) (persist.KV, error) {
	switch c.Config.Backend {
	case "", "file":
		dir := c.Config.File.Dir
		if dir == "" {
			var err error
			if dir, err = dataDir(); err != nil {
				return nil, err
			}
		}
		return persist.NewFileKV(dir)
	case "memory":
		return persist.NewMemoryKV(), nil
	case "redis":
		return persist.NewRedisKV(ctx, persist.RedisConfig{
			Addr:     c.Config.Redis.Addr,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		})
	case "mongo":
		return persist.NewMongoKV(ctx, persist.MongoConfig{
			URI:        c.Config.Mongo.URI,
			Database:   c.Config.Mongo.Database,
			Collection: c.Config.Mongo.Collection,
		})
	case "none":
		return persist.NewNullKV(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (file, memory, redis, mongo, none)", c.Config.Backend)
	}
}

// saveDelay returns the configured coalescing window.
func (c *CLI) saveDelay() time.Duration {
	if c.Config.SaveDelayMS <= 0 {
		return persist.DefaultSaveDelay
	}
	return time.Duration(c.Config.SaveDelayMS) * time.Millisecond
}

// loadDocument fetches and decodes the persisted document from kv.
// Returns ok=false when no document is stored.
func loadDocument(ctx context.Context, kv persist.KV) (diagram.Document, bool, error) {
	data, ok, err := kv.Get(ctx, persist.DocumentKey)
	if err != nil {
		return diagram.Document{}, false, fmt.Errorf("read backend: %w", err)
	}
	if !ok {
		return diagram.Document{}, false, nil
	}
	doc, err := codec.Decode(data)
	if err != nil {
		return diagram.Document{}, false, err
	}
	return doc, true, nil
}

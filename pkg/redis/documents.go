package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Writer is the subset of the go-redis client the document store needs.
type Writer interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
}

// DocumentStore keeps JSON documents in Redis, one key per document, and
// indexes the ids of every collection in a set.
type DocumentStore struct {
	client Writer
	keys   *KeyBuilder
}

// NewDocumentStore creates a document store under the given key prefix
func NewDocumentStore(client Writer, prefix string) *DocumentStore {
	return &DocumentStore{client: client, keys: NewKeyBuilder(prefix)}
}

// SetDocument writes doc as JSON, replacing any previous version.
func (s *DocumentStore) SetDocument(ctx context.Context, collection, id string, doc interface{}) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s/%s: %w", collection, id, err)
	}

	if err := s.client.Set(ctx, s.keys.Build(collection, id), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", collection, id, err)
	}
	if err := s.client.SAdd(ctx, s.keys.Collection(collection), id).Err(); err != nil {
		return fmt.Errorf("failed to index %s/%s: %w", collection, id, err)
	}
	return nil
}

package redis

import (
	"fmt"
)

// KeyBuilder helps construct namespaced keys for Redis
type KeyBuilder struct {
	prefix string
}

// NewKeyBuilder creates a key builder for the given namespace prefix
func NewKeyBuilder(prefix string) *KeyBuilder {
	return &KeyBuilder{prefix: prefix}
}

// Build constructs a namespaced key with the pattern: {prefix}:{collection}:{identifier}
func (kb *KeyBuilder) Build(collection, identifier string) string {
	return fmt.Sprintf("%s:%s:%s", kb.prefix, collection, identifier)
}

// Collection returns the key of the set that indexes a collection: {prefix}:{collection}
func (kb *KeyBuilder) Collection(collection string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, collection)
}

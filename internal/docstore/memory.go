package docstore

import (
	"context"
	"fmt"
	"maps"
	"sync"
)

// memoryStore keeps documents in process memory. It backs local development
// (STORE_DRIVER=memory) and tests; nothing survives a restart.
type memoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

// NewMemoryStore creates an empty in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{
		collections: make(map[string][]Document),
	}
}

func (s *memoryStore) Collection(name string) Collection {
	if !knownCollection(name) {
		return invalidCollection{name: name}
	}
	return &memoryCollection{store: s, name: name}
}

func (s *memoryStore) Ping(context.Context) error {
	return nil
}

func (s *memoryStore) Close(context.Context) error {
	return nil
}

type memoryCollection struct {
	store *memoryStore
	name  string
}

func (c *memoryCollection) Find(ctx context.Context, filter Filter, limit int) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	docs := []Document{}
	for _, doc := range c.store.collections[c.name] {
		if len(docs) >= limit {
			break
		}
		if matches(doc, filter) {
			docs = append(docs, maps.Clone(doc))
		}
	}
	return docs, nil
}

func (c *memoryCollection) FindOne(ctx context.Context, filter Filter) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	if i := c.indexOf(filter); i >= 0 {
		return maps.Clone(c.store.collections[c.name][i]), nil
	}
	return nil, nil
}

func (c *memoryCollection) InsertOne(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id, err := documentID(doc)
	if err != nil {
		return err
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if c.indexOf(ByID(id)) >= 0 {
		return fmt.Errorf("failed to insert into %s: duplicate id %s", c.name, id)
	}
	c.store.collections[c.name] = append(c.store.collections[c.name], maps.Clone(doc))
	return nil
}

func (c *memoryCollection) UpdateOne(ctx context.Context, filter Filter, set Document) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	i := c.indexOf(filter)
	if i < 0 {
		return 0, nil
	}
	maps.Copy(c.store.collections[c.name][i], set)
	return 1, nil
}

func (c *memoryCollection) DeleteOne(ctx context.Context, filter Filter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	i := c.indexOf(filter)
	if i < 0 {
		return 0, nil
	}
	docs := c.store.collections[c.name]
	c.store.collections[c.name] = append(docs[:i:i], docs[i+1:]...)
	return 1, nil
}

// indexOf must be called with the store lock held.
func (c *memoryCollection) indexOf(filter Filter) int {
	for i, doc := range c.store.collections[c.name] {
		if matches(doc, filter) {
			return i
		}
	}
	return -1
}

func matches(doc Document, filter Filter) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || got != want {
			return false
		}
	}
	return true
}

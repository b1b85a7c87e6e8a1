package apicache

import (
	"context"
	"sync"
	"time"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/pkg/clock"
)

// InMemoryRepository implements Repository using process memory. Expired
// entries are dropped lazily on read.
type InMemoryRepository struct {
	mu         sync.RWMutex
	store      map[string]*Entry
	clock      clock.Clock
	defaultTTL time.Duration
}

// NewInMemory creates a new in-memory cache. A nil clock uses wall time.
func NewInMemory(clk clock.Clock, ttl time.Duration) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &InMemoryRepository{
		store:      make(map[string]*Entry),
		clock:      clk,
		defaultTTL: ttl,
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves a cached document by key
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	r.mu.RLock()
	entry, exists := r.store[input.Key]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFound("cache miss").WithMeta("key", input.Key)
	}
	if !r.clock.Now().Before(entry.ExpiresAt) {
		r.mu.Lock()
		if current, ok := r.store[input.Key]; ok && current == entry {
			delete(r.store, input.Key)
		}
		r.mu.Unlock()
		return nil, errors.NotFound("cache entry expired").WithMeta("key", input.Key)
	}

	// Return a copy to prevent external modification
	value := make([]byte, len(entry.Value))
	copy(value, entry.Value)
	return &GetOutput{
		Entry: &Entry{
			Key:       entry.Key,
			Value:     value,
			StoredAt:  entry.StoredAt,
			ExpiresAt: entry.ExpiresAt,
		},
	}, nil
}

// Set stores a document with a TTL
func (r *InMemoryRepository) Set(_ context.Context, input *SetInput) (*SetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}
	if len(input.Value) == 0 {
		return nil, errors.InvalidArgument(errValueEmpty)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.defaultTTL
	}

	value := make([]byte, len(input.Value))
	copy(value, input.Value)
	now := r.clock.Now()
	entry := &Entry{
		Key:       input.Key,
		Value:     value,
		StoredAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	r.mu.Lock()
	r.store[input.Key] = entry
	r.mu.Unlock()

	return &SetOutput{Entry: entry}, nil
}

// Delete evicts a cached document
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.store[input.Key]
	delete(r.store, input.Key)

	return &DeleteOutput{Deleted: exists}, nil
}

// Len returns the number of stored entries, expired ones included
func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.store)
}

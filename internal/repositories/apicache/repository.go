// Package apicache stores raw data provider responses keyed by source URL so
// documents shared by many species (evolution chains, location areas) are
// fetched once.
package apicache

import (
	"context"
	"time"
)

// Entry is one cached document
type Entry struct {
	Key       string
	Value     []byte
	StoredAt  time.Time
	ExpiresAt time.Time
}

// GetInput contains parameters for retrieving a cached document
type GetInput struct {
	Key string
}

// GetOutput contains the cached document
type GetOutput struct {
	Entry *Entry
}

// SetInput contains parameters for storing a document
type SetInput struct {
	Key   string
	Value []byte
	// TTL of 0 uses the repository default
	TTL time.Duration
}

// SetOutput contains the stored entry
type SetOutput struct {
	Entry *Entry
}

// DeleteInput contains parameters for evicting a document
type DeleteInput struct {
	Key string
}

// DeleteOutput reports whether anything was evicted
type DeleteOutput struct {
	Deleted bool
}

// Repository defines the interface for provider response caching.
// Get returns a NotFound error on a miss.
type Repository interface {
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	Set(ctx context.Context, input *SetInput) (*SetOutput, error)
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

package apicache

import (
	"context"
	"time"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/pkg/clock"
	redisclient "github.com/Guilhermee36/PokeAdventure-sub000/internal/redis"
)

const (
	// KeyPrefix namespaces cached documents: pokeapi:{url}
	KeyPrefix  = "pokeapi:"
	defaultTTL = 24 * time.Hour

	// Error messages
	errInputNil   = "input is required"
	errKeyEmpty   = "key cannot be empty"
	errValueEmpty = "value cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// DefaultTTL defaults to 24 hours
	DefaultTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	if c.DefaultTTL < 0 {
		vb.Field("default_ttl", "must not be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client     redisclient.Client
	clock      clock.Clock
	defaultTTL time.Duration
}

// NewRedisRepository creates a new Redis-backed response cache
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.DefaultTTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client:     cfg.Client,
		clock:      cfg.Clock,
		defaultTTL: ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get retrieves a cached document by key
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	key := buildKey(input.Key)

	pipe := r.client.Pipeline()
	getCmd := pipe.Get(ctx, key)
	ttlCmd := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redisclient.Nil) {
		return nil, errors.Wrapf(err, "failed to get %s from Redis", key)
	}

	value, err := getCmd.Bytes()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, errors.NotFound("cache miss").WithMeta("key", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to read %s from Redis", key)
	}

	now := r.clock.Now()
	entry := &Entry{Key: input.Key, Value: value}
	if remaining := ttlCmd.Val(); remaining > 0 {
		entry.ExpiresAt = now.Add(remaining)
	}

	return &GetOutput{Entry: entry}, nil
}

// Set stores a document with a TTL
func (r *redisRepository) Set(ctx context.Context, input *SetInput) (*SetOutput, error) {
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

	key := buildKey(input.Key)
	if err := r.client.Set(ctx, key, input.Value, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store %s in Redis", key)
	}

	now := r.clock.Now()
	return &SetOutput{
		Entry: &Entry{
			Key:       input.Key,
			Value:     input.Value,
			StoredAt:  now,
			ExpiresAt: now.Add(ttl),
		},
	}, nil
}

// Delete evicts a cached document
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	n, err := r.client.Del(ctx, buildKey(input.Key)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete %s from Redis", input.Key)
	}

	return &DeleteOutput{Deleted: n > 0}, nil
}

func buildKey(key string) string {
	return KeyPrefix + key
}

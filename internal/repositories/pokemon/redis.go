package pokemon

import (
	"context"
	"encoding/json"
	"sort"

	"go.uber.org/zap"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/pkg/clock"
	redisclient "github.com/Guilhermee36/PokeAdventure-sub000/internal/redis"
)

const (
	pokemonKeyPrefix   = "pokemon:"
	trainerIndexPrefix = "pokemon:trainer:"

	// Error messages
	errPokemonNil     = "pokemon cannot be nil"
	errPokemonIDEmpty = "pokemon ID cannot be empty"
	errTrainerIDEmpty = "trainer ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	logger *zap.Logger
}

// RedisConfig contains configuration for the Redis Pokémon repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	Logger *zap.Logger
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed Pokémon repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		logger: logger,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func validatePokemon(p *pokemon.Pokemon) error {
	if p == nil {
		return errors.InvalidArgument(errPokemonNil)
	}
	vb := errors.NewValidationBuilder()
	if p.ID == "" {
		vb.RequiredField("id")
	}
	if p.TrainerID == "" {
		vb.RequiredField("trainer_id")
	}
	if p.Species == "" {
		vb.RequiredField("species")
	}
	if p.Level < pokemon.MinLevel || p.Level > pokemon.MaxLevel {
		vb.Fieldf("level", "must be between %d and %d", pokemon.MinLevel, pokemon.MaxLevel)
	}
	return vb.Build()
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validatePokemon(input.Pokemon); err != nil {
		return nil, err
	}

	key := pokemonKeyPrefix + input.Pokemon.ID

	stored := *input.Pokemon
	now := r.clock.Now().Unix()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal pokemon")
	}

	// SETNX claims the ID so concurrent creates cannot both succeed
	created, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create pokemon")
	}
	if !created {
		return nil, errors.AlreadyExistsf("pokemon with ID %s already exists", input.Pokemon.ID)
	}

	if err := r.client.SAdd(ctx, trainerIndexPrefix+stored.TrainerID, stored.ID).Err(); err != nil {
		if delErr := r.client.Del(ctx, key).Err(); delErr != nil {
			r.logger.Error("failed to roll back pokemon after index failure",
				zap.String("pokemon_id", stored.ID),
				zap.Error(delErr))
		}
		return nil, errors.Wrapf(err, "failed to index pokemon")
	}

	return &CreateOutput{Pokemon: &stored}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPokemonIDEmpty)
	}

	result, err := r.client.Get(ctx, pokemonKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("pokemon with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get pokemon")
	}

	var p pokemon.Pokemon
	if err := json.Unmarshal([]byte(result), &p); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to unmarshal pokemon").
			WithMeta("id", input.ID)
	}

	return &GetOutput{Pokemon: &p}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validatePokemon(input.Pokemon); err != nil {
		return nil, err
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Pokemon.ID})
	if err != nil {
		return nil, err
	}

	stored := *input.Pokemon
	stored.CreatedAt = existing.Pokemon.CreatedAt
	stored.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal pokemon")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, pokemonKeyPrefix+stored.ID, data, 0)

	// Trades move a Pokémon between trainers
	if existing.Pokemon.TrainerID != stored.TrainerID {
		pipe.SRem(ctx, trainerIndexPrefix+existing.Pokemon.TrainerID, stored.ID)
		pipe.SAdd(ctx, trainerIndexPrefix+stored.TrainerID, stored.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update pokemon")
	}

	return &UpdateOutput{Pokemon: &stored}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	existing, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, pokemonKeyPrefix+input.ID)
	pipe.SRem(ctx, trainerIndexPrefix+existing.Pokemon.TrainerID, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete pokemon")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByTrainer(ctx context.Context, input ListByTrainerInput) (*ListByTrainerOutput, error) {
	if input.TrainerID == "" {
		return nil, errors.InvalidArgument(errTrainerIDEmpty)
	}

	indexKey := trainerIndexPrefix + input.TrainerID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get pokemon from index %s", indexKey)
	}
	sort.Strings(ids)

	out := make([]*pokemon.Pokemon, 0, len(ids))
	for _, id := range ids {
		got, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.logger.Warn("pokemon missing, cleaning up index",
					zap.String("pokemon_id", id),
					zap.String("index_key", indexKey))
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get pokemon %s", id)
		}
		out = append(out, got.Pokemon)
	}

	return &ListByTrainerOutput{Pokemon: out}, nil
}

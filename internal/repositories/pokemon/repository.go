// Package pokemon provides persistence for trainer-owned Pokémon
package pokemon

//go:generate mockgen -destination=mock/mock_repository.go -package=pokemonmock github.com/Guilhermee36/PokeAdventure-sub000/internal/repositories/pokemon Repository

import (
	"context"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
)

// Repository defines the interface for Pokémon persistence
type Repository interface {
	// Create stores a newly caught Pokémon
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a Pokémon with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a Pokémon by ID
	// Returns errors.NotFound if the Pokémon doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a stored Pokémon
	// Returns errors.NotFound if the Pokémon doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a Pokémon and its trainer index entry
	// Returns errors.NotFound if the Pokémon doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByTrainer retrieves every Pokémon owned by a trainer
	ListByTrainer(ctx context.Context, input ListByTrainerInput) (*ListByTrainerOutput, error)
}

// CreateInput defines the input for creating a Pokémon
type CreateInput struct {
	Pokemon *pokemon.Pokemon
}

// CreateOutput defines the output for creating a Pokémon
type CreateOutput struct {
	Pokemon *pokemon.Pokemon
}

// GetInput defines the input for getting a Pokémon
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a Pokémon
type GetOutput struct {
	Pokemon *pokemon.Pokemon
}

// UpdateInput defines the input for updating a Pokémon
type UpdateInput struct {
	Pokemon *pokemon.Pokemon
}

// UpdateOutput defines the output for updating a Pokémon
type UpdateOutput struct {
	Pokemon *pokemon.Pokemon
}

// DeleteInput defines the input for deleting a Pokémon
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a Pokémon
type DeleteOutput struct{}

// ListByTrainerInput defines the input for listing a trainer's Pokémon
type ListByTrainerInput struct {
	TrainerID string
}

// ListByTrainerOutput defines the output for listing a trainer's Pokémon
type ListByTrainerOutput struct {
	Pokemon []*pokemon.Pokemon
}

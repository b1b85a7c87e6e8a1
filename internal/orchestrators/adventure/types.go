package adventure

import (
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/engine"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
)

// WildPokemon is an uncaught spawn with stats derived from its level
type WildPokemon struct {
	Species   string
	SpeciesID int32
	Level     int32
	Types     []pokemon.Type
	MaxHP     int32
	Attack    int32
	Defense   int32
}

// ExploreInput defines the request for exploring a location area
type ExploreInput struct {
	TrainerID    string
	LocationArea string
	// ReferenceLevel centres default level windows and the fallback level
	ReferenceLevel int32
}

// ExploreOutput defines the response for exploring a location area
type ExploreOutput struct {
	Wild *WildPokemon
	// Fallback is true when the location had nothing to offer
	Fallback bool
}

// AttackInput defines the request for attacking a wild Pokémon
type AttackInput struct {
	AttackerID      string
	Move            string
	DefenderSpecies string
	DefenderLevel   int32
}

// AttackOutput defines the response for an attack
type AttackOutput struct {
	Attacker       *pokemon.Pokemon
	Move           pokemon.Move
	Damage         int32
	Effectiveness  float64
	Classification engine.Classification
	// Message is the advisory text for the classification, empty for neutral hits
	Message string
	STAB    bool
}

// ThrowBallInput defines the request for throwing a ball at a wild Pokémon
type ThrowBallInput struct {
	TrainerID string
	Species   string
	Level     int32
	MaxHP     int32
	CurrentHP int32
	// Ball defaults to poke-ball
	Ball Ball
	// Status defaults to none
	Status Status
}

// ThrowBallOutput defines the response for a ball throw
type ThrowBallOutput struct {
	Captured bool
	Chance   float64
	// Pokemon is the persisted catch, nil when the throw failed
	Pokemon *pokemon.Pokemon
}

// CheckEvolutionInput defines the request for an evolution check
type CheckEvolutionInput struct {
	PokemonID string
	Trigger   pokemon.TriggerEvent
	// Item is the consumed item for an item-use trigger
	Item string
	// Context carries time of day and location. PartyTypes is ignored and
	// rebuilt from the trainer's stored Pokémon.
	Context pokemon.TriggerContext
}

// CheckEvolutionOutput defines the response for an evolution check
type CheckEvolutionOutput struct {
	Decision    engine.EvolutionDecision
	FromSpecies string
	// Pokemon reflects the stored state after the check
	Pokemon *pokemon.Pokemon
}

// ReleaseInput defines the request to release a trainer's Pokémon
type ReleaseInput struct {
	TrainerID string
	PokemonID string
}

// ReleaseOutput carries the Pokémon as it was before release
type ReleaseOutput struct {
	Pokemon *pokemon.Pokemon
}

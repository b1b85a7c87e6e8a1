package rpgtoolkit

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
)

// Entity types reported to rpg-toolkit
const (
	EntityTypePokemon   = "pokemon"
	EntityTypeWildSpawn = "wild_pokemon"
	EntityTypeTrainer   = "trainer"
)

// PokemonEntity wraps pokemon.Pokemon to implement core.Entity interface
type PokemonEntity struct {
	*pokemon.Pokemon
}

// GetID returns the Pokémon's ID
func (p *PokemonEntity) GetID() string {
	return p.ID
}

// GetType returns the entity type for rpg-toolkit
func (p *PokemonEntity) GetType() string {
	return EntityTypePokemon
}

// WildSpawnEntity is an uncaught Pokémon produced by an encounter
type WildSpawnEntity struct {
	Species string
	Level   int32
}

// GetID returns a stable id built from species and level
func (w *WildSpawnEntity) GetID() string {
	return fmt.Sprintf("%s-%d", w.Species, w.Level)
}

// GetType returns the entity type for rpg-toolkit
func (w *WildSpawnEntity) GetType() string {
	return EntityTypeWildSpawn
}

// TrainerEntity identifies a player
type TrainerEntity struct {
	ID string
}

// GetID returns the trainer's ID
func (t *TrainerEntity) GetID() string {
	return t.ID
}

// GetType returns the entity type for rpg-toolkit
func (t *TrainerEntity) GetType() string {
	return EntityTypeTrainer
}

// WrapPokemon converts a pokemon.Pokemon to a core.Entity
func WrapPokemon(p *pokemon.Pokemon) core.Entity {
	return &PokemonEntity{Pokemon: p}
}

// WrapWildSpawn converts a spawned species to a core.Entity
func WrapWildSpawn(species string, level int32) core.Entity {
	return &WildSpawnEntity{Species: species, Level: level}
}

// WrapTrainer converts a trainer id to a core.Entity
func WrapTrainer(id string) core.Entity {
	return &TrainerEntity{ID: id}
}

package rpgtoolkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/engine/rpgtoolkit"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
)

func TestPokemonEntity(t *testing.T) {
	p := &pokemon.Pokemon{ID: "pkmn_123", Species: "bulbasaur"}

	entity := rpgtoolkit.WrapPokemon(p)

	assert.Equal(t, "pkmn_123", entity.GetID())
	assert.Equal(t, rpgtoolkit.EntityTypePokemon, entity.GetType())

	wrapped, ok := entity.(*rpgtoolkit.PokemonEntity)
	assert.True(t, ok)
	assert.Equal(t, p, wrapped.Pokemon)
}

func TestWildSpawnEntity(t *testing.T) {
	entity := rpgtoolkit.WrapWildSpawn("pidgey", 3)

	assert.Equal(t, "pidgey-3", entity.GetID())
	assert.Equal(t, rpgtoolkit.EntityTypeWildSpawn, entity.GetType())
}

func TestTrainerEntity(t *testing.T) {
	entity := rpgtoolkit.WrapTrainer("ash")

	assert.Equal(t, "ash", entity.GetID())
	assert.Equal(t, rpgtoolkit.EntityTypeTrainer, entity.GetType())
}

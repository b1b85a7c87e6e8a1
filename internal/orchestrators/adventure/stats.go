package adventure

import (
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/clients/pokeapi"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
)

// statAt is the simplified stat formula without IVs, EVs or nature
func statAt(base, level int32) int32 {
	return 2*base*level/100 + 5
}

func hpAt(base, level int32) int32 {
	return 2*base*level/100 + level + 10
}

func wildFromData(data *pokeapi.PokemonData, level int32) *WildPokemon {
	return &WildPokemon{
		Species:   data.Species,
		SpeciesID: data.ID,
		Level:     level,
		Types:     data.Types,
		MaxHP:     hpAt(data.BaseStats.HP, level),
		Attack:    statAt(data.BaseStats.Attack, level),
		Defense:   statAt(data.BaseStats.Defense, level),
	}
}

// applyStats recomputes types and stats after a species change. Damage
// taken carries over.
func applyStats(p *pokemon.Pokemon, data *pokeapi.PokemonData) {
	missing := p.MaxHP - p.CurrentHP
	p.Types = data.Types
	p.MaxHP = hpAt(data.BaseStats.HP, p.Level)
	p.Attack = statAt(data.BaseStats.Attack, p.Level)
	p.Defense = statAt(data.BaseStats.Defense, p.Level)
	p.CurrentHP = p.MaxHP - missing
	if p.CurrentHP < 1 {
		p.CurrentHP = 1
	}
}

// firstMoves fills the move slots from the provider's learnset order
func firstMoves(moves []string) [pokemon.MaxMoveSlots]string {
	var slots [pokemon.MaxMoveSlots]string
	copy(slots[:], moves)
	return slots
}

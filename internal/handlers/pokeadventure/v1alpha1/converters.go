package v1alpha1

import (
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/orchestrators/adventure"
)

func convertTypesToMessage(types []pokemon.Type) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, string(t))
	}
	return out
}

func convertWildToMessage(w *adventure.WildPokemon) *WildPokemon {
	if w == nil {
		return nil
	}
	return &WildPokemon{
		Species:   w.Species,
		SpeciesID: w.SpeciesID,
		Level:     w.Level,
		Types:     convertTypesToMessage(w.Types),
		MaxHP:     w.MaxHP,
		Attack:    w.Attack,
		Defense:   w.Defense,
	}
}

func convertPokemonToMessage(p *pokemon.Pokemon) *Pokemon {
	if p == nil {
		return nil
	}

	moves := make([]string, 0, len(p.Moves))
	for _, m := range p.Moves {
		if m != "" {
			moves = append(moves, m)
		}
	}

	return &Pokemon{
		ID:        p.ID,
		TrainerID: p.TrainerID,
		Species:   p.Species,
		SpeciesID: p.SpeciesID,
		Nickname:  p.Nickname,
		Level:     p.Level,
		Happiness: p.Happiness,
		HeldItem:  p.HeldItem,
		Moves:     moves,
		Gender:    string(p.Gender),
		Types:     convertTypesToMessage(p.Types),
		MaxHP:     p.MaxHP,
		CurrentHP: p.CurrentHP,
		Attack:    p.Attack,
		Defense:   p.Defense,
		Location:  p.Location,
	}
}

package client

import (
	"fmt"
	"strings"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/handlers/pokeadventure/v1alpha1"
)

func displayTypes(types []string) string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, pokemon.DisplayName(t))
	}
	return strings.Join(names, "/")
}

func printWild(w *v1alpha1.WildPokemon) {
	if w == nil {
		return
	}
	fmt.Printf("  Species: %s (#%d)\n", pokemon.DisplayName(w.Species), w.SpeciesID)
	fmt.Printf("  Level: %d\n", w.Level)
	fmt.Printf("  Types: %s\n", displayTypes(w.Types))
	fmt.Printf("  HP: %d  Attack: %d  Defense: %d\n", w.MaxHP, w.Attack, w.Defense)
}

func printPokemon(p *v1alpha1.Pokemon) {
	if p == nil {
		return
	}
	fmt.Printf("  ID: %s\n", p.ID)
	fmt.Printf("  Trainer: %s\n", p.TrainerID)
	fmt.Printf("  Species: %s (#%d)\n", pokemon.DisplayName(p.Species), p.SpeciesID)
	if p.Nickname != "" {
		fmt.Printf("  Nickname: %s\n", p.Nickname)
	}
	fmt.Printf("  Level: %d  Happiness: %d\n", p.Level, p.Happiness)
	if p.Gender != "" {
		fmt.Printf("  Gender: %s\n", pokemon.DisplayName(p.Gender))
	}
	fmt.Printf("  Types: %s\n", displayTypes(p.Types))
	fmt.Printf("  HP: %d/%d  Attack: %d  Defense: %d\n", p.CurrentHP, p.MaxHP, p.Attack, p.Defense)
	if len(p.Moves) > 0 {
		moves := make([]string, 0, len(p.Moves))
		for _, m := range p.Moves {
			moves = append(moves, pokemon.DisplayName(m))
		}
		fmt.Printf("  Moves: %s\n", strings.Join(moves, ", "))
	}
	if p.HeldItem != "" {
		fmt.Printf("  Holding: %s\n", pokemon.DisplayName(p.HeldItem))
	}
}

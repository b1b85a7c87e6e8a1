package pokeapi

import (
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
)

// convertEncounters folds every version's details for a species into one
// entry: the best max_chance is the weight and the level range spans all
// encounter details. Table order follows the provider.
func convertEncounters(resp *locationAreaResponse) []pokemon.EncounterEntry {
	entries := make([]pokemon.EncounterEntry, 0, len(resp.PokemonEncounters))
	for _, enc := range resp.PokemonEncounters {
		entry := pokemon.EncounterEntry{Species: enc.Pokemon.Name}
		for _, version := range enc.VersionDetails {
			if version.MaxChance > entry.Chance {
				entry.Chance = version.MaxChance
			}
			for _, detail := range version.EncounterDetails {
				if detail.MinLevel > 0 && (entry.MinLevel == 0 || detail.MinLevel < entry.MinLevel) {
					entry.MinLevel = detail.MinLevel
				}
				if detail.MaxLevel > entry.MaxLevel {
					entry.MaxLevel = detail.MaxLevel
				}
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

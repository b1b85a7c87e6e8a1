package pokeapi

import (
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
)

// PokemonData is the battle-relevant part of a pokemon resource
type PokemonData struct {
	ID      int32
	Name    string
	Species string
	// Types are in slot order
	Types     []pokemon.Type
	BaseStats BaseStats
	Moves     []string
}

// BaseStats are the species' base values
type BaseStats struct {
	HP      int32
	Attack  int32
	Defense int32
}

// SpeciesData is the capture- and evolution-relevant part of a species
type SpeciesData struct {
	ID            int32
	Name          string
	CaptureRate   int32
	BaseHappiness int32
	// GenderRate is the female chance in eighths, or pokemon.GenderRateGenderless
	GenderRate        int32
	EvolutionChainURL string
}

// MoveData is a move's power and type. Status moves have power 0.
type MoveData struct {
	ID    int32
	Name  string
	Power int32
	Type  pokemon.Type
}

// namedResource is the provider's {name, url} reference
type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type typeSlot struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

type pokemonResponse struct {
	ID      int32         `json:"id"`
	Name    string        `json:"name"`
	Species namedResource `json:"species"`
	Types   []typeSlot    `json:"types"`
	Stats   []struct {
		BaseStat int32         `json:"base_stat"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
	Moves []struct {
		Move namedResource `json:"move"`
	} `json:"moves"`
}

type speciesResponse struct {
	ID             int32  `json:"id"`
	Name           string `json:"name"`
	CaptureRate    int32  `json:"capture_rate"`
	BaseHappiness  *int32 `json:"base_happiness"`
	GenderRate     *int32 `json:"gender_rate"`
	EvolutionChain *struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
}

type moveResponse struct {
	ID    int32         `json:"id"`
	Name  string        `json:"name"`
	Power *int32        `json:"power"`
	Type  namedResource `json:"type"`
}

type evolutionChainResponse struct {
	ID    int32     `json:"id"`
	Chain chainLink `json:"chain"`
}

type chainLink struct {
	Species          namedResource     `json:"species"`
	EvolutionDetails []evolutionDetail `json:"evolution_details"`
	EvolvesTo        []chainLink       `json:"evolves_to"`
}

type evolutionDetail struct {
	Trigger               *namedResource `json:"trigger"`
	Item                  *namedResource `json:"item"`
	HeldItem              *namedResource `json:"held_item"`
	KnownMove             *namedResource `json:"known_move"`
	KnownMoveType         *namedResource `json:"known_move_type"`
	Location              *namedResource `json:"location"`
	PartyType             *namedResource `json:"party_type"`
	PartySpecies          *namedResource `json:"party_species"`
	TradeSpecies          *namedResource `json:"trade_species"`
	Gender                *int32         `json:"gender"`
	MinLevel              *int32         `json:"min_level"`
	MinHappiness          *int32         `json:"min_happiness"`
	MinBeauty             *int32         `json:"min_beauty"`
	MinAffection          *int32         `json:"min_affection"`
	RelativePhysicalStats *int32         `json:"relative_physical_stats"`
	TimeOfDay             string         `json:"time_of_day"`
	NeedsOverworldRain    bool           `json:"needs_overworld_rain"`
	TurnUpsideDown        bool           `json:"turn_upside_down"`
}

type locationAreaResponse struct {
	ID                int32  `json:"id"`
	Name              string `json:"name"`
	PokemonEncounters []struct {
		Pokemon        namedResource `json:"pokemon"`
		VersionDetails []struct {
			MaxChance        int32 `json:"max_chance"`
			EncounterDetails []struct {
				MinLevel int32         `json:"min_level"`
				MaxLevel int32         `json:"max_level"`
				Chance   int32         `json:"chance"`
				Method   namedResource `json:"method"`
			} `json:"encounter_details"`
			Version namedResource `json:"version"`
		} `json:"version_details"`
	} `json:"pokemon_encounters"`
}

package v1alpha1

// WildPokemon is an uncaught spawn
type WildPokemon struct {
	Species   string   `json:"species"`
	SpeciesID int32    `json:"species_id"`
	Level     int32    `json:"level"`
	Types     []string `json:"types"`
	MaxHP     int32    `json:"max_hp"`
	Attack    int32    `json:"attack"`
	Defense   int32    `json:"defense"`
}

// Pokemon is a trainer-owned Pokémon
type Pokemon struct {
	ID        string   `json:"id"`
	TrainerID string   `json:"trainer_id"`
	Species   string   `json:"species"`
	SpeciesID int32    `json:"species_id"`
	Nickname  string   `json:"nickname,omitempty"`
	Level     int32    `json:"level"`
	Happiness int32    `json:"happiness"`
	HeldItem  string   `json:"held_item,omitempty"`
	Moves     []string `json:"moves"`
	Gender    string   `json:"gender,omitempty"`
	Types     []string `json:"types"`
	MaxHP     int32    `json:"max_hp"`
	CurrentHP int32    `json:"current_hp"`
	Attack    int32    `json:"attack"`
	Defense   int32    `json:"defense"`
	Location  string   `json:"location,omitempty"`
}

// ExploreRequest asks for a wild spawn at a location area
type ExploreRequest struct {
	TrainerID      string `json:"trainer_id"`
	LocationArea   string `json:"location_area"`
	ReferenceLevel int32  `json:"reference_level"`
}

// ExploreResponse carries the spawn
type ExploreResponse struct {
	Wild     *WildPokemon `json:"wild"`
	Fallback bool         `json:"fallback"`
}

// AttackRequest asks for the damage of one move
type AttackRequest struct {
	AttackerID      string `json:"attacker_id"`
	Move            string `json:"move"`
	DefenderSpecies string `json:"defender_species"`
	DefenderLevel   int32  `json:"defender_level"`
}

// AttackResponse carries the damage and its classification
type AttackResponse struct {
	Move           string  `json:"move"`
	MoveType       string  `json:"move_type"`
	Damage         int32   `json:"damage"`
	Effectiveness  float64 `json:"effectiveness"`
	Classification string  `json:"classification,omitempty"`
	Message        string  `json:"message,omitempty"`
	STAB           bool    `json:"stab"`
}

// ThrowBallRequest asks for a capture attempt
type ThrowBallRequest struct {
	TrainerID string `json:"trainer_id"`
	Species   string `json:"species"`
	Level     int32  `json:"level"`
	MaxHP     int32  `json:"max_hp"`
	CurrentHP int32  `json:"current_hp"`
	Ball      string `json:"ball,omitempty"`
	Status    string `json:"status,omitempty"`
}

// ThrowBallResponse carries the capture decision
type ThrowBallResponse struct {
	Captured bool     `json:"captured"`
	Chance   float64  `json:"chance"`
	Pokemon  *Pokemon `json:"pokemon,omitempty"`
}

// CheckEvolutionRequest asks whether a stored Pokémon evolves
type CheckEvolutionRequest struct {
	PokemonID string `json:"pokemon_id"`
	Trigger   string `json:"trigger"`
	Item      string `json:"item,omitempty"`
	TimeOfDay string `json:"time_of_day,omitempty"`
	Location  string `json:"location,omitempty"`
}

// CheckEvolutionResponse carries the decision and the stored Pokémon
type CheckEvolutionResponse struct {
	Decision    string   `json:"decision"`
	FromSpecies string   `json:"from_species"`
	Pokemon     *Pokemon `json:"pokemon"`
}

// ReleaseRequest asks to remove a Pokémon from its trainer
type ReleaseRequest struct {
	TrainerID string `json:"trainer_id"`
	PokemonID string `json:"pokemon_id"`
}

// ReleaseResponse carries the released Pokémon
type ReleaseResponse struct {
	Pokemon *Pokemon `json:"pokemon"`
}

package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
)

// CalculateDamageInput contains both combatants and the move used.
// Roller overrides the engine's roller when set.
type CalculateDamageInput struct {
	Attacker pokemon.Combatant
	Defender pokemon.Combatant
	Move     pokemon.Move
	Roller   dice.Roller
}

// CalculateDamageOutput contains the damage dealt and how it was reached
type CalculateDamageOutput struct {
	Damage         int32
	Effectiveness  float64
	Classification Classification
	STAB           bool
	// BaseDamage is the formula value before modifiers, 0 for status moves
	BaseDamage int32
	// RandomFactor is the per-hit roll in [0.85, 1.0], 0 when no roll happened
	RandomFactor float64
}

// CaptureChanceInput contains everything that affects capture odds
type CaptureChanceInput struct {
	CaptureRate      int32
	MaxHP            int32
	CurrentHP        int32
	ToolMultiplier   float64
	StatusMultiplier float64
}

// CaptureChanceOutput contains the clamped capture probability
type CaptureChanceOutput struct {
	HPFactor float64
	Chance   float64
}

// AttemptCaptureInput contains the capture parameters plus an optional
// roller override
type AttemptCaptureInput struct {
	CaptureChanceInput
	Roller dice.Roller
}

// AttemptCaptureOutput contains the capture decision
type AttemptCaptureOutput struct {
	Chance   float64
	Draw     float64
	Captured bool
}

// RollGenderInput contains the species gender rate: the female chance in
// eighths, or pokemon.GenderRateGenderless
type RollGenderInput struct {
	GenderRate int32
	Roller     dice.Roller
}

// RollGenderOutput contains the rolled gender
type RollGenderOutput struct {
	Gender pokemon.Gender
}

// CheckEvolutionInput contains the Pokémon, the event and the chain to walk.
// ChainUnavailable tells the engine the caller could not obtain the chain.
type CheckEvolutionInput struct {
	Pokemon          *pokemon.Pokemon
	Event            pokemon.TriggerEvent
	Context          pokemon.TriggerContext
	Chain            *pokemon.EvolutionNode
	ChainUnavailable bool
}

// EvolutionDecision is the outcome kind of an evolution check
type EvolutionDecision string

// Evolution decisions
const (
	EvolutionDecisionEvolve      EvolutionDecision = "evolve"
	EvolutionDecisionNoEvolution EvolutionDecision = "no_evolution"
	EvolutionDecisionUndecided   EvolutionDecision = "undecided"
)

// CheckEvolutionOutput contains the evolution decision. Species and
// SpeciesID are only set when Decision is evolve.
type CheckEvolutionOutput struct {
	Decision  EvolutionDecision
	Species   string
	SpeciesID int32
	// Detail is the condition set that matched
	Detail *pokemon.EvolutionDetail
}

// SelectWildEncounterInput contains a location's table and the reference
// level used for defaults and fallback
type SelectWildEncounterInput struct {
	Table            []pokemon.EncounterEntry
	ReferenceLevel   int32
	TableUnavailable bool
	Roller           dice.Roller
}

// SelectWildEncounterOutput identifies the spawned species and level
type SelectWildEncounterOutput struct {
	Species string
	Level   int32
	// EntryIndex is the table row that produced the pick, -1 on fallback
	EntryIndex int
	Fallback   bool
}

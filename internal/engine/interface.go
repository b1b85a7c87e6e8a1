// Package engine defines the Pokémon rules engine: type effectiveness,
// damage, capture, evolution matching and wild encounter selection.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/Guilhermee36/PokeAdventure-sub000/internal/engine Engine

import (
	"context"
)

// Engine computes battle, capture, evolution and encounter decisions over
// already-fetched data. Implementations do no I/O and are safe for
// concurrent use.
type Engine interface {
	// Battle
	CalculateDamage(ctx context.Context, input *CalculateDamageInput) (*CalculateDamageOutput, error)

	// Capture
	CaptureChance(ctx context.Context, input *CaptureChanceInput) (*CaptureChanceOutput, error)
	AttemptCapture(ctx context.Context, input *AttemptCaptureInput) (*AttemptCaptureOutput, error)
	RollGender(ctx context.Context, input *RollGenderInput) (*RollGenderOutput, error)

	// Evolution
	CheckEvolution(ctx context.Context, input *CheckEvolutionInput) (*CheckEvolutionOutput, error)

	// Wild encounters
	SelectWildEncounter(
		ctx context.Context,
		input *SelectWildEncounterInput,
	) (*SelectWildEncounterOutput, error)

	// TypeChart returns the effectiveness table the engine uses
	TypeChart() *TypeChart
}

// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/engine"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
)

// DefaultWildSpecies spawns when a location has nothing to offer
const DefaultWildSpecies = "pidgey"

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	diceRoller         dice.Roller
	typeChart          *engine.TypeChart
	defaultWildSpecies string
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	// DiceRoller is the default randomness source; inputs may override it
	DiceRoller dice.Roller
	// TypeChart defaults to engine.DefaultTypeChart
	TypeChart *engine.TypeChart
	// DefaultWildSpecies defaults to DefaultWildSpecies
	DefaultWildSpecies string
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	chart := cfg.TypeChart
	if chart == nil {
		chart = engine.DefaultTypeChart()
	}
	species := cfg.DefaultWildSpecies
	if species == "" {
		species = DefaultWildSpecies
	}

	return &Adapter{
		diceRoller:         cfg.DiceRoller,
		typeChart:          chart,
		defaultWildSpecies: species,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// TypeChart returns the effectiveness table in use
func (a *Adapter) TypeChart() *engine.TypeChart {
	return a.typeChart
}

func (a *Adapter) roller(override dice.Roller) dice.Roller {
	if override != nil {
		return override
	}
	return a.diceRoller
}

// roll draws 1..size and wraps roller failures as internal errors
func roll(r dice.Roller, size int) (int, error) {
	n, err := r.Roll(size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", size)
	}
	if n < 1 || n > size {
		return 0, errors.Newf(errors.CodeInternal, "roller returned %d for d%d", n, size)
	}
	return n, nil
}

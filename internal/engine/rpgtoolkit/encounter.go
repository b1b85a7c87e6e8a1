package rpgtoolkit

import (
	"context"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/engine"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
)

// defaultLevelSpread widens the reference level when an entry has no bounds
const defaultLevelSpread = 5

// SelectWildEncounter picks a species by weight and rolls its level. Empty,
// zero-weight or unavailable tables yield the default species.
func (a *Adapter) SelectWildEncounter(
	_ context.Context,
	input *engine.SelectWildEncounterInput,
) (*engine.SelectWildEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	fallback := &engine.SelectWildEncounterOutput{
		Species:    a.defaultWildSpecies,
		Level:      pokemon.ClampLevel(input.ReferenceLevel),
		EntryIndex: -1,
		Fallback:   true,
	}
	if input.TableUnavailable {
		return fallback, nil
	}

	total, err := totalWeight(input.Table)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return fallback, nil
	}

	r := a.roller(input.Roller)
	draw, err := roll(r, total)
	if err != nil {
		return nil, err
	}

	index := pickEntry(input.Table, draw)
	entry := input.Table[index]
	minLevel, maxLevel := levelBounds(entry, input.ReferenceLevel)

	level := minLevel
	if maxLevel > minLevel {
		n, err := roll(r, int(maxLevel-minLevel+1))
		if err != nil {
			return nil, err
		}
		level = minLevel + int32(n) - 1
	}

	return &engine.SelectWildEncounterOutput{
		Species:    entry.Species,
		Level:      level,
		EntryIndex: index,
	}, nil
}

func totalWeight(table []pokemon.EncounterEntry) (int, error) {
	vb := errors.NewValidationBuilder()
	total := 0
	for i, entry := range table {
		if entry.Chance < 0 {
			vb.Fieldf("table", "entry %d: chance must not be negative", i)
		}
		if entry.Chance > 0 && entry.Species == "" {
			vb.Fieldf("table", "entry %d: species is required", i)
		}
		if entry.MinLevel < 0 || entry.MaxLevel < 0 {
			vb.Fieldf("table", "entry %d: levels must not be negative", i)
		}
		if entry.Chance > 0 {
			total += int(entry.Chance)
		}
	}
	if err := vb.Build(); err != nil {
		return 0, err
	}
	return total, nil
}

// pickEntry returns the first entry whose cumulative weight reaches draw
func pickEntry(table []pokemon.EncounterEntry, draw int) int {
	cumulative := 0
	for i, entry := range table {
		if entry.Chance <= 0 {
			continue
		}
		cumulative += int(entry.Chance)
		if cumulative >= draw {
			return i
		}
	}
	return len(table) - 1
}

func levelBounds(entry pokemon.EncounterEntry, reference int32) (int32, int32) {
	minLevel := entry.MinLevel
	if minLevel == 0 {
		minLevel = reference - defaultLevelSpread
	}
	maxLevel := entry.MaxLevel
	if maxLevel == 0 {
		maxLevel = reference + defaultLevelSpread
	}

	minLevel = pokemon.ClampLevel(minLevel)
	maxLevel = pokemon.ClampLevel(maxLevel)
	if maxLevel < minLevel {
		maxLevel = minLevel
	}
	return minLevel, maxLevel
}

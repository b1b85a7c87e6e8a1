package rpgtoolkit

import (
	"context"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/engine"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
)

// MaxChainDepth bounds evolution chain traversal
const MaxChainDepth = 32

// evolutionSubject is what the condition predicates read
type evolutionSubject struct {
	pokemon *pokemon.Pokemon
	context pokemon.TriggerContext
}

func (s *evolutionSubject) location() string {
	if s.context.Location != "" {
		return s.context.Location
	}
	return s.pokemon.Location
}

// levelUpCondition checks one optional field of a detail. present reports
// whether the detail specifies the condition at all.
type levelUpCondition struct {
	name    string
	present func(d *pokemon.EvolutionDetail) bool
	holds   func(d *pokemon.EvolutionDetail, s *evolutionSubject) bool
}

// levelUpConditions are evaluated in this order; all present ones must hold
var levelUpConditions = []levelUpCondition{
	{
		name:    "min_level",
		present: func(d *pokemon.EvolutionDetail) bool { return d.MinLevel != nil },
		holds: func(d *pokemon.EvolutionDetail, s *evolutionSubject) bool {
			return s.pokemon.Level >= *d.MinLevel
		},
	},
	{
		name:    "min_happiness",
		present: func(d *pokemon.EvolutionDetail) bool { return d.MinHappiness != nil },
		holds: func(d *pokemon.EvolutionDetail, s *evolutionSubject) bool {
			return s.pokemon.Happiness >= *d.MinHappiness
		},
	},
	{
		name:    "held_item",
		present: func(d *pokemon.EvolutionDetail) bool { return d.HeldItem != "" },
		holds: func(d *pokemon.EvolutionDetail, s *evolutionSubject) bool {
			return s.pokemon.HeldItem == d.HeldItem
		},
	},
	{
		name:    "time_of_day",
		present: func(d *pokemon.EvolutionDetail) bool { return d.TimeOfDay != "" },
		holds: func(d *pokemon.EvolutionDetail, s *evolutionSubject) bool {
			return s.context.TimeOfDay == d.TimeOfDay
		},
	},
	{
		name:    "known_move",
		present: func(d *pokemon.EvolutionDetail) bool { return d.KnownMove != "" },
		holds: func(d *pokemon.EvolutionDetail, s *evolutionSubject) bool {
			return s.pokemon.KnowsMove(d.KnownMove)
		},
	},
	{
		name:    "party_type",
		present: func(d *pokemon.EvolutionDetail) bool { return d.PartyType != "" },
		holds: func(d *pokemon.EvolutionDetail, s *evolutionSubject) bool {
			return pokemon.ContainsType(s.context.PartyTypes, d.PartyType)
		},
	},
	{
		name:    "gender",
		present: func(d *pokemon.EvolutionDetail) bool { return d.Gender != nil },
		holds:   genderMatches,
	},
	{
		name:    "relative_physical_stats",
		present: func(d *pokemon.EvolutionDetail) bool { return d.RelativePhysicalStats != nil },
		holds: func(d *pokemon.EvolutionDetail, s *evolutionSubject) bool {
			return comparePhysicalStats(s.pokemon.Attack, s.pokemon.Defense) == *d.RelativePhysicalStats
		},
	},
	{
		name:    "location",
		present: func(d *pokemon.EvolutionDetail) bool { return d.Location != "" },
		holds: func(d *pokemon.EvolutionDetail, s *evolutionSubject) bool {
			return s.location() == d.Location
		},
	},
	{
		name:    "turn_upside_down",
		present: func(d *pokemon.EvolutionDetail) bool { return d.TurnUpsideDown },
		holds: func(_ *pokemon.EvolutionDetail, _ *evolutionSubject) bool {
			return false
		},
	},
}

func genderMatches(d *pokemon.EvolutionDetail, s *evolutionSubject) bool {
	if d.Gender == nil {
		return true
	}
	want := pokemon.GenderFromCode(*d.Gender)
	// unknown provider codes never match, not even an unsexed Pokémon
	if want == pokemon.GenderUnknown {
		return false
	}
	return s.pokemon.Gender == want
}

func comparePhysicalStats(attack, defense int32) int32 {
	switch {
	case attack > defense:
		return pokemon.AttackGreaterThanDefense
	case attack < defense:
		return pokemon.AttackLessThanDefense
	default:
		return pokemon.AttackEqualsDefense
	}
}

// CheckEvolution walks the chain from the Pokémon's species and returns the
// first child whose details match the trigger event
func (a *Adapter) CheckEvolution(
	_ context.Context,
	input *engine.CheckEvolutionInput,
) (*engine.CheckEvolutionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Pokemon == nil {
		return nil, errors.InvalidArgument("pokemon is required")
	}
	if !input.Event.IsValid() {
		return nil, errors.InvalidArgumentf("unknown trigger event %q", input.Event)
	}
	if input.Event == pokemon.TriggerEventItemUse && input.Context.Item == "" {
		return nil, errors.InvalidArgument("item is required for an item-use check")
	}

	if input.ChainUnavailable {
		return &engine.CheckEvolutionOutput{Decision: engine.EvolutionDecisionUndecided}, nil
	}
	noEvolution := &engine.CheckEvolutionOutput{Decision: engine.EvolutionDecisionNoEvolution}
	if input.Chain == nil {
		return noEvolution, nil
	}

	node, err := findSpecies(input.Chain, input.Pokemon.Species)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return noEvolution, nil
	}

	subject := &evolutionSubject{pokemon: input.Pokemon, context: input.Context}
	for _, edge := range node.EvolvesTo {
		if edge == nil || edge.Node == nil {
			continue
		}
		for i := range edge.Details {
			detail := &edge.Details[i]
			if !detailMatches(input.Event, detail, subject) {
				continue
			}

			speciesID, err := pokemon.SpeciesIDFromURL(edge.Node.SpeciesURL)
			if err != nil {
				return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed species reference").
					WithMeta("species", edge.Node.SpeciesName)
			}
			return &engine.CheckEvolutionOutput{
				Decision:  engine.EvolutionDecisionEvolve,
				Species:   edge.Node.SpeciesName,
				SpeciesID: speciesID,
				Detail:    detail,
			}, nil
		}
	}

	return noEvolution, nil
}

func detailMatches(event pokemon.TriggerEvent, d *pokemon.EvolutionDetail, s *evolutionSubject) bool {
	if len(d.Unsupported) > 0 {
		return false
	}

	switch event {
	case pokemon.TriggerEventLevelUp:
		return levelUpMatches(d, s)
	case pokemon.TriggerEventItemUse:
		return itemUseMatches(d, s)
	}
	return false
}

func levelUpMatches(d *pokemon.EvolutionDetail, s *evolutionSubject) bool {
	if d.Trigger != pokemon.DetailTriggerLevelUp {
		return false
	}
	for _, cond := range levelUpConditions {
		if cond.present(d) && !cond.holds(d, s) {
			return false
		}
	}
	return true
}

// itemUseMatches evaluates the item-use alternatives; the first that applies
// decides. Details of any other kind are skipped.
func itemUseMatches(d *pokemon.EvolutionDetail, s *evolutionSubject) bool {
	item := s.context.Item

	switch {
	case d.Trigger == pokemon.DetailTriggerUseItem && d.Item != "":
		return item == d.Item && genderMatches(d, s)
	case d.TurnUpsideDown:
		if item != pokemon.ItemUpsideDownMirror {
			return false
		}
		return d.MinLevel == nil || s.pokemon.Level >= *d.MinLevel
	case d.Trigger == pokemon.DetailTriggerTrade:
		if item != pokemon.ItemLinkingCord {
			return false
		}
		return d.HeldItem == "" || s.pokemon.HeldItem == d.HeldItem
	}
	return false
}

// findSpecies does a depth-first search for species, refusing cycles and
// chains deeper than MaxChainDepth
func findSpecies(root *pokemon.EvolutionNode, species string) (*pokemon.EvolutionNode, error) {
	visited := make(map[*pokemon.EvolutionNode]bool)

	var walk func(node *pokemon.EvolutionNode, depth int) (*pokemon.EvolutionNode, error)
	walk = func(node *pokemon.EvolutionNode, depth int) (*pokemon.EvolutionNode, error) {
		if depth > MaxChainDepth {
			return nil, errors.InvalidArgumentf("evolution chain deeper than %d", MaxChainDepth).
				WithMeta("depth", depth).
				WithMeta("species", node.SpeciesName)
		}
		if visited[node] {
			return nil, errors.InvalidArgument("evolution chain contains a cycle").
				WithMeta("depth", depth).
				WithMeta("species", node.SpeciesName)
		}
		visited[node] = true

		if node.SpeciesName == species {
			return node, nil
		}
		for _, edge := range node.EvolvesTo {
			if edge == nil || edge.Node == nil {
				continue
			}
			found, err := walk(edge.Node, depth+1)
			if err != nil || found != nil {
				return found, err
			}
		}
		return nil, nil
	}

	return walk(root, 0)
}

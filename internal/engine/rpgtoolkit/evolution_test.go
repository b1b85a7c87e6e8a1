package rpgtoolkit_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/engine"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/engine/rpgtoolkit"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/testutils"
)

const speciesURL = "https://pokeapi.co/api/v2/pokemon-species/%d/"

type EvolutionTestSuite struct {
	suite.Suite
	ctx     context.Context
	adapter *rpgtoolkit.Adapter
}

func TestEvolutionSuite(t *testing.T) {
	suite.Run(t, new(EvolutionTestSuite))
}

func (s *EvolutionTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.adapter = newTestAdapter(&s.Suite, &rpgtoolkit.AdapterConfig{DiceRoller: testutils.MaxRoller{}})
}

func node(name string, id int, edges ...*pokemon.EvolutionEdge) *pokemon.EvolutionNode {
	return &pokemon.EvolutionNode{
		SpeciesName: name,
		SpeciesURL:  fmt.Sprintf(speciesURL, id),
		EvolvesTo:   edges,
	}
}

func edge(to *pokemon.EvolutionNode, details ...pokemon.EvolutionDetail) *pokemon.EvolutionEdge {
	return &pokemon.EvolutionEdge{Node: to, Details: details}
}

func eeveeChain() *pokemon.EvolutionNode {
	return node("eevee", 133,
		edge(node("vaporeon", 134), pokemon.EvolutionDetail{Trigger: pokemon.DetailTriggerUseItem, Item: "water-stone"}),
		edge(node("espeon", 196), pokemon.EvolutionDetail{
			Trigger:      pokemon.DetailTriggerLevelUp,
			MinHappiness: pokemon.Int32(220),
			TimeOfDay:    pokemon.TimeOfDayDay,
		}),
		edge(node("umbreon", 197), pokemon.EvolutionDetail{
			Trigger:      pokemon.DetailTriggerLevelUp,
			MinHappiness: pokemon.Int32(220),
			TimeOfDay:    pokemon.TimeOfDayNight,
		}),
		edge(node("sylveon", 700), pokemon.EvolutionDetail{
			Trigger:     pokemon.DetailTriggerLevelUp,
			Unsupported: []string{"min_affection", "known_move_type"},
		}),
	)
}

func (s *EvolutionTestSuite) check(
	p *pokemon.Pokemon,
	event pokemon.TriggerEvent,
	ctx pokemon.TriggerContext,
	chain *pokemon.EvolutionNode,
) *engine.CheckEvolutionOutput {
	output, err := s.adapter.CheckEvolution(s.ctx, &engine.CheckEvolutionInput{
		Pokemon: p,
		Event:   event,
		Context: ctx,
		Chain:   chain,
	})
	s.Require().NoError(err)
	return output
}

func (s *EvolutionTestSuite) TestEspeonOnlyByDay() {
	chain := node("eevee", 133, edge(node("espeon", 196), pokemon.EvolutionDetail{
		Trigger:      pokemon.DetailTriggerLevelUp,
		MinHappiness: pokemon.Int32(220),
		TimeOfDay:    pokemon.TimeOfDayDay,
	}))
	eevee := &pokemon.Pokemon{Species: "eevee", Level: 20, Happiness: 250}

	day := s.check(eevee, pokemon.TriggerEventLevelUp, pokemon.TriggerContext{TimeOfDay: "day"}, chain)
	s.Equal(engine.EvolutionDecisionEvolve, day.Decision)
	s.Equal("espeon", day.Species)
	s.Equal(int32(196), day.SpeciesID)

	night := s.check(eevee, pokemon.TriggerEventLevelUp, pokemon.TriggerContext{TimeOfDay: "night"}, chain)
	s.Equal(engine.EvolutionDecisionNoEvolution, night.Decision)
	s.Empty(night.Species)
}

func (s *EvolutionTestSuite) TestEeveeBranches() {
	testCases := []struct {
		name      string
		happiness int32
		event     pokemon.TriggerEvent
		ctx       pokemon.TriggerContext
		expected  string
	}{
		{name: "happy by day", happiness: 250, event: pokemon.TriggerEventLevelUp, ctx: pokemon.TriggerContext{TimeOfDay: "day"}, expected: "espeon"},
		{name: "happy by night", happiness: 250, event: pokemon.TriggerEventLevelUp, ctx: pokemon.TriggerContext{TimeOfDay: "night"}, expected: "umbreon"},
		{name: "unhappy by day", happiness: 100, event: pokemon.TriggerEventLevelUp, ctx: pokemon.TriggerContext{TimeOfDay: "day"}},
		{name: "water stone", happiness: 0, event: pokemon.TriggerEventItemUse, ctx: pokemon.TriggerContext{Item: "water-stone"}, expected: "vaporeon"},
		{name: "wrong stone", happiness: 0, event: pokemon.TriggerEventItemUse, ctx: pokemon.TriggerContext{Item: "fire-stone"}},
		{name: "level-up details skipped on item use", happiness: 250, event: pokemon.TriggerEventItemUse, ctx: pokemon.TriggerContext{Item: "rare-candy", TimeOfDay: "day"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			eevee := &pokemon.Pokemon{Species: "eevee", Level: 25, Happiness: tc.happiness}
			output := s.check(eevee, tc.event, tc.ctx, eeveeChain())
			if tc.expected == "" {
				s.Equal(engine.EvolutionDecisionNoEvolution, output.Decision)
				return
			}
			s.Equal(engine.EvolutionDecisionEvolve, output.Decision)
			s.Equal(tc.expected, output.Species)
			s.NotNil(output.Detail)
		})
	}
}

func (s *EvolutionTestSuite) TestLevelUpConditions() {
	testCases := []struct {
		name     string
		detail   pokemon.EvolutionDetail
		pokemon  pokemon.Pokemon
		ctx      pokemon.TriggerContext
		expected bool
	}{
		{
			name:     "min level met",
			detail:   pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: pokemon.Int32(16)},
			pokemon:  pokemon.Pokemon{Level: 16},
			expected: true,
		},
		{
			name:    "min level not met",
			detail:  pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: pokemon.Int32(16)},
			pokemon: pokemon.Pokemon{Level: 15},
		},
		{
			name:     "held item",
			detail:   pokemon.EvolutionDetail{Trigger: "level-up", HeldItem: "oval-stone", TimeOfDay: "day"},
			pokemon:  pokemon.Pokemon{Level: 5, HeldItem: "oval-stone"},
			ctx:      pokemon.TriggerContext{TimeOfDay: "day"},
			expected: true,
		},
		{
			name:    "held item missing",
			detail:  pokemon.EvolutionDetail{Trigger: "level-up", HeldItem: "oval-stone"},
			pokemon: pokemon.Pokemon{Level: 5},
		},
		{
			name:     "known move",
			detail:   pokemon.EvolutionDetail{Trigger: "level-up", KnownMove: "mimic"},
			pokemon:  pokemon.Pokemon{Level: 10, Moves: [pokemon.MaxMoveSlots]string{"confusion", "mimic"}},
			expected: true,
		},
		{
			name:    "known move absent",
			detail:  pokemon.EvolutionDetail{Trigger: "level-up", KnownMove: "mimic"},
			pokemon: pokemon.Pokemon{Level: 10, Moves: [pokemon.MaxMoveSlots]string{"confusion"}},
		},
		{
			name:     "party type present",
			detail:   pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: pokemon.Int32(32), PartyType: pokemon.TypeDark},
			pokemon:  pokemon.Pokemon{Level: 32},
			ctx:      pokemon.TriggerContext{PartyTypes: []pokemon.Type{pokemon.TypeWater, pokemon.TypeDark}},
			expected: true,
		},
		{
			name:    "party type missing",
			detail:  pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: pokemon.Int32(32), PartyType: pokemon.TypeDark},
			pokemon: pokemon.Pokemon{Level: 40},
			ctx:     pokemon.TriggerContext{PartyTypes: []pokemon.Type{pokemon.TypeWater}},
		},
		{
			name:     "gender female",
			detail:   pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: pokemon.Int32(21), Gender: pokemon.Int32(1)},
			pokemon:  pokemon.Pokemon{Level: 21, Gender: pokemon.GenderFemale},
			expected: true,
		},
		{
			name:    "gender male rejected",
			detail:  pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: pokemon.Int32(21), Gender: pokemon.Int32(1)},
			pokemon: pokemon.Pokemon{Level: 21, Gender: pokemon.GenderMale},
		},
		{
			name:    "unknown gender code never matches unsexed",
			detail:  pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: pokemon.Int32(21), Gender: pokemon.Int32(9)},
			pokemon: pokemon.Pokemon{Level: 21},
		},
		{
			name:     "attack above defense",
			detail:   pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: pokemon.Int32(20), RelativePhysicalStats: pokemon.Int32(1)},
			pokemon:  pokemon.Pokemon{Level: 20, Attack: 40, Defense: 30},
			expected: true,
		},
		{
			name:     "attack below defense",
			detail:   pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: pokemon.Int32(20), RelativePhysicalStats: pokemon.Int32(-1)},
			pokemon:  pokemon.Pokemon{Level: 20, Attack: 30, Defense: 40},
			expected: true,
		},
		{
			name:     "attack equals defense",
			detail:   pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: pokemon.Int32(20), RelativePhysicalStats: pokemon.Int32(0)},
			pokemon:  pokemon.Pokemon{Level: 20, Attack: 35, Defense: 35},
			expected: true,
		},
		{
			name:    "attack comparison mismatch",
			detail:  pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: pokemon.Int32(20), RelativePhysicalStats: pokemon.Int32(0)},
			pokemon: pokemon.Pokemon{Level: 20, Attack: 36, Defense: 35},
		},
		{
			name:     "stored location",
			detail:   pokemon.EvolutionDetail{Trigger: "level-up", Location: "eterna-forest"},
			pokemon:  pokemon.Pokemon{Level: 5, Location: "eterna-forest"},
			expected: true,
		},
		{
			name:     "context location wins",
			detail:   pokemon.EvolutionDetail{Trigger: "level-up", Location: "eterna-forest"},
			pokemon:  pokemon.Pokemon{Level: 5, Location: "pallet-town"},
			ctx:      pokemon.TriggerContext{Location: "eterna-forest"},
			expected: true,
		},
		{
			name:    "wrong location",
			detail:  pokemon.EvolutionDetail{Trigger: "level-up", Location: "eterna-forest"},
			pokemon: pokemon.Pokemon{Level: 5, Location: "pallet-town"},
		},
		{
			name:    "upside down never levels up",
			detail:  pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: pokemon.Int32(30), TurnUpsideDown: true},
			pokemon: pokemon.Pokemon{Level: 50},
		},
		{
			name:    "trade detail ignored on level up",
			detail:  pokemon.EvolutionDetail{Trigger: "trade"},
			pokemon: pokemon.Pokemon{Level: 50},
		},
		{
			name:    "unsupported condition",
			detail:  pokemon.EvolutionDetail{Trigger: "level-up", Unsupported: []string{"needs_overworld_rain"}},
			pokemon: pokemon.Pokemon{Level: 50},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			p := tc.pokemon
			p.Species = "base"
			chain := node("base", 1, edge(node("evolved", 2), tc.detail))

			output := s.check(&p, pokemon.TriggerEventLevelUp, tc.ctx, chain)
			if tc.expected {
				s.Equal(engine.EvolutionDecisionEvolve, output.Decision)
				s.Equal("evolved", output.Species)
				s.Equal(int32(2), output.SpeciesID)
			} else {
				s.Equal(engine.EvolutionDecisionNoEvolution, output.Decision)
			}
		})
	}
}

func (s *EvolutionTestSuite) TestItemUseAlternatives() {
	testCases := []struct {
		name     string
		detail   pokemon.EvolutionDetail
		pokemon  pokemon.Pokemon
		item     string
		expected bool
	}{
		{
			name:     "stone with gender match",
			detail:   pokemon.EvolutionDetail{Trigger: "use-item", Item: "dawn-stone", Gender: pokemon.Int32(2)},
			pokemon:  pokemon.Pokemon{Level: 30, Gender: pokemon.GenderMale},
			item:     "dawn-stone",
			expected: true,
		},
		{
			name:    "stone with gender mismatch",
			detail:  pokemon.EvolutionDetail{Trigger: "use-item", Item: "dawn-stone", Gender: pokemon.Int32(2)},
			pokemon: pokemon.Pokemon{Level: 30, Gender: pokemon.GenderFemale},
			item:    "dawn-stone",
		},
		{
			name:    "stone with unknown gender code",
			detail:  pokemon.EvolutionDetail{Trigger: "use-item", Item: "dawn-stone", Gender: pokemon.Int32(0)},
			pokemon: pokemon.Pokemon{Level: 30},
			item:    "dawn-stone",
		},
		{
			name:     "upside down mirror at level",
			detail:   pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: pokemon.Int32(30), TurnUpsideDown: true},
			pokemon:  pokemon.Pokemon{Level: 30},
			item:     pokemon.ItemUpsideDownMirror,
			expected: true,
		},
		{
			name:    "upside down mirror below level",
			detail:  pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: pokemon.Int32(30), TurnUpsideDown: true},
			pokemon: pokemon.Pokemon{Level: 29},
			item:    pokemon.ItemUpsideDownMirror,
		},
		{
			name:     "upside down mirror without level",
			detail:   pokemon.EvolutionDetail{Trigger: "level-up", TurnUpsideDown: true},
			pokemon:  pokemon.Pokemon{Level: 1},
			item:     pokemon.ItemUpsideDownMirror,
			expected: true,
		},
		{
			name:    "upside down needs the mirror",
			detail:  pokemon.EvolutionDetail{Trigger: "level-up", TurnUpsideDown: true},
			pokemon: pokemon.Pokemon{Level: 50},
			item:    pokemon.ItemLinkingCord,
		},
		{
			name:     "plain trade",
			detail:   pokemon.EvolutionDetail{Trigger: "trade"},
			pokemon:  pokemon.Pokemon{Level: 16},
			item:     pokemon.ItemLinkingCord,
			expected: true,
		},
		{
			name:    "trade needs the cord",
			detail:  pokemon.EvolutionDetail{Trigger: "trade"},
			pokemon: pokemon.Pokemon{Level: 16},
			item:    "water-stone",
		},
		{
			name:     "trade with held item",
			detail:   pokemon.EvolutionDetail{Trigger: "trade", HeldItem: "metal-coat"},
			pokemon:  pokemon.Pokemon{Level: 16, HeldItem: "metal-coat"},
			item:     pokemon.ItemLinkingCord,
			expected: true,
		},
		{
			name:    "trade missing held item",
			detail:  pokemon.EvolutionDetail{Trigger: "trade", HeldItem: "metal-coat"},
			pokemon: pokemon.Pokemon{Level: 16},
			item:    pokemon.ItemLinkingCord,
		},
		{
			name:    "trade for a specific species is unsupported",
			detail:  pokemon.EvolutionDetail{Trigger: "trade", Unsupported: []string{"trade_species"}},
			pokemon: pokemon.Pokemon{Level: 16},
			item:    pokemon.ItemLinkingCord,
		},
		{
			name:    "plain level-up detail skipped",
			detail:  pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: pokemon.Int32(5)},
			pokemon: pokemon.Pokemon{Level: 50},
			item:    "rare-candy",
		},
		{
			name:    "unknown trigger skipped",
			detail:  pokemon.EvolutionDetail{Trigger: "shed"},
			pokemon: pokemon.Pokemon{Level: 50},
			item:    pokemon.ItemLinkingCord,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			p := tc.pokemon
			p.Species = "base"
			chain := node("base", 1, edge(node("evolved", 2), tc.detail))

			output := s.check(&p, pokemon.TriggerEventItemUse, pokemon.TriggerContext{Item: tc.item}, chain)
			if tc.expected {
				s.Equal(engine.EvolutionDecisionEvolve, output.Decision)
				s.Equal("evolved", output.Species)
			} else {
				s.Equal(engine.EvolutionDecisionNoEvolution, output.Decision)
			}
		})
	}
}

func (s *EvolutionTestSuite) TestFirstMatchingDetailAndChildWin() {
	chain := node("tyrogue", 236,
		edge(node("hitmonlee", 106), pokemon.EvolutionDetail{
			Trigger: "level-up", MinLevel: pokemon.Int32(20), RelativePhysicalStats: pokemon.Int32(1),
		}),
		edge(node("hitmonchan", 107),
			pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: pokemon.Int32(99)},
			pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: pokemon.Int32(20)},
		),
		edge(node("hitmontop", 237), pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: pokemon.Int32(20)}),
	)

	output := s.check(&pokemon.Pokemon{Species: "tyrogue", Level: 20, Attack: 30, Defense: 35},
		pokemon.TriggerEventLevelUp, pokemon.TriggerContext{}, chain)

	s.Equal("hitmonchan", output.Species)
	s.Equal(int32(107), output.SpeciesID)
	s.Equal(int32(20), *output.Detail.MinLevel)
}

func (s *EvolutionTestSuite) TestWalksToNestedSpecies() {
	chain := node("bulbasaur", 1,
		edge(node("ivysaur", 2,
			edge(node("venusaur", 3), pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: pokemon.Int32(32)}),
		), pokemon.EvolutionDetail{Trigger: "level-up", MinLevel: pokemon.Int32(16)}),
	)

	output := s.check(&pokemon.Pokemon{Species: "ivysaur", Level: 32}, pokemon.TriggerEventLevelUp,
		pokemon.TriggerContext{}, chain)
	s.Equal("venusaur", output.Species)

	terminal := s.check(&pokemon.Pokemon{Species: "venusaur", Level: 100}, pokemon.TriggerEventLevelUp,
		pokemon.TriggerContext{}, chain)
	s.Equal(engine.EvolutionDecisionNoEvolution, terminal.Decision)

	stranger := s.check(&pokemon.Pokemon{Species: "pikachu", Level: 100}, pokemon.TriggerEventLevelUp,
		pokemon.TriggerContext{}, chain)
	s.Equal(engine.EvolutionDecisionNoEvolution, stranger.Decision)
}

func (s *EvolutionTestSuite) TestMissingChain() {
	p := &pokemon.Pokemon{Species: "tauros", Level: 50}

	output := s.check(p, pokemon.TriggerEventLevelUp, pokemon.TriggerContext{}, nil)
	s.Equal(engine.EvolutionDecisionNoEvolution, output.Decision)

	output, err := s.adapter.CheckEvolution(s.ctx, &engine.CheckEvolutionInput{
		Pokemon:          p,
		Event:            pokemon.TriggerEventLevelUp,
		ChainUnavailable: true,
	})
	s.Require().NoError(err)
	s.Equal(engine.EvolutionDecisionUndecided, output.Decision)
}

func (s *EvolutionTestSuite) TestMalformedChains() {
	s.Run("cycle", func() {
		a := node("a", 1)
		b := node("b", 2, edge(a, pokemon.EvolutionDetail{Trigger: "level-up"}))
		a.EvolvesTo = []*pokemon.EvolutionEdge{edge(b, pokemon.EvolutionDetail{Trigger: "level-up"})}

		_, err := s.adapter.CheckEvolution(s.ctx, &engine.CheckEvolutionInput{
			Pokemon: &pokemon.Pokemon{Species: "missing", Level: 5},
			Event:   pokemon.TriggerEventLevelUp,
			Chain:   a,
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "cycle")
	})

	s.Run("too deep", func() {
		root := node("n0", 1)
		current := root
		for i := 1; i <= rpgtoolkit.MaxChainDepth+5; i++ {
			next := node(fmt.Sprintf("n%d", i), i+1)
			current.EvolvesTo = []*pokemon.EvolutionEdge{edge(next, pokemon.EvolutionDetail{Trigger: "level-up"})}
			current = next
		}

		_, err := s.adapter.CheckEvolution(s.ctx, &engine.CheckEvolutionInput{
			Pokemon: &pokemon.Pokemon{Species: current.SpeciesName, Level: 5},
			Event:   pokemon.TriggerEventLevelUp,
			Chain:   root,
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Equal(rpgtoolkit.MaxChainDepth+1, errors.GetMeta(err)["depth"])
	})

	s.Run("bad species url", func() {
		chain := &pokemon.EvolutionNode{
			SpeciesName: "base",
			EvolvesTo: []*pokemon.EvolutionEdge{{
				Node:    &pokemon.EvolutionNode{SpeciesName: "evolved", SpeciesURL: "not-a-url"},
				Details: []pokemon.EvolutionDetail{{Trigger: "level-up"}},
			}},
		}

		_, err := s.adapter.CheckEvolution(s.ctx, &engine.CheckEvolutionInput{
			Pokemon: &pokemon.Pokemon{Species: "base", Level: 5},
			Event:   pokemon.TriggerEventLevelUp,
			Chain:   chain,
		})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *EvolutionTestSuite) TestInputValidation() {
	testCases := []struct {
		name  string
		input *engine.CheckEvolutionInput
	}{
		{name: "nil input", input: nil},
		{name: "nil pokemon", input: &engine.CheckEvolutionInput{Event: pokemon.TriggerEventLevelUp}},
		{
			name:  "unknown event",
			input: &engine.CheckEvolutionInput{Pokemon: &pokemon.Pokemon{Species: "eevee"}, Event: "trade"},
		},
		{
			name:  "item use without item",
			input: &engine.CheckEvolutionInput{Pokemon: &pokemon.Pokemon{Species: "eevee"}, Event: pokemon.TriggerEventItemUse},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.adapter.CheckEvolution(s.ctx, tc.input)
			s.Nil(output)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

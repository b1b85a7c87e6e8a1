package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/engine"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
)

type TypeChartTestSuite struct {
	suite.Suite
	chart *engine.TypeChart
}

func TestTypeChartSuite(t *testing.T) {
	suite.Run(t, new(TypeChartTestSuite))
}

func (s *TypeChartTestSuite) SetupTest() {
	s.chart = engine.DefaultTypeChart()
}

func (s *TypeChartTestSuite) TestEffectiveness() {
	testCases := []struct {
		name      string
		attack    pokemon.Type
		defenders []pokemon.Type
		expected  float64
	}{
		{
			name:      "water against fire/ground is quadruple",
			attack:    pokemon.TypeWater,
			defenders: []pokemon.Type{pokemon.TypeFire, pokemon.TypeGround},
			expected:  4,
		},
		{
			name:      "super and resisted cancel out",
			attack:    pokemon.TypeFire,
			defenders: []pokemon.Type{pokemon.TypeGrass, pokemon.TypeWater},
			expected:  1,
		},
		{
			name:      "ground against flying is immune",
			attack:    pokemon.TypeGround,
			defenders: []pokemon.Type{pokemon.TypeFire, pokemon.TypeFlying},
			expected:  0,
		},
		{
			name:      "absent pair defaults to neutral",
			attack:    pokemon.TypeNormal,
			defenders: []pokemon.Type{pokemon.TypeWater},
			expected:  1,
		},
		{
			name:      "double resist",
			attack:    pokemon.TypeGrass,
			defenders: []pokemon.Type{pokemon.TypeFire, pokemon.TypeFlying},
			expected:  0.25,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, s.chart.Effectiveness(tc.attack, tc.defenders))
		})
	}
}

func (s *TypeChartTestSuite) TestEffectivenessIsPairwiseProduct() {
	for _, attack := range pokemon.AllTypes() {
		for _, first := range pokemon.AllTypes() {
			for _, second := range pokemon.AllTypes() {
				expected := s.chart.Multiplier(attack, first) * s.chart.Multiplier(attack, second)
				got := s.chart.Effectiveness(attack, []pokemon.Type{first, second})
				s.Equal(expected, got, "%s vs %s/%s", attack, first, second)
				s.GreaterOrEqual(got, 0.0)
			}
		}
	}
}

func (s *TypeChartTestSuite) TestSTAB() {
	s.Equal(1.5, engine.STAB(pokemon.TypeFire, []pokemon.Type{pokemon.TypeFire, pokemon.TypeFlying}))
	s.Equal(1.0, engine.STAB(pokemon.TypeWater, []pokemon.Type{pokemon.TypeFire}))
}

func (s *TypeChartTestSuite) TestClassify() {
	s.Equal(engine.ClassificationNoEffect, engine.Classify(0))
	s.Equal(engine.ClassificationNotVeryEffective, engine.Classify(0.25))
	s.Equal(engine.ClassificationNotVeryEffective, engine.Classify(0.5))
	s.Equal(engine.ClassificationNone, engine.Classify(1))
	s.Equal(engine.ClassificationSuperEffective, engine.Classify(2))
	s.Equal(engine.ClassificationSuperEffective, engine.Classify(4))
	s.Equal("It's super effective!", engine.Classify(4).Describe())
	s.Empty(engine.Classify(1).Describe())
}

func (s *TypeChartTestSuite) TestOverrides() {
	s.Run("applies valid overrides", func() {
		chart, err := engine.NewTypeChart([]engine.TypeOverride{
			{Attack: "normal", Defend: "ghost", Multiplier: 1},
			{Attack: "Dragon", Defend: "water", Multiplier: 2},
		})
		s.Require().NoError(err)
		s.Equal(1.0, chart.Multiplier(pokemon.TypeNormal, pokemon.TypeGhost))
		s.Equal(2.0, chart.Multiplier(pokemon.TypeDragon, pokemon.TypeWater))
		// default chart untouched
		s.Equal(0.0, s.chart.Multiplier(pokemon.TypeNormal, pokemon.TypeGhost))
	})

	s.Run("rejects unknown types and multipliers", func() {
		_, err := engine.NewTypeChart([]engine.TypeOverride{
			{Attack: "shadow", Defend: "water", Multiplier: 2},
			{Attack: "fire", Defend: "water", Multiplier: 3},
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *TypeChartTestSuite) TestMatchupsSorted() {
	matchups := s.chart.Matchups()
	s.Require().NotEmpty(matchups)
	s.Equal(pokemon.TypeBug, matchups[0].Attack)
	for _, m := range matchups {
		s.NotEqual(1.0, m.Multiplier)
	}
}

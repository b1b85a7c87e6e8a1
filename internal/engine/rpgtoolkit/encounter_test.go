package rpgtoolkit_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/engine"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/engine/rpgtoolkit"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/testutils"
)

type EncounterTestSuite struct {
	suite.Suite
	ctx     context.Context
	adapter *rpgtoolkit.Adapter
	route1  []pokemon.EncounterEntry
}

func TestEncounterSuite(t *testing.T) {
	suite.Run(t, new(EncounterTestSuite))
}

func (s *EncounterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.adapter = newTestAdapter(&s.Suite, &rpgtoolkit.AdapterConfig{DiceRoller: testutils.MaxRoller{}})
	s.route1 = []pokemon.EncounterEntry{
		{Species: "pidgey", Chance: 80, MinLevel: 2, MaxLevel: 4},
		{Species: "rattata", Chance: 20, MinLevel: 3, MaxLevel: 5},
	}
}

func (s *EncounterTestSuite) selectWith(roller dice.Roller, table []pokemon.EncounterEntry, reference int32) *engine.SelectWildEncounterOutput {
	output, err := s.adapter.SelectWildEncounter(s.ctx, &engine.SelectWildEncounterInput{
		Table:          table,
		ReferenceLevel: reference,
		Roller:         roller,
	})
	s.Require().NoError(err)
	return output
}

func (s *EncounterTestSuite) TestMaxAndMinDraws() {
	for i := 0; i < 10; i++ {
		high := s.selectWith(testutils.MaxRoller{}, s.route1, 10)
		s.Equal("rattata", high.Species)
		s.Equal(int32(5), high.Level)
		s.Equal(1, high.EntryIndex)
		s.False(high.Fallback)

		low := s.selectWith(&testutils.FixedRoller{Value: 1}, s.route1, 10)
		s.Equal("pidgey", low.Species)
		s.Equal(int32(2), low.Level)
		s.Equal(0, low.EntryIndex)
		s.False(low.Fallback)
	}
}

func (s *EncounterTestSuite) TestCumulativeBoundaries() {
	for draw := 1; draw <= 100; draw++ {
		output := s.selectWith(&testutils.SequenceRoller{Values: []int{draw, 1}}, s.route1, 10)
		if draw <= 80 {
			s.Equal("pidgey", output.Species, "draw %d", draw)
		} else {
			s.Equal("rattata", output.Species, "draw %d", draw)
		}
	}
}

func (s *EncounterTestSuite) TestLevelRollStaysInBounds() {
	for roll := 1; roll <= 3; roll++ {
		output := s.selectWith(&testutils.SequenceRoller{Values: []int{1, roll}}, s.route1, 10)
		s.Equal("pidgey", output.Species)
		s.Equal(int32(1+roll), output.Level)
	}
}

func (s *EncounterTestSuite) TestZeroWeightEntriesNeverPicked() {
	table := []pokemon.EncounterEntry{
		{Species: "mew", Chance: 0, MinLevel: 5, MaxLevel: 5},
		{Species: "caterpie", Chance: 5, MinLevel: 3, MaxLevel: 3},
	}
	output := s.selectWith(&testutils.FixedRoller{Value: 1}, table, 5)
	s.Equal("caterpie", output.Species)
	s.Equal(1, output.EntryIndex)
	s.Equal(int32(3), output.Level)
}

func (s *EncounterTestSuite) TestDefaultLevelWindow() {
	table := []pokemon.EncounterEntry{{Species: "zubat", Chance: 10}}

	low := s.selectWith(&testutils.FixedRoller{Value: 1}, table, 3)
	s.Equal(int32(1), low.Level)

	high := s.selectWith(testutils.MaxRoller{}, table, 3)
	s.Equal(int32(8), high.Level)

	top := s.selectWith(testutils.MaxRoller{}, table, 99)
	s.Equal(int32(100), top.Level)

	mid := s.selectWith(&testutils.FixedRoller{Value: 1}, table, 40)
	s.Equal(int32(35), mid.Level)
}

func (s *EncounterTestSuite) TestInvertedBoundsCollapse() {
	table := []pokemon.EncounterEntry{{Species: "geodude", Chance: 10, MinLevel: 10, MaxLevel: 5}}
	output := s.selectWith(testutils.MaxRoller{}, table, 1)
	s.Equal(int32(10), output.Level)
}

func (s *EncounterTestSuite) TestFallback() {
	testCases := []struct {
		name      string
		table     []pokemon.EncounterEntry
		reference int32
		level     int32
	}{
		{name: "empty table", table: nil, reference: 12, level: 12},
		{name: "all weights zero", table: []pokemon.EncounterEntry{{Species: "mew", Chance: 0}}, reference: 7, level: 7},
		{name: "reference below range", table: nil, reference: -3, level: 1},
		{name: "reference above range", table: nil, reference: 150, level: 100},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output := s.selectWith(&testutils.ErrorRoller{Err: fmt.Errorf("must not roll")}, tc.table, tc.reference)
			s.True(output.Fallback)
			s.Equal(rpgtoolkit.DefaultWildSpecies, output.Species)
			s.Equal(tc.level, output.Level)
			s.Equal(-1, output.EntryIndex)
		})
	}
}

func (s *EncounterTestSuite) TestConfiguredFallbackSpecies() {
	adapter := newTestAdapter(&s.Suite, &rpgtoolkit.AdapterConfig{
		DiceRoller:         testutils.MaxRoller{},
		DefaultWildSpecies: "zubat",
	})

	output, err := adapter.SelectWildEncounter(s.ctx, &engine.SelectWildEncounterInput{
		Table:            s.route1,
		ReferenceLevel:   30,
		TableUnavailable: true,
	})
	s.Require().NoError(err)
	s.True(output.Fallback)
	s.Equal("zubat", output.Species)
	s.Equal(int32(30), output.Level)
}

func (s *EncounterTestSuite) TestValidation() {
	testCases := []struct {
		name  string
		table []pokemon.EncounterEntry
	}{
		{name: "negative chance", table: []pokemon.EncounterEntry{{Species: "pidgey", Chance: -1}}},
		{name: "missing species", table: []pokemon.EncounterEntry{{Chance: 10}}},
		{name: "negative level", table: []pokemon.EncounterEntry{{Species: "pidgey", Chance: 10, MinLevel: -2}}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.adapter.SelectWildEncounter(s.ctx, &engine.SelectWildEncounterInput{Table: tc.table, ReferenceLevel: 5})
			s.True(errors.IsInvalidArgument(err))
		})
	}

	s.Run("nil input", func() {
		_, err := s.adapter.SelectWildEncounter(s.ctx, nil)
		s.True(errors.IsInvalidArgument(err))
	})
}

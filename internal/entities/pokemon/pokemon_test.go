package pokemon_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
)

type PokemonTestSuite struct {
	suite.Suite
}

func TestPokemonSuite(t *testing.T) {
	suite.Run(t, new(PokemonTestSuite))
}

func (s *PokemonTestSuite) TestSpeciesIDFromURL() {
	testCases := []struct {
		name    string
		url     string
		want    int32
		wantErr bool
	}{
		{name: "trailing slash", url: "https://pokeapi.co/api/v2/pokemon-species/196/", want: 196},
		{name: "no trailing slash", url: "https://pokeapi.co/api/v2/pokemon-species/25", want: 25},
		{name: "not numeric", url: "https://pokeapi.co/api/v2/pokemon-species/espeon/", wantErr: true},
		{name: "empty", url: "", wantErr: true},
		{name: "zero", url: "https://pokeapi.co/api/v2/pokemon-species/0/", wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := pokemon.SpeciesIDFromURL(tc.url)
			if tc.wantErr {
				s.Error(err)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.want, got)
		})
	}
}

func (s *PokemonTestSuite) TestGenderFromCode() {
	s.Equal(pokemon.GenderFemale, pokemon.GenderFromCode(1))
	s.Equal(pokemon.GenderMale, pokemon.GenderFromCode(2))
	s.Equal(pokemon.GenderGenderless, pokemon.GenderFromCode(3))
	s.Equal(pokemon.GenderUnknown, pokemon.GenderFromCode(9))
}

func (s *PokemonTestSuite) TestParseType() {
	t, ok := pokemon.ParseType(" Water ")
	s.True(ok)
	s.Equal(pokemon.TypeWater, t)

	_, ok = pokemon.ParseType("shadow")
	s.False(ok)

	s.Len(pokemon.AllTypes(), 18)
}

func (s *PokemonTestSuite) TestDisplayName() {
	s.Equal("Mr Mime", pokemon.DisplayName("mr-mime"))
	s.Equal("Thunder Punch", pokemon.DisplayName("thunder-punch"))
}

func (s *PokemonTestSuite) TestKnowsMove() {
	p := &pokemon.Pokemon{Moves: [pokemon.MaxMoveSlots]string{"tackle", "", "growl"}}
	s.True(p.KnowsMove("growl"))
	s.False(p.KnowsMove("ember"))
	s.False(p.KnowsMove(""))
}

func (s *PokemonTestSuite) TestClampLevel() {
	s.Equal(int32(1), pokemon.ClampLevel(-4))
	s.Equal(int32(100), pokemon.ClampLevel(105))
	s.Equal(int32(42), pokemon.ClampLevel(42))
}

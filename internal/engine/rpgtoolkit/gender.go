package rpgtoolkit

import (
	"context"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/engine"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
)

const genderRollSize = 8

// RollGender picks a gender from the species gender rate: a d8 at or below
// the rate is female
func (a *Adapter) RollGender(
	_ context.Context,
	input *engine.RollGenderInput,
) (*engine.RollGenderOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("gender_rate", int(input.GenderRate),
		int(pokemon.GenderRateGenderless), int(pokemon.GenderRateFemaleOnly), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if input.GenderRate == pokemon.GenderRateGenderless {
		return &engine.RollGenderOutput{Gender: pokemon.GenderGenderless}, nil
	}

	n, err := roll(a.roller(input.Roller), genderRollSize)
	if err != nil {
		return nil, err
	}
	if int32(n) <= input.GenderRate {
		return &engine.RollGenderOutput{Gender: pokemon.GenderFemale}, nil
	}
	return &engine.RollGenderOutput{Gender: pokemon.GenderMale}, nil
}

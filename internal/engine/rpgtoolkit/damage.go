package rpgtoolkit

import (
	"context"
	"math"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/engine"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
)

// A d16 over 84 gives the 0.85..1.00 per-hit factor in steps of 0.01
const (
	damageRollSize = 16
	damageRollBase = 84
)

// CalculateDamage applies the classic damage formula with type
// effectiveness, STAB and a random factor
func (a *Adapter) CalculateDamage(
	_ context.Context,
	input *engine.CalculateDamageInput,
) (*engine.CalculateDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateDamageInput(input); err != nil {
		return nil, err
	}

	if input.Move.Power == 0 {
		return &engine.CalculateDamageOutput{
			Effectiveness:  1,
			Classification: engine.ClassificationNone,
		}, nil
	}

	effectiveness := a.typeChart.Effectiveness(input.Move.Type, input.Defender.Types)
	stab := engine.STAB(input.Move.Type, input.Attacker.Types)
	output := &engine.CalculateDamageOutput{
		Effectiveness:  effectiveness,
		Classification: engine.Classify(effectiveness),
		STAB:           stab != 1,
	}

	level := float64(input.Attacker.Level)
	power := float64(input.Move.Power)
	attack := float64(input.Attacker.Attack)
	defense := float64(input.Defender.Defense)
	base := math.Floor(((2*level/5+2)*power*attack/defense)/50) + 2
	output.BaseDamage = int32(base)

	if effectiveness == 0 {
		return output, nil
	}

	n, err := roll(a.roller(input.Roller), damageRollSize)
	if err != nil {
		return nil, err
	}
	output.RandomFactor = float64(damageRollBase+n) / 100

	damage := math.Floor(base * effectiveness * stab * output.RandomFactor)
	if damage < 1 {
		damage = 1
	}
	output.Damage = int32(damage)

	return output, nil
}

func validateDamageInput(input *engine.CalculateDamageInput) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("attacker.level", int(input.Attacker.Level), int(pokemon.MinLevel), int(pokemon.MaxLevel), vb)
	errors.ValidateMin("attacker.attack", int(input.Attacker.Attack), 1, vb)
	errors.ValidateMin("defender.defense", int(input.Defender.Defense), 1, vb)
	errors.ValidateMin("move.power", int(input.Move.Power), 0, vb)
	if !input.Move.Type.IsValid() {
		vb.Fieldf("move.type", "unknown type %q", input.Move.Type)
	}
	validateTypes("attacker.types", input.Attacker.Types, vb)
	validateTypes("defender.types", input.Defender.Types, vb)

	return vb.Build()
}

func validateTypes(field string, types []pokemon.Type, vb *errors.ValidationBuilder) {
	if len(types) < 1 || len(types) > 2 {
		vb.Fieldf(field, "must have 1 or 2 types, got %d", len(types))
	}
	for _, t := range types {
		if !t.IsValid() {
			vb.Fieldf(field, "unknown type %q", t)
		}
	}
}

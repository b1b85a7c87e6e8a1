package rpgtoolkit

import (
	"context"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/engine"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
)

// Capture bounds. The chance never reaches 0 or 1.
const (
	MinHPFactor      = 0.01
	MaxHPFactor      = 1.0
	MinCaptureChance = 0.01
	MaxCaptureChance = 0.95

	maxCaptureRate = 255
	// draws are (d10000 - 1) / 10000, uniform over [0, 0.9999]
	captureRollSize = 10000
)

// CaptureChance computes the clamped capture probability
func (a *Adapter) CaptureChance(
	_ context.Context,
	input *engine.CaptureChanceInput,
) (*engine.CaptureChanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCaptureInput(input); err != nil {
		return nil, err
	}

	return captureChance(input), nil
}

// AttemptCapture draws against the capture chance
func (a *Adapter) AttemptCapture(
	_ context.Context,
	input *engine.AttemptCaptureInput,
) (*engine.AttemptCaptureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCaptureInput(&input.CaptureChanceInput); err != nil {
		return nil, err
	}

	chance := captureChance(&input.CaptureChanceInput)

	n, err := roll(a.roller(input.Roller), captureRollSize)
	if err != nil {
		return nil, err
	}
	draw := float64(n-1) / captureRollSize

	return &engine.AttemptCaptureOutput{
		Chance:   chance.Chance,
		Draw:     draw,
		Captured: draw < chance.Chance,
	}, nil
}

func captureChance(input *engine.CaptureChanceInput) *engine.CaptureChanceOutput {
	maxHP := float64(input.MaxHP)
	currentHP := float64(input.CurrentHP)

	hpFactor := clamp((3*maxHP-2*currentHP)/(3*maxHP), MinHPFactor, MaxHPFactor)
	chance := float64(input.CaptureRate) / maxCaptureRate *
		input.ToolMultiplier * input.StatusMultiplier * hpFactor

	return &engine.CaptureChanceOutput{
		HPFactor: hpFactor,
		Chance:   clamp(chance, MinCaptureChance, MaxCaptureChance),
	}
}

func validateCaptureInput(input *engine.CaptureChanceInput) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("capture_rate", int(input.CaptureRate), 0, maxCaptureRate, vb)
	errors.ValidateMin("max_hp", int(input.MaxHP), 1, vb)
	if input.CurrentHP < 0 || input.CurrentHP > input.MaxHP {
		vb.Fieldf("current_hp", "must be between 0 and max_hp (%d)", input.MaxHP)
	}
	errors.ValidatePositive("tool_multiplier", input.ToolMultiplier, vb)
	errors.ValidatePositive("status_multiplier", input.StatusMultiplier, vb)

	return vb.Build()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

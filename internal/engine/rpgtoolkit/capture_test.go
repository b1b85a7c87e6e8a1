package rpgtoolkit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/engine"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/engine/rpgtoolkit"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/testutils"
)

type CaptureTestSuite struct {
	suite.Suite
	ctx     context.Context
	adapter *rpgtoolkit.Adapter
}

func TestCaptureSuite(t *testing.T) {
	suite.Run(t, new(CaptureTestSuite))
}

func (s *CaptureTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.adapter = newTestAdapter(&s.Suite, &rpgtoolkit.AdapterConfig{DiceRoller: testutils.MaxRoller{}})
}

func (s *CaptureTestSuite) TestCaptureChance() {
	testCases := []struct {
		name     string
		input    engine.CaptureChanceInput
		hpFactor float64
		chance   float64
	}{
		{
			name:     "full hp poke ball",
			input:    engine.CaptureChanceInput{CaptureRate: 45, MaxHP: 100, CurrentHP: 100, ToolMultiplier: 1, StatusMultiplier: 1},
			hpFactor: 1.0 / 3.0,
			chance:   45.0 / 255.0 / 3.0,
		},
		{
			name:     "one hp left",
			input:    engine.CaptureChanceInput{CaptureRate: 45, MaxHP: 100, CurrentHP: 1, ToolMultiplier: 1, StatusMultiplier: 1},
			hpFactor: 298.0 / 300.0,
			chance:   45.0 / 255.0 * 298.0 / 300.0,
		},
		{
			name:     "clamped to the top",
			input:    engine.CaptureChanceInput{CaptureRate: 255, MaxHP: 100, CurrentHP: 50, ToolMultiplier: 255, StatusMultiplier: 2.5},
			hpFactor: 200.0 / 300.0,
			chance:   rpgtoolkit.MaxCaptureChance,
		},
		{
			name:     "clamped to the bottom",
			input:    engine.CaptureChanceInput{CaptureRate: 3, MaxHP: 100, CurrentHP: 100, ToolMultiplier: 1, StatusMultiplier: 1},
			hpFactor: 1.0 / 3.0,
			chance:   rpgtoolkit.MinCaptureChance,
		},
		{
			name:     "zero capture rate still possible",
			input:    engine.CaptureChanceInput{CaptureRate: 0, MaxHP: 10, CurrentHP: 0, ToolMultiplier: 2, StatusMultiplier: 2.5},
			hpFactor: 1,
			chance:   rpgtoolkit.MinCaptureChance,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.adapter.CaptureChance(s.ctx, &tc.input)
			s.Require().NoError(err)
			s.InDelta(tc.hpFactor, output.HPFactor, 1e-9)
			s.InDelta(tc.chance, output.Chance, 1e-9)
		})
	}
}

func (s *CaptureTestSuite) TestChanceAlwaysBounded() {
	for rate := int32(0); rate <= 255; rate += 15 {
		for _, current := range []int32{0, 1, 25, 50, 99, 100} {
			for _, tool := range []float64{0.1, 1, 1.5, 2, 255} {
				for _, status := range []float64{1, 1.5, 2.5} {
					output, err := s.adapter.CaptureChance(s.ctx, &engine.CaptureChanceInput{
						CaptureRate: rate, MaxHP: 100, CurrentHP: current,
						ToolMultiplier: tool, StatusMultiplier: status,
					})
					s.Require().NoError(err)
					s.GreaterOrEqual(output.Chance, rpgtoolkit.MinCaptureChance)
					s.LessOrEqual(output.Chance, rpgtoolkit.MaxCaptureChance)
				}
			}
		}
	}
}

func (s *CaptureTestSuite) TestChanceRisesAsHPFalls() {
	previous := 0.0
	for current := int32(100); current >= 0; current-- {
		output, err := s.adapter.CaptureChance(s.ctx, &engine.CaptureChanceInput{
			CaptureRate: 45, MaxHP: 100, CurrentHP: current, ToolMultiplier: 1, StatusMultiplier: 1,
		})
		s.Require().NoError(err)
		s.Greater(output.Chance, previous, "current hp %d", current)
		previous = output.Chance
	}
}

func (s *CaptureTestSuite) TestAttemptCapture() {
	// half health gives a 2/3 hp factor, so the chance is roughly 0.314
	base := engine.CaptureChanceInput{CaptureRate: 120, MaxHP: 90, CurrentHP: 45, ToolMultiplier: 1, StatusMultiplier: 1}

	testCases := []struct {
		name     string
		roll     int
		captured bool
		draw     float64
	}{
		{name: "lowest draw always captures", roll: 1, captured: true, draw: 0},
		{name: "draw below chance", roll: 3000, captured: true, draw: 0.2999},
		{name: "draw above chance", roll: 3200, captured: false, draw: 0.3199},
		{name: "highest draw never captures", roll: 10000, captured: false, draw: 0.9999},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.adapter.AttemptCapture(s.ctx, &engine.AttemptCaptureInput{
				CaptureChanceInput: base,
				Roller:             &testutils.FixedRoller{Value: tc.roll},
			})
			s.Require().NoError(err)
			s.InDelta(120.0/255.0*2.0/3.0, output.Chance, 1e-9)
			s.InDelta(tc.draw, output.Draw, 1e-9)
			s.Equal(tc.captured, output.Captured)
		})
	}
}

func (s *CaptureTestSuite) TestValidation() {
	testCases := []struct {
		name  string
		input engine.CaptureChanceInput
		field string
	}{
		{
			name:  "capture rate too high",
			input: engine.CaptureChanceInput{CaptureRate: 256, MaxHP: 10, CurrentHP: 10, ToolMultiplier: 1, StatusMultiplier: 1},
			field: "capture_rate",
		},
		{
			name:  "zero max hp",
			input: engine.CaptureChanceInput{CaptureRate: 45, MaxHP: 0, CurrentHP: 0, ToolMultiplier: 1, StatusMultiplier: 1},
			field: "max_hp",
		},
		{
			name:  "current above max",
			input: engine.CaptureChanceInput{CaptureRate: 45, MaxHP: 10, CurrentHP: 11, ToolMultiplier: 1, StatusMultiplier: 1},
			field: "current_hp",
		},
		{
			name:  "zero tool multiplier",
			input: engine.CaptureChanceInput{CaptureRate: 45, MaxHP: 10, CurrentHP: 5, ToolMultiplier: 0, StatusMultiplier: 1},
			field: "tool_multiplier",
		},
		{
			name:  "negative status multiplier",
			input: engine.CaptureChanceInput{CaptureRate: 45, MaxHP: 10, CurrentHP: 5, ToolMultiplier: 1, StatusMultiplier: -1},
			field: "status_multiplier",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.adapter.CaptureChance(s.ctx, &tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(errors.GetMeta(err)["validation_errors"], tc.field)

			_, err = s.adapter.AttemptCapture(s.ctx, &engine.AttemptCaptureInput{CaptureChanceInput: tc.input})
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

package adventure

import (
	"sort"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
)

// Ball is a capture tool
type Ball string

// Balls
const (
	BallPoke   Ball = "poke-ball"
	BallGreat  Ball = "great-ball"
	BallUltra  Ball = "ultra-ball"
	BallMaster Ball = "master-ball"
)

var ballMultipliers = map[Ball]float64{
	BallPoke:   1,
	BallGreat:  1.5,
	BallUltra:  2,
	BallMaster: 255,
}

// Multiplier returns the capture multiplier for the ball
func (b Ball) Multiplier() (float64, error) {
	if b == "" {
		b = BallPoke
	}
	m, ok := ballMultipliers[b]
	if !ok {
		return 0, errors.InvalidArgumentf("unknown ball %q", b).WithMeta("allowed", Balls())
	}
	return m, nil
}

// Balls lists the known balls in name order
func Balls() []string {
	out := make([]string, 0, len(ballMultipliers))
	for b := range ballMultipliers {
		out = append(out, string(b))
	}
	sort.Strings(out)
	return out
}

// Status is a non-volatile status condition on the target
type Status string

// Statuses
const (
	StatusNone      Status = "none"
	StatusSleep     Status = "sleep"
	StatusFreeze    Status = "freeze"
	StatusParalysis Status = "paralysis"
	StatusPoison    Status = "poison"
	StatusBurn      Status = "burn"
)

var statusMultipliers = map[Status]float64{
	StatusNone:      1,
	StatusSleep:     2.5,
	StatusFreeze:    2.5,
	StatusParalysis: 1.5,
	StatusPoison:    1.5,
	StatusBurn:      1.5,
}

// Multiplier returns the capture multiplier for the status
func (s Status) Multiplier() (float64, error) {
	if s == "" {
		s = StatusNone
	}
	m, ok := statusMultipliers[s]
	if !ok {
		return 0, errors.InvalidArgumentf("unknown status %q", s)
	}
	return m, nil
}

// Domain events published on the bus
const (
	EventPokemonSpawned  = "pokemon.spawned"
	EventPokemonCaptured = "pokemon.captured"
	EventPokemonEvolved  = "pokemon.evolved"
	EventPokemonReleased = "pokemon.released"
)

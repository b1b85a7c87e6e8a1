package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// FixedRoller always rolls Value, capped to the die size
type FixedRoller struct {
	Value int
}

// Roll returns Value clamped into 1..size
func (r *FixedRoller) Roll(size int) (int, error) {
	if size < 1 {
		return 0, fmt.Errorf("invalid die size %d", size)
	}
	switch {
	case r.Value < 1:
		return 1, nil
	case r.Value > size:
		return size, nil
	}
	return r.Value, nil
}

// RollN rolls count dice
func (r *FixedRoller) RollN(count, size int) ([]int, error) {
	return rollN(r, count, size)
}

// MaxRoller always rolls the highest face
type MaxRoller struct{}

// Roll returns size
func (MaxRoller) Roll(size int) (int, error) {
	if size < 1 {
		return 0, fmt.Errorf("invalid die size %d", size)
	}
	return size, nil
}

// RollN rolls count dice
func (r MaxRoller) RollN(count, size int) ([]int, error) {
	return rollN(r, count, size)
}

// SequenceRoller returns Values in order and cycles. Each value is clamped
// into 1..size.
type SequenceRoller struct {
	Values []int

	mu   sync.Mutex
	next int
}

// Roll returns the next value in the sequence
func (r *SequenceRoller) Roll(size int) (int, error) {
	if size < 1 {
		return 0, fmt.Errorf("invalid die size %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.Values) == 0 {
		return 0, fmt.Errorf("sequence roller has no values")
	}
	v := r.Values[r.next%len(r.Values)]
	r.next++

	return (&FixedRoller{Value: v}).Roll(size)
}

// RollN rolls count dice
func (r *SequenceRoller) RollN(count, size int) ([]int, error) {
	return rollN(r, count, size)
}

// ErrorRoller fails every roll with Err
type ErrorRoller struct {
	Err error
}

// Roll returns Err
func (r *ErrorRoller) Roll(_ int) (int, error) {
	return 0, r.Err
}

// RollN returns Err
func (r *ErrorRoller) RollN(_, _ int) ([]int, error) {
	return nil, r.Err
}

func rollN(r dice.Roller, count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

var (
	_ dice.Roller = (*FixedRoller)(nil)
	_ dice.Roller = MaxRoller{}
	_ dice.Roller = (*SequenceRoller)(nil)
	_ dice.Roller = (*ErrorRoller)(nil)
)

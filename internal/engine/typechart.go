package engine

import (
	"sort"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
)

// Classification is the display band of an effectiveness multiplier
type Classification string

// Classifications. Neutral (exactly 1) has no description.
const (
	ClassificationNone             Classification = ""
	ClassificationNoEffect         Classification = "no_effect"
	ClassificationSuperEffective   Classification = "super_effective"
	ClassificationNotVeryEffective Classification = "not_very_effective"
)

// STABMultiplier is applied when the move type matches an attacker type
const STABMultiplier = 1.5

// Multipliers allowed in a type chart
var allowedMultipliers = []float64{0, 0.5, 1, 2}

// defaultChart stores only the entries that differ from 1
var defaultChart = map[pokemon.Type]map[pokemon.Type]float64{
	pokemon.TypeNormal: {
		pokemon.TypeRock: 0.5, pokemon.TypeGhost: 0, pokemon.TypeSteel: 0.5,
	},
	pokemon.TypeFire: {
		pokemon.TypeFire: 0.5, pokemon.TypeWater: 0.5, pokemon.TypeGrass: 2, pokemon.TypeIce: 2,
		pokemon.TypeBug: 2, pokemon.TypeRock: 0.5, pokemon.TypeDragon: 0.5, pokemon.TypeSteel: 2,
	},
	pokemon.TypeWater: {
		pokemon.TypeFire: 2, pokemon.TypeWater: 0.5, pokemon.TypeGrass: 0.5, pokemon.TypeGround: 2,
		pokemon.TypeRock: 2, pokemon.TypeDragon: 0.5,
	},
	pokemon.TypeElectric: {
		pokemon.TypeWater: 2, pokemon.TypeElectric: 0.5, pokemon.TypeGrass: 0.5, pokemon.TypeGround: 0,
		pokemon.TypeFlying: 2, pokemon.TypeDragon: 0.5,
	},
	pokemon.TypeGrass: {
		pokemon.TypeFire: 0.5, pokemon.TypeWater: 2, pokemon.TypeGrass: 0.5, pokemon.TypePoison: 0.5,
		pokemon.TypeGround: 2, pokemon.TypeFlying: 0.5, pokemon.TypeBug: 0.5, pokemon.TypeRock: 2,
		pokemon.TypeDragon: 0.5, pokemon.TypeSteel: 0.5,
	},
	pokemon.TypeIce: {
		pokemon.TypeFire: 0.5, pokemon.TypeWater: 0.5, pokemon.TypeGrass: 2, pokemon.TypeIce: 0.5,
		pokemon.TypeGround: 2, pokemon.TypeFlying: 2, pokemon.TypeDragon: 2, pokemon.TypeSteel: 0.5,
	},
	pokemon.TypeFighting: {
		pokemon.TypeNormal: 2, pokemon.TypeIce: 2, pokemon.TypePoison: 0.5, pokemon.TypeFlying: 0.5,
		pokemon.TypePsychic: 0.5, pokemon.TypeBug: 0.5, pokemon.TypeRock: 2, pokemon.TypeGhost: 0,
		pokemon.TypeDark: 2, pokemon.TypeSteel: 2, pokemon.TypeFairy: 0.5,
	},
	pokemon.TypePoison: {
		pokemon.TypeGrass: 2, pokemon.TypePoison: 0.5, pokemon.TypeGround: 0.5, pokemon.TypeRock: 0.5,
		pokemon.TypeGhost: 0.5, pokemon.TypeSteel: 0, pokemon.TypeFairy: 2,
	},
	pokemon.TypeGround: {
		pokemon.TypeFire: 2, pokemon.TypeElectric: 2, pokemon.TypeGrass: 0.5, pokemon.TypePoison: 2,
		pokemon.TypeFlying: 0, pokemon.TypeBug: 0.5, pokemon.TypeRock: 2, pokemon.TypeSteel: 2,
	},
	pokemon.TypeFlying: {
		pokemon.TypeElectric: 0.5, pokemon.TypeGrass: 2, pokemon.TypeFighting: 2, pokemon.TypeBug: 2,
		pokemon.TypeRock: 0.5, pokemon.TypeSteel: 0.5,
	},
	pokemon.TypePsychic: {
		pokemon.TypeFighting: 2, pokemon.TypePoison: 2, pokemon.TypePsychic: 0.5, pokemon.TypeDark: 0,
		pokemon.TypeSteel: 0.5,
	},
	pokemon.TypeBug: {
		pokemon.TypeFire: 0.5, pokemon.TypeGrass: 2, pokemon.TypeFighting: 0.5, pokemon.TypePoison: 0.5,
		pokemon.TypeFlying: 0.5, pokemon.TypePsychic: 2, pokemon.TypeGhost: 0.5, pokemon.TypeDark: 2,
		pokemon.TypeSteel: 0.5, pokemon.TypeFairy: 0.5,
	},
	pokemon.TypeRock: {
		pokemon.TypeFire: 2, pokemon.TypeIce: 2, pokemon.TypeFighting: 0.5, pokemon.TypeGround: 0.5,
		pokemon.TypeFlying: 2, pokemon.TypeBug: 2, pokemon.TypeSteel: 0.5,
	},
	pokemon.TypeGhost: {
		pokemon.TypeNormal: 0, pokemon.TypePsychic: 2, pokemon.TypeGhost: 2, pokemon.TypeDark: 0.5,
	},
	pokemon.TypeDragon: {
		pokemon.TypeDragon: 2, pokemon.TypeSteel: 0.5, pokemon.TypeFairy: 0,
	},
	pokemon.TypeDark: {
		pokemon.TypeFighting: 0.5, pokemon.TypePsychic: 2, pokemon.TypeGhost: 2, pokemon.TypeDark: 0.5,
		pokemon.TypeFairy: 0.5,
	},
	pokemon.TypeSteel: {
		pokemon.TypeFire: 0.5, pokemon.TypeWater: 0.5, pokemon.TypeElectric: 0.5, pokemon.TypeIce: 2,
		pokemon.TypeRock: 2, pokemon.TypeSteel: 0.5, pokemon.TypeFairy: 2,
	},
	pokemon.TypeFairy: {
		pokemon.TypeFire: 0.5, pokemon.TypeFighting: 2, pokemon.TypePoison: 0.5, pokemon.TypeDragon: 2,
		pokemon.TypeDark: 2, pokemon.TypeSteel: 0.5,
	},
}

// TypeOverride replaces a single chart entry
type TypeOverride struct {
	Attack     string  `yaml:"attack" json:"attack"`
	Defend     string  `yaml:"defend" json:"defend"`
	Multiplier float64 `yaml:"multiplier" json:"multiplier"`
}

// TypeMatchup is one non-neutral chart entry
type TypeMatchup struct {
	Attack     pokemon.Type `json:"attack"`
	Defend     pokemon.Type `json:"defend"`
	Multiplier float64      `json:"multiplier"`
}

// TypeChart is an immutable attack type × defend type multiplier table
type TypeChart struct {
	multipliers map[pokemon.Type]map[pokemon.Type]float64
}

// DefaultTypeChart returns the current-generation chart
func DefaultTypeChart() *TypeChart {
	chart, _ := NewTypeChart(nil)
	return chart
}

// NewTypeChart builds the default chart with overrides applied on top
func NewTypeChart(overrides []TypeOverride) (*TypeChart, error) {
	multipliers := make(map[pokemon.Type]map[pokemon.Type]float64, len(defaultChart))
	for attack, row := range defaultChart {
		copied := make(map[pokemon.Type]float64, len(row))
		for defend, m := range row {
			copied[defend] = m
		}
		multipliers[attack] = copied
	}

	vb := errors.NewValidationBuilder()
	for i, o := range overrides {
		attack, attackOK := pokemon.ParseType(o.Attack)
		defend, defendOK := pokemon.ParseType(o.Defend)
		if !attackOK {
			vb.Fieldf("type_chart_overrides", "entry %d: unknown attack type %q", i, o.Attack)
		}
		if !defendOK {
			vb.Fieldf("type_chart_overrides", "entry %d: unknown defend type %q", i, o.Defend)
		}
		if !isAllowedMultiplier(o.Multiplier) {
			vb.Fieldf("type_chart_overrides", "entry %d: multiplier %g not in {0, 0.5, 1, 2}", i, o.Multiplier)
		}
		if !attackOK || !defendOK || !isAllowedMultiplier(o.Multiplier) {
			continue
		}

		row, ok := multipliers[attack]
		if !ok {
			row = make(map[pokemon.Type]float64)
			multipliers[attack] = row
		}
		if o.Multiplier == 1 {
			delete(row, defend)
			continue
		}
		row[defend] = o.Multiplier
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &TypeChart{multipliers: multipliers}, nil
}

func isAllowedMultiplier(m float64) bool {
	for _, allowed := range allowedMultipliers {
		if m == allowed {
			return true
		}
	}
	return false
}

// Multiplier returns the single-pair multiplier, 1 when the pair is absent
func (c *TypeChart) Multiplier(attack, defend pokemon.Type) float64 {
	if m, ok := c.multipliers[attack][defend]; ok {
		return m
	}
	return 1
}

// Effectiveness multiplies the pairwise multipliers against every
// defending type. An immunity short-circuits to 0.
func (c *TypeChart) Effectiveness(attack pokemon.Type, defenders []pokemon.Type) float64 {
	total := 1.0
	for _, defend := range defenders {
		m := c.Multiplier(attack, defend)
		if m == 0 {
			return 0
		}
		total *= m
	}
	return total
}

// Matchups lists every non-neutral entry sorted by attack then defend type
func (c *TypeChart) Matchups() []TypeMatchup {
	var out []TypeMatchup
	for attack, row := range c.multipliers {
		for defend, m := range row {
			out = append(out, TypeMatchup{Attack: attack, Defend: defend, Multiplier: m})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Attack != out[j].Attack {
			return out[i].Attack < out[j].Attack
		}
		return out[i].Defend < out[j].Defend
	})
	return out
}

// STAB returns STABMultiplier if moveType is one of the attacker's types
func STAB(moveType pokemon.Type, attackerTypes []pokemon.Type) float64 {
	if pokemon.ContainsType(attackerTypes, moveType) {
		return STABMultiplier
	}
	return 1
}

// Classify bands an effectiveness multiplier for display
func Classify(multiplier float64) Classification {
	switch {
	case multiplier == 0:
		return ClassificationNoEffect
	case multiplier >= 2:
		return ClassificationSuperEffective
	case multiplier < 1:
		return ClassificationNotVeryEffective
	default:
		return ClassificationNone
	}
}

// Describe returns the advisory text for a classification
func (c Classification) Describe() string {
	switch c {
	case ClassificationNoEffect:
		return "It has no effect..."
	case ClassificationSuperEffective:
		return "It's super effective!"
	case ClassificationNotVeryEffective:
		return "It's not very effective..."
	default:
		return ""
	}
}

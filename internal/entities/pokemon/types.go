// Package pokemon holds the plain domain data shared by the rules engine,
// the data provider client and the persistence layer.
package pokemon

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Type is an elemental type, named the way the data provider names it
type Type string

// Canonical elemental types
const (
	TypeNormal   Type = "normal"
	TypeFire     Type = "fire"
	TypeWater    Type = "water"
	TypeElectric Type = "electric"
	TypeGrass    Type = "grass"
	TypeIce      Type = "ice"
	TypeFighting Type = "fighting"
	TypePoison   Type = "poison"
	TypeGround   Type = "ground"
	TypeFlying   Type = "flying"
	TypePsychic  Type = "psychic"
	TypeBug      Type = "bug"
	TypeRock     Type = "rock"
	TypeGhost    Type = "ghost"
	TypeDragon   Type = "dragon"
	TypeDark     Type = "dark"
	TypeSteel    Type = "steel"
	TypeFairy    Type = "fairy"
)

var allTypes = []Type{
	TypeNormal, TypeFire, TypeWater, TypeElectric, TypeGrass, TypeIce,
	TypeFighting, TypePoison, TypeGround, TypeFlying, TypePsychic, TypeBug,
	TypeRock, TypeGhost, TypeDragon, TypeDark, TypeSteel, TypeFairy,
}

// AllTypes returns the 18 canonical types in national dex order
func AllTypes() []Type {
	out := make([]Type, len(allTypes))
	copy(out, allTypes)
	return out
}

// IsValid reports whether t is one of the canonical types
func (t Type) IsValid() bool {
	for _, known := range allTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseType normalises s and reports whether it names a canonical type
func ParseType(s string) (Type, bool) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	return t, t.IsValid()
}

// ContainsType reports whether t is among types
func ContainsType(types []Type, t Type) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

// TypeNames converts types to their string names
func TypeNames(types []Type) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

// DisplayName turns a provider slug such as "mr-mime" or "thunder-punch"
// into "Mr Mime" / "Thunder Punch".
func DisplayName(slug string) string {
	words := strings.ReplaceAll(slug, "-", " ")
	return cases.Title(language.English).String(words)
}

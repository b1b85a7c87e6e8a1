package pokemon

import (
	"fmt"
	"strconv"
	"strings"
)

// EvolutionNode is a species in an evolution chain and the ways it can
// evolve further.
type EvolutionNode struct {
	SpeciesName string
	SpeciesURL  string
	EvolvesTo   []*EvolutionEdge
}

// EvolutionEdge links a node to one of its evolutions. Details are kept in
// provider order; any one of them is enough to evolve.
type EvolutionEdge struct {
	Node    *EvolutionNode
	Details []EvolutionDetail
}

// EvolutionDetail is one set of conditions for an evolution. Nil pointers and
// empty strings mean the condition is absent.
type EvolutionDetail struct {
	Trigger               string
	MinLevel              *int32
	MinHappiness          *int32
	Item                  string
	HeldItem              string
	TimeOfDay             string
	KnownMove             string
	PartyType             Type
	Gender                *int32
	RelativePhysicalStats *int32
	Location              string
	TurnUpsideDown        bool
	// Unsupported lists provider conditions the game does not model.
	// A detail with any of them can never be satisfied.
	Unsupported []string
}

// Int32 returns a pointer to v, for building optional conditions
func Int32(v int32) *int32 {
	return &v
}

// SpeciesIDFromURL extracts the numeric id from a species resource URL such
// as https://pokeapi.co/api/v2/pokemon-species/196/
func SpeciesIDFromURL(url string) (int32, error) {
	trimmed := strings.TrimRight(url, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 || idx == len(trimmed)-1 {
		return 0, fmt.Errorf("no id segment in %q", url)
	}

	id, err := strconv.ParseInt(trimmed[idx+1:], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id segment in %q: %w", url, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("non-positive id in %q", url)
	}
	return int32(id), nil
}

package pokeapi

import (
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
)

// maxParseDepth bounds recursion over provider chain documents
const maxParseDepth = 32

// parseChain converts the provider's nested chain document into the typed
// evolution tree
func parseChain(link *chainLink, depth int) (*pokemon.EvolutionNode, error) {
	if depth > maxParseDepth {
		return nil, errors.InvalidArgumentf("evolution chain deeper than %d", maxParseDepth).
			WithMeta("species", link.Species.Name)
	}
	if link.Species.Name == "" {
		return nil, errors.InvalidArgument("evolution chain link has no species")
	}

	node := &pokemon.EvolutionNode{
		SpeciesName: link.Species.Name,
		SpeciesURL:  link.Species.URL,
	}
	for i := range link.EvolvesTo {
		child := &link.EvolvesTo[i]
		childNode, err := parseChain(child, depth+1)
		if err != nil {
			return nil, err
		}

		details := make([]pokemon.EvolutionDetail, 0, len(child.EvolutionDetails))
		for j := range child.EvolutionDetails {
			details = append(details, convertDetail(&child.EvolutionDetails[j]))
		}
		node.EvolvesTo = append(node.EvolvesTo, &pokemon.EvolutionEdge{
			Node:    childNode,
			Details: details,
		})
	}

	return node, nil
}

func convertDetail(d *evolutionDetail) pokemon.EvolutionDetail {
	detail := pokemon.EvolutionDetail{
		Trigger:               name(d.Trigger),
		MinLevel:              d.MinLevel,
		MinHappiness:          d.MinHappiness,
		Item:                  name(d.Item),
		HeldItem:              name(d.HeldItem),
		TimeOfDay:             d.TimeOfDay,
		KnownMove:             name(d.KnownMove),
		PartyType:             pokemon.Type(name(d.PartyType)),
		Gender:                d.Gender,
		RelativePhysicalStats: d.RelativePhysicalStats,
		Location:              name(d.Location),
		TurnUpsideDown:        d.TurnUpsideDown,
	}

	if d.Gender != nil && pokemon.GenderFromCode(*d.Gender) == pokemon.GenderUnknown {
		detail.Unsupported = append(detail.Unsupported, "gender")
	}
	if d.KnownMoveType != nil {
		detail.Unsupported = append(detail.Unsupported, "known_move_type")
	}
	if d.PartySpecies != nil {
		detail.Unsupported = append(detail.Unsupported, "party_species")
	}
	if d.TradeSpecies != nil {
		detail.Unsupported = append(detail.Unsupported, "trade_species")
	}
	if d.MinBeauty != nil {
		detail.Unsupported = append(detail.Unsupported, "min_beauty")
	}
	if d.MinAffection != nil {
		detail.Unsupported = append(detail.Unsupported, "min_affection")
	}
	if d.NeedsOverworldRain {
		detail.Unsupported = append(detail.Unsupported, "needs_overworld_rain")
	}

	return detail
}

func name(r *namedResource) string {
	if r == nil {
		return ""
	}
	return r.Name
}

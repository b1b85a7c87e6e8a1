package pokemon

// Pokemon is a trainer-owned Pokémon as persisted by the repository
type Pokemon struct {
	ID        string
	TrainerID string
	Species   string
	SpeciesID int32
	Nickname  string
	Level     int32
	Happiness int32
	HeldItem  string
	// Moves are fixed slots; an empty string is an empty slot
	Moves     [MaxMoveSlots]string
	Gender    Gender
	Types     []Type
	MaxHP     int32
	CurrentHP int32
	Attack    int32
	Defense   int32
	Location  string
	CreatedAt int64
	UpdatedAt int64
}

// KnowsMove reports whether move occupies one of the move slots
func (p *Pokemon) KnowsMove(move string) bool {
	if move == "" {
		return false
	}
	for _, known := range p.Moves {
		if known == move {
			return true
		}
	}
	return false
}

// Name returns the nickname if set, otherwise the species display name
func (p *Pokemon) Name() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return DisplayName(p.Species)
}

// TriggerContext carries world facts gathered by the caller for an
// evolution check.
type TriggerContext struct {
	TimeOfDay  string
	PartyTypes []Type
	// Item is the consumed item for an item-use check
	Item string
	// Location overrides the Pokémon's stored location when set
	Location string
}

package pokemon

// Move is the battle-relevant part of a move. Power 0 marks a status move.
type Move struct {
	Name  string
	Power int32
	Type  Type
}

// Combatant holds the stats one side of a damage calculation needs
type Combatant struct {
	Level   int32
	Attack  int32
	Defense int32
	// Types is ordered by slot, 1 or 2 entries
	Types []Type
}

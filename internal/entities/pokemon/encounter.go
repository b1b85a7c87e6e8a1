package pokemon

// EncounterEntry is one row of a location's wild encounter table.
// A level bound of 0 means the table does not specify it.
type EncounterEntry struct {
	Species  string `json:"species"`
	Chance   int32  `json:"chance"`
	MinLevel int32  `json:"min_level,omitempty"`
	MaxLevel int32  `json:"max_level,omitempty"`
}

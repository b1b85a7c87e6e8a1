package pokemon

// TriggerEvent is the player action that prompts an evolution check
type TriggerEvent string

// Trigger events
const (
	TriggerEventLevelUp TriggerEvent = "level-up"
	TriggerEventItemUse TriggerEvent = "item-use"
)

// IsValid reports whether e is a known trigger event
func (e TriggerEvent) IsValid() bool {
	return e == TriggerEventLevelUp || e == TriggerEventItemUse
}

// Evolution detail trigger kinds as named by the data provider
const (
	DetailTriggerLevelUp = "level-up"
	DetailTriggerUseItem = "use-item"
	DetailTriggerTrade   = "trade"
)

// Reserved item names standing in for mechanics the game cannot reproduce
const (
	// ItemLinkingCord simulates a trade
	ItemLinkingCord = "linking-cord"
	// ItemUpsideDownMirror simulates holding the console upside down
	ItemUpsideDownMirror = "upside-down-mirror"
)

// Time of day values
const (
	TimeOfDayDay   = "day"
	TimeOfDayNight = "night"
	TimeOfDayDusk  = "dusk"
)

// Gender of an individual Pokémon
type Gender string

// Genders
const (
	GenderUnknown    Gender = ""
	GenderFemale     Gender = "female"
	GenderMale       Gender = "male"
	GenderGenderless Gender = "genderless"
)

// GenderFromCode maps the provider's numeric gender code
func GenderFromCode(code int32) Gender {
	switch code {
	case 1:
		return GenderFemale
	case 2:
		return GenderMale
	case 3:
		return GenderGenderless
	default:
		return GenderUnknown
	}
}

// Species gender rates are the female chance in eighths
const (
	GenderRateGenderless int32 = -1
	GenderRateMaleOnly   int32 = 0
	GenderRateFemaleOnly int32 = 8
)

// Relative physical stat comparisons
const (
	AttackGreaterThanDefense int32 = 1
	AttackEqualsDefense      int32 = 0
	AttackLessThanDefense    int32 = -1
)

// Level bounds
const (
	MinLevel int32 = 1
	MaxLevel int32 = 100
)

// MaxMoveSlots is the number of moves a Pokémon can know at once
const MaxMoveSlots = 4

// ClampLevel clamps level into [MinLevel, MaxLevel]
func ClampLevel(level int32) int32 {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

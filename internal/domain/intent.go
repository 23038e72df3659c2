package domain

// IntentType classifies what the user wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentRoll               // full reroll, locked slots stay
	IntentReroll             // reroll one slot, or every unlocked slot of a category
	IntentLock               // toggle a slot lock
	IntentLockCuisine        // toggle the profile lock
	IntentAdd
	IntentRemove
	IntentSelect  // manual pick from the full category list
	IntentOptions // show the candidate pool of a category
	IntentCuisine // switch cuisine profile
	IntentCuisines
	IntentChaos
	IntentRename
	IntentShow
	IntentStats
	IntentTips
	IntentHelp
	IntentQuit
)

var intentStrings = map[IntentType]string{
	IntentRoll:        "roll",
	IntentReroll:      "reroll",
	IntentLock:        "lock",
	IntentLockCuisine: "lock_cuisine",
	IntentAdd:         "add",
	IntentRemove:      "remove",
	IntentSelect:      "select",
	IntentOptions:     "options",
	IntentCuisine:     "cuisine",
	IntentCuisines:    "cuisines",
	IntentChaos:       "chaos",
	IntentRename:      "rename",
	IntentShow:        "show",
	IntentStats:       "stats",
	IntentTips:        "tips",
	IntentHelp:        "help",
	IntentQuit:        "quit",
}

// String returns a human-readable intent type.
func (i IntentType) String() string {
	if s, ok := intentStrings[i]; ok {
		return s
	}
	return "unknown"
}

// NoIndex marks an intent that does not target a specific slot.
const NoIndex = -1

// Intent represents a parsed user action.
type Intent struct {
	Type     IntentType
	Category Category // empty when the intent is not category-scoped
	Index    int      // 0-based slot index, NoIndex when absent
	Payload  string   // free text: ingredient query, cuisine, name, on/off
}

// IntentFromString converts a snake_case intent name to an IntentType.
// Returns IntentUnknown for unrecognized names.
func IntentFromString(name string) IntentType {
	for t, s := range intentStrings {
		if s == name {
			return t
		}
	}
	return IntentUnknown
}

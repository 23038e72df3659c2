package cli

import (
	"errors"
	"fmt"

	"github.com/hammamikhairi/casseroll/internal/domain"
)

// Every user-facing line of the interactive table lives here.

// ── Greeting / Global ────────────────────────────────────────────

func lineWelcome() string {
	return "Fresh out of the oven:"
}

func lineBye() string {
	return "Enjoy your casserole!"
}

func lineUnknown(input string) string {
	return fmt.Sprintf("Didn't catch %q. Type 'help' for commands.", input)
}

// ── Slots ────────────────────────────────────────────────────────

func lineRerolled(cat domain.Category, idx int, name string) string {
	return fmt.Sprintf("%s #%d is now %s.", cat.Label(), idx+1, name)
}

func lineLocked(cat domain.Category, idx int, name string) string {
	return fmt.Sprintf("🔒 Locked %s (%s #%d).", name, cat.Label(), idx+1)
}

func lineUnlocked(name string) string {
	return fmt.Sprintf("Unlocked %s.", name)
}

func lineAdded(cat domain.Category, name string) string {
	return fmt.Sprintf("Added %s to %s.", name, cat.Label())
}

func lineSelected(cat domain.Category, idx int, name string) string {
	return fmt.Sprintf("%s #%d set to %s.", cat.Label(), idx+1, name)
}

func lineEmptyCategory(label string) string {
	return fmt.Sprintf("The catalog has no %s at all.", label)
}

// ── Cuisine / Chaos ──────────────────────────────────────────────

func lineCuisineLocked(locked bool) string {
	if locked {
		return "🔒 Cuisine locked. Full rolls keep it."
	}
	return "Cuisine unlocked."
}

func lineCuisine(p domain.Profile) string {
	return fmt.Sprintf("%s %s it is.", p.Icon(), p.Label())
}

func lineChaos(on bool) string {
	if on {
		return "🎲 Chaos on. Anything goes from the next roll."
	}
	return "Chaos off. Cuisines matter again from the next roll."
}

func lineRenamed(name string) string {
	return fmt.Sprintf("Now serving: %s.", name)
}

// ── Refusals ─────────────────────────────────────────────────────

// lineRefusal explains a failed command. ok is false for errors that are
// not the user's doing.
func lineRefusal(err error) (line string, ok bool) {
	switch {
	case errors.Is(err, domain.ErrUnknownCategory):
		return "Unknown category. Try starch, protein, veg, binder or topper.", true
	case errors.Is(err, domain.ErrUnknownProfile):
		return "Unknown cuisine. Type 'cuisines' for the list.", true
	case errors.Is(err, domain.ErrSlotOutOfRange):
		return "There's no slot with that number.", true
	case errors.Is(err, domain.ErrSlotLocked):
		return "That's locked. Unlock it first, or roll the rest.", true
	case errors.Is(err, domain.ErrSingleSlot):
		return "That category only takes one ingredient.", true
	case errors.Is(err, domain.ErrSlotCap):
		return fmt.Sprintf("That category is full (max %d).", domain.MaxSlots), true
	case errors.Is(err, domain.ErrLastSlot):
		return "Every category needs at least one ingredient.", true
	case errors.Is(err, domain.ErrNotFound):
		return "No ingredient by that name or number. Try 'options <category>'.", true
	}
	return "Something went wrong: " + err.Error(), false
}

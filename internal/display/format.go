package display

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/casseroll/internal/domain"
	"github.com/hammamikhairi/casseroll/internal/selection"
)

// RecipeView is the machine-readable shape of a table's recipe.
type RecipeView struct {
	Name          string         `json:"name"`
	Profile       domain.Profile `json:"profile"`
	ProfileLabel  string         `json:"profile_label"`
	Chaos         bool           `json:"chaos"`
	ProfileLocked bool           `json:"profile_locked"`
	Rolls         int            `json:"rolls"`
	Categories    []CategoryView `json:"categories"`
}

// CategoryView is one category of a RecipeView.
type CategoryView struct {
	Key   domain.Category `json:"key"`
	Label string          `json:"label"`
	Multi bool            `json:"multi"`
	Pool  *int            `json:"pool,omitempty"`
	Slots []SlotView      `json:"slots"`
}

// SlotView is one filled slot.
type SlotView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Locked bool   `json:"locked,omitempty"`
	Empty  bool   `json:"empty,omitempty"`
}

// NewRecipeView builds the view of a table. stats may be nil.
func NewRecipeView(t *domain.Table, stats map[domain.Category]selection.Stats) RecipeView {
	v := RecipeView{
		Name:          t.Recipe.Name,
		Profile:       t.Recipe.Profile,
		ProfileLabel:  t.Recipe.Profile.Label(),
		Chaos:         t.Chaos,
		ProfileLocked: t.ProfileLocked,
		Rolls:         t.Rolls,
		Categories:    make([]CategoryView, 0, len(domain.Categories)),
	}
	for _, info := range domain.Categories {
		cv := CategoryView{
			Key:   info.Key,
			Label: info.Label,
			Multi: info.Multi,
			Slots: make([]SlotView, 0, len(t.Recipe.Ingredients[info.Key])),
		}
		if s, ok := stats[info.Key]; ok {
			n := s.Count
			cv.Pool = &n
		}
		for i, ing := range t.Recipe.Ingredients[info.Key] {
			cv.Slots = append(cv.Slots, SlotView{
				ID:     ing.ID,
				Name:   ing.Name,
				Locked: t.Locks.IsLocked(info.Key, i),
				Empty:  ing.IsEmpty(),
			})
		}
		v.Categories = append(v.Categories, cv)
	}
	return v
}

// FormatRecipe renders a table's recipe as plain, uncolored text suitable
// for pipes and files.
func FormatRecipe(t *domain.Table, stats map[domain.Category]selection.Stats) string {
	v := NewRecipeView(t, stats)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", v.Name)
	fmt.Fprintf(&b, "Cuisine: %s", v.ProfileLabel)
	if v.ProfileLocked {
		b.WriteString(" (locked)")
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Chaos: %s\n", onOff(v.Chaos))

	for _, c := range v.Categories {
		b.WriteByte('\n')
		b.WriteString(c.Label)
		if c.Multi {
			fmt.Fprintf(&b, " (%d/%d)", len(c.Slots), domain.MaxSlots)
		}
		if c.Pool != nil {
			fmt.Fprintf(&b, " [pool %d]", *c.Pool)
		}
		b.WriteByte('\n')
		for i, s := range c.Slots {
			fmt.Fprintf(&b, "  %d. %s", i+1, s.Name)
			if s.Locked {
				b.WriteString(" [locked]")
			}
			if s.Empty {
				b.WriteString(" [no ingredients]")
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

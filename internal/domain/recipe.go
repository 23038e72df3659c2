// Package domain defines the core types and interfaces for the casserole roller.
// All other packages depend on domain; domain depends on nothing.
package domain

// Ingredient is a single catalog entry. Immutable once loaded.
type Ingredient struct {
	ID   string   `json:"id"` // "<category>-<index>", unique within its category
	Name string   `json:"name"`
	Tags []string `json:"tags,omitempty"` // cuisine profiles this ingredient is characteristic of
}

// HasTag reports whether the ingredient is tagged for the given profile.
func (i Ingredient) HasTag(p Profile) bool {
	for _, t := range i.Tags {
		if t == string(p) {
			return true
		}
	}
	return false
}

// EmptyIngredient is returned by a pick on an empty pool. It only shows up
// when the catalog is missing a category entirely.
var EmptyIngredient = Ingredient{ID: "err", Name: "Empty"}

// IsEmpty reports whether i is the empty-pool marker.
func (i Ingredient) IsEmpty() bool { return i.ID == EmptyIngredient.ID }

// Recipe is one rolled casserole. Values are treated as immutable: every
// mutation goes through a function that returns a fresh copy.
type Recipe struct {
	Name        string                    `json:"name"`
	Profile     Profile                   `json:"profile"`
	Ingredients map[Category][]Ingredient `json:"ingredients"`
}

// Slots returns the ingredients occupying a category, in slot order.
func (r Recipe) Slots(c Category) []Ingredient {
	return r.Ingredients[c]
}

// SlotIDs returns the ids of every ingredient currently in the category.
func (r Recipe) SlotIDs(c Category) []string {
	slots := r.Ingredients[c]
	ids := make([]string, len(slots))
	for i, ing := range slots {
		ids[i] = ing.ID
	}
	return ids
}

// Clone returns a deep copy. Ingredient tag slices are shared since
// ingredients themselves never change.
func (r Recipe) Clone() Recipe {
	out := Recipe{
		Name:        r.Name,
		Profile:     r.Profile,
		Ingredients: make(map[Category][]Ingredient, len(r.Ingredients)),
	}
	for c, slots := range r.Ingredients {
		out.Ingredients[c] = append([]Ingredient(nil), slots...)
	}
	return out
}

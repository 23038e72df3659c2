// Package selection is the casserole selection engine: pool resolution,
// exclusion-aware random picks, recipe generation and slot mutation.
//
// Every operation is a pure function of its inputs and the injected random
// source. Recipes passed in are never modified; a fresh Recipe is returned
// instead. Locks, the chaos flag and the current recipe belong to the
// caller and are passed explicitly on each call.
//
// Preconditions such as "do not reroll a locked slot" or "do not add past
// the slot cap" are the caller's to enforce. Where a violated precondition
// would otherwise corrupt a recipe (bad index, cap overflow, removing the
// last slot) the operation returns an unchanged copy.
package selection

import (
	"github.com/hammamikhairi/casseroll/internal/domain"
)

// Selector binds the engine to a catalog and a random source.
type Selector struct {
	catalog domain.Catalog
	rng     Rand
}

// New creates a selector. A nil rng uses DefaultRand.
func New(catalog domain.Catalog, rng Rand) *Selector {
	if rng == nil {
		rng = DefaultRand()
	}
	return &Selector{catalog: catalog, rng: rng}
}

// ResolvePool returns the candidate ingredients for a category.
//
// With chaos on (or the chaos profile) the full category list is returned
// in catalog order. Otherwise only ingredients tagged with the profile are
// returned, falling back to the full list when none are tagged. Unknown
// categories yield an empty pool.
func (s *Selector) ResolvePool(cat domain.Category, profile domain.Profile, chaos bool) []domain.Ingredient {
	all := s.catalog.Ingredients(cat)
	if chaos || profile.IsChaos() {
		return all
	}

	matched := make([]domain.Ingredient, 0, len(all))
	for _, ing := range all {
		if ing.HasTag(profile) {
			matched = append(matched, ing)
		}
	}
	if len(matched) == 0 {
		return all
	}
	return matched
}

// Pick returns a uniformly random member of pool whose id is not in
// exclude. When every member is excluded the first member is returned.
// An empty pool yields domain.EmptyIngredient.
func (s *Selector) Pick(pool []domain.Ingredient, exclude ...string) domain.Ingredient {
	if len(pool) == 0 {
		return domain.EmptyIngredient
	}

	skip := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}
	available := make([]domain.Ingredient, 0, len(pool))
	for _, ing := range pool {
		if !skip[ing.ID] {
			available = append(available, ing)
		}
	}
	if len(available) == 0 {
		return pool[0]
	}
	return available[s.rng.IntN(len(available))]
}

// GenerateName picks a name phrase for the profile and appends the
// " Casserole" suffix. Chaos uses its own phrase list; an unknown profile
// uses the comfort list.
func (s *Selector) GenerateName(profile domain.Profile, chaos bool) string {
	var phrases []string
	if chaos || profile.IsChaos() {
		phrases = domain.ChaosNames
	} else if info, ok := domain.LookupProfile(profile); ok {
		phrases = info.Names
	} else {
		info, _ := domain.LookupProfile(domain.ProfileComfort)
		phrases = info.Names
	}
	return phrases[s.rng.IntN(len(phrases))] + domain.NameSuffix
}

// GenerateOptions control a full recipe roll.
type GenerateOptions struct {
	// LockedProfile wins over everything else when set.
	LockedProfile domain.Profile
	// Chaos forces the chaos profile unless a profile is locked, and
	// draws every pool from the full catalog.
	Chaos bool
	// ForcedProfile is used when no profile is locked and chaos is off.
	ForcedProfile domain.Profile
	// LockedIngredients are copied verbatim into their categories.
	// Empty lists are ignored.
	LockedIngredients map[domain.Category][]domain.Ingredient
}

// Generate rolls a whole recipe. Categories with locked ingredients keep
// them in order; every other category gets a single fresh pick.
func (s *Selector) Generate(opts GenerateOptions) domain.Recipe {
	profile := s.chooseProfile(opts)

	r := domain.Recipe{
		Name:        s.GenerateName(profile, opts.Chaos),
		Profile:     profile,
		Ingredients: make(map[domain.Category][]domain.Ingredient, len(domain.Categories)),
	}
	for _, cat := range domain.CategoryKeys() {
		if locked := opts.LockedIngredients[cat]; len(locked) > 0 {
			r.Ingredients[cat] = append([]domain.Ingredient(nil), locked...)
			continue
		}
		pool := s.ResolvePool(cat, profile, opts.Chaos)
		r.Ingredients[cat] = []domain.Ingredient{s.Pick(pool)}
	}
	return r
}

func (s *Selector) chooseProfile(opts GenerateOptions) domain.Profile {
	switch {
	case opts.LockedProfile != "":
		return opts.LockedProfile
	case opts.Chaos:
		return domain.ProfileChaos
	case opts.ForcedProfile != "":
		return opts.ForcedProfile
	}
	keys := domain.ProfileKeys()
	return keys[s.rng.IntN(len(keys))]
}

// ChangeProfile regenerates the recipe under profile with chaos off,
// keeping the given locked ingredients packed at the front of their
// categories. It always regenerates, even for the recipe's own profile.
func (s *Selector) ChangeProfile(r domain.Recipe, profile domain.Profile, locked map[domain.Category][]domain.Ingredient) domain.Recipe {
	return s.Generate(GenerateOptions{
		ForcedProfile:     profile,
		LockedIngredients: locked,
	})
}

// RerollSlot replaces slot index of a category with a fresh pick from the
// recipe's profile pool, excluding every ingredient currently in that
// category. The slot may keep its own value only when nothing else is left.
func (s *Selector) RerollSlot(r domain.Recipe, cat domain.Category, index int, chaos bool) domain.Recipe {
	out := r.Clone()
	slots := out.Ingredients[cat]
	if index < 0 || index >= len(slots) {
		return out
	}
	pool := s.ResolvePool(cat, r.Profile, chaos)
	slots[index] = s.Pick(pool, r.SlotIDs(cat)...)
	return out
}

// AddSlot appends a fresh pick to a multi category, excluding the
// ingredients already there. Single-slot categories and full categories
// are returned unchanged.
func (s *Selector) AddSlot(r domain.Recipe, cat domain.Category, chaos bool) domain.Recipe {
	out := r.Clone()
	slots := out.Ingredients[cat]
	if !cat.IsMulti() || len(slots) >= domain.MaxSlots {
		return out
	}
	pool := s.ResolvePool(cat, r.Profile, chaos)
	out.Ingredients[cat] = append(slots, s.Pick(pool, r.SlotIDs(cat)...))
	return out
}

// Stats is the informational size of a candidate pool.
type Stats struct {
	Count int `json:"count"`
}

// CategoryStats reports how many candidates the category currently has.
func (s *Selector) CategoryStats(cat domain.Category, profile domain.Profile, chaos bool) Stats {
	return Stats{Count: len(s.ResolvePool(cat, profile, chaos))}
}

// SetSlot overwrites a slot with the given ingredient.
func SetSlot(r domain.Recipe, cat domain.Category, index int, ing domain.Ingredient) domain.Recipe {
	out := r.Clone()
	slots := out.Ingredients[cat]
	if index < 0 || index >= len(slots) {
		return out
	}
	slots[index] = ing
	return out
}

// RemoveSlot drops a slot. A category is never left empty: removing its
// only slot returns the recipe unchanged.
func RemoveSlot(r domain.Recipe, cat domain.Category, index int) domain.Recipe {
	out := r.Clone()
	slots := out.Ingredients[cat]
	if len(slots) <= 1 || index < 0 || index >= len(slots) {
		return out
	}
	out.Ingredients[cat] = append(slots[:index:index], slots[index+1:]...)
	return out
}

// Rename returns a copy with a new name.
func Rename(r domain.Recipe, name string) domain.Recipe {
	out := r.Clone()
	out.Name = name
	return out
}

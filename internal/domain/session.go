package domain

import (
	"sort"
	"time"
)

// Table is one roller session: the recipe on the table plus everything the
// caller tracks around it. The selection engine never sees a Table; the
// relevant fields are passed to it explicitly.
type Table struct {
	ID            string
	Recipe        Recipe
	Locks         LockState
	Chaos         bool // draw from the full catalog on every roll
	ProfileLocked bool // full rolls keep the current profile
	Rolls         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Clone returns a copy that shares no recipe slots or locks with t.
func (t *Table) Clone() *Table {
	cp := *t
	cp.Recipe = t.Recipe.Clone()
	cp.Locks = t.Locks.Clone()
	return &cp
}

// LockState maps a category to the slot indices locked against rerolls.
type LockState map[Category]map[int]bool

// IsLocked reports whether slot idx of category c is locked.
func (l LockState) IsLocked(c Category, idx int) bool {
	return l[c][idx]
}

// Lock marks a slot as locked.
func (l LockState) Lock(c Category, idx int) {
	if l[c] == nil {
		l[c] = make(map[int]bool)
	}
	l[c][idx] = true
}

// Unlock clears a slot's lock.
func (l LockState) Unlock(c Category, idx int) {
	delete(l[c], idx)
	if len(l[c]) == 0 {
		delete(l, c)
	}
}

// Toggle flips a slot's lock and returns the new state.
func (l LockState) Toggle(c Category, idx int) bool {
	if l.IsLocked(c, idx) {
		l.Unlock(c, idx)
		return false
	}
	l.Lock(c, idx)
	return true
}

// RemoveSlot discards the lock of a removed slot and shifts every locked
// index above it down by one.
func (l LockState) RemoveSlot(c Category, idx int) {
	old := l[c]
	if old == nil {
		return
	}
	shifted := make(map[int]bool, len(old))
	for i := range old {
		switch {
		case i < idx:
			shifted[i] = true
		case i > idx:
			shifted[i-1] = true
		}
	}
	if len(shifted) == 0 {
		delete(l, c)
		return
	}
	l[c] = shifted
}

// Indices returns the locked indices of a category in ascending order.
func (l LockState) Indices(c Category) []int {
	out := make([]int, 0, len(l[c]))
	for i := range l[c] {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Count returns the total number of locked slots.
func (l LockState) Count() int {
	n := 0
	for _, set := range l {
		n += len(set)
	}
	return n
}

// Clone returns an independent copy.
func (l LockState) Clone() LockState {
	out := make(LockState, len(l))
	for c, set := range l {
		cp := make(map[int]bool, len(set))
		for i := range set {
			cp[i] = true
		}
		out[c] = cp
	}
	return out
}

// LockedIngredients collects the locked slots of a recipe per category, in
// slot order. Categories with no locks are absent.
func (l LockState) LockedIngredients(r Recipe) map[Category][]Ingredient {
	out := make(map[Category][]Ingredient)
	for c := range l {
		slots := r.Ingredients[c]
		for _, idx := range l.Indices(c) {
			if idx < len(slots) {
				out[c] = append(out[c], slots[idx])
			}
		}
	}
	return out
}

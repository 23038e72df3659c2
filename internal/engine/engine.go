// Package engine manages roller tables: it holds the caller-side state the
// selection engine deliberately does not (current recipe, slot locks, chaos
// flag, profile lock) and enforces the preconditions selection assumes.
package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hammamikhairi/casseroll/internal/domain"
	"github.com/hammamikhairi/casseroll/internal/logger"
	"github.com/hammamikhairi/casseroll/internal/selection"
)

// Option configures the engine.
type Option func(*Engine)

// WithRand sets the random source used for every roll. Tests pass a
// seeded generator here.
func WithRand(rng selection.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithClock overrides time.Now for table timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine manages tables. It depends only on interfaces and is fully
// testable with an in-memory catalog and store.
type Engine struct {
	catalog domain.Catalog
	store   domain.TableStore
	log     *logger.Logger
	rng     selection.Rand
	now     func() time.Time
	sel     *selection.Selector
}

// New creates a table engine with the given dependencies and options.
func New(catalog domain.Catalog, store domain.TableStore, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		store:   store,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.sel = selection.New(catalog, e.rng)
	return e
}

// StartOptions configure the first roll of a table.
type StartOptions struct {
	Profile domain.Profile // empty picks a random cuisine
	Chaos   bool
}

// Start rolls a fresh recipe onto a new table.
func (e *Engine) Start(ctx context.Context, opts StartOptions) (*domain.Table, error) {
	if opts.Profile != "" {
		if _, ok := domain.LookupProfile(opts.Profile); !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProfile, opts.Profile)
		}
	}

	now := e.now()
	t := &domain.Table{
		ID:        uuid.NewString(),
		Locks:     domain.LockState{},
		Chaos:     opts.Chaos,
		CreatedAt: now,
	}
	r := e.sel.Generate(selection.GenerateOptions{
		Chaos:         opts.Chaos,
		ForcedProfile: opts.Profile,
	})
	t.Rolls = 1

	if err := e.commit(ctx, t, r); err != nil {
		return nil, err
	}
	e.log.Info("started table %s: %q (%s)", t.ID, r.Name, r.Profile)
	return t, nil
}

// Table returns a table by ID.
func (e *Engine) Table(ctx context.Context, id string) (*domain.Table, error) {
	t, err := e.store.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading table: %w", err)
	}
	return t, nil
}

// Roll rerolls the whole recipe. Locked slots survive and are packed to the
// front of their category; a locked profile is kept.
func (e *Engine) Roll(ctx context.Context, id string) (*domain.Table, error) {
	t, err := e.Table(ctx, id)
	if err != nil {
		return nil, err
	}

	locked := t.Locks.LockedIngredients(t.Recipe)
	opts := selection.GenerateOptions{
		Chaos:             t.Chaos,
		LockedIngredients: locked,
	}
	if t.ProfileLocked {
		opts.LockedProfile = t.Recipe.Profile
	}
	r := e.sel.Generate(opts)

	t.Locks = packedLocks(locked)
	t.Rolls++
	if err := e.commit(ctx, t, r); err != nil {
		return nil, err
	}
	e.log.Debug("table %s rolled: %q (%s, %d locked)", id, r.Name, r.Profile, t.Locks.Count())
	return t, nil
}

// Reroll replaces one unlocked slot.
func (e *Engine) Reroll(ctx context.Context, id string, cat domain.Category, idx int) (*domain.Table, error) {
	t, err := e.Table(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkSlot(t.Recipe, cat, idx); err != nil {
		return nil, err
	}
	if t.Locks.IsLocked(cat, idx) {
		return nil, fmt.Errorf("%s #%d: %w", cat, idx+1, domain.ErrSlotLocked)
	}

	r := e.sel.RerollSlot(t.Recipe, cat, idx, t.Chaos)
	if err := e.commit(ctx, t, r); err != nil {
		return nil, err
	}
	e.log.Debug("table %s rerolled %s #%d -> %s", id, cat, idx+1, r.Ingredients[cat][idx].Name)
	return t, nil
}

// RerollCategory rerolls every unlocked slot of a category, one after the
// other, so each new pick also avoids the ones made before it.
func (e *Engine) RerollCategory(ctx context.Context, id string, cat domain.Category) (*domain.Table, error) {
	t, err := e.Table(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, ok := domain.LookupCategory(cat); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCategory, cat)
	}

	r := t.Recipe
	changed := 0
	for idx := range r.Ingredients[cat] {
		if t.Locks.IsLocked(cat, idx) {
			continue
		}
		r = e.sel.RerollSlot(r, cat, idx, t.Chaos)
		changed++
	}
	if changed == 0 {
		return nil, fmt.Errorf("%s: %w", cat, domain.ErrSlotLocked)
	}
	if err := e.commit(ctx, t, r); err != nil {
		return nil, err
	}
	return t, nil
}

// Select puts a user-chosen ingredient into a slot. The query is either a
// 1-based position in the full category list or an ingredient id or name.
// Locks do not apply: they only guard against rerolls.
func (e *Engine) Select(ctx context.Context, id string, cat domain.Category, idx int, query string) (*domain.Table, error) {
	t, err := e.Table(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkSlot(t.Recipe, cat, idx); err != nil {
		return nil, err
	}

	ing, err := e.resolveIngredient(cat, query)
	if err != nil {
		return nil, err
	}
	r := selection.SetSlot(t.Recipe, cat, idx, ing)
	if err := e.commit(ctx, t, r); err != nil {
		return nil, err
	}
	e.log.Debug("table %s set %s #%d = %s", id, cat, idx+1, ing.Name)
	return t, nil
}

func (e *Engine) resolveIngredient(cat domain.Category, query string) (domain.Ingredient, error) {
	q := strings.TrimSpace(query)
	if n, err := strconv.Atoi(q); err == nil {
		all := e.catalog.Ingredients(cat)
		if n < 1 || n > len(all) {
			return domain.Ingredient{}, fmt.Errorf("%s option %d: %w", cat, n, domain.ErrNotFound)
		}
		return all[n-1], nil
	}
	ing, err := e.catalog.Lookup(cat, q)
	if err != nil {
		return domain.Ingredient{}, fmt.Errorf("looking up ingredient: %w", err)
	}
	return ing, nil
}

// Add appends a fresh pick to a multi category.
func (e *Engine) Add(ctx context.Context, id string, cat domain.Category) (*domain.Table, error) {
	t, err := e.Table(ctx, id)
	if err != nil {
		return nil, err
	}
	info, ok := domain.LookupCategory(cat)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCategory, cat)
	}
	if !info.Multi {
		return nil, fmt.Errorf("%s: %w", info.Label, domain.ErrSingleSlot)
	}
	if len(t.Recipe.Ingredients[cat]) >= domain.MaxSlots {
		return nil, fmt.Errorf("%s already has %d: %w", info.Label, domain.MaxSlots, domain.ErrSlotCap)
	}

	r := e.sel.AddSlot(t.Recipe, cat, t.Chaos)
	if err := e.commit(ctx, t, r); err != nil {
		return nil, err
	}
	return t, nil
}

// Remove drops a slot and renumbers the category's locks to match.
func (e *Engine) Remove(ctx context.Context, id string, cat domain.Category, idx int) (*domain.Table, error) {
	t, err := e.Table(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkSlot(t.Recipe, cat, idx); err != nil {
		return nil, err
	}
	if len(t.Recipe.Ingredients[cat]) <= 1 {
		return nil, fmt.Errorf("%s: %w", cat.Label(), domain.ErrLastSlot)
	}

	r := selection.RemoveSlot(t.Recipe, cat, idx)
	t.Locks.RemoveSlot(cat, idx)
	if err := e.commit(ctx, t, r); err != nil {
		return nil, err
	}
	return t, nil
}

// ToggleLock flips a slot lock and reports whether it is now locked.
func (e *Engine) ToggleLock(ctx context.Context, id string, cat domain.Category, idx int) (bool, error) {
	t, err := e.Table(ctx, id)
	if err != nil {
		return false, err
	}
	if err := checkSlot(t.Recipe, cat, idx); err != nil {
		return false, err
	}
	locked := t.Locks.Toggle(cat, idx)
	t.UpdatedAt = e.now()
	if err := e.store.Save(ctx, t); err != nil {
		return false, fmt.Errorf("saving table: %w", err)
	}
	return locked, nil
}

// ToggleProfileLock flips whether full rolls keep the current profile.
func (e *Engine) ToggleProfileLock(ctx context.Context, id string) (bool, error) {
	t, err := e.Table(ctx, id)
	if err != nil {
		return false, err
	}
	t.ProfileLocked = !t.ProfileLocked
	t.UpdatedAt = e.now()
	if err := e.store.Save(ctx, t); err != nil {
		return false, fmt.Errorf("saving table: %w", err)
	}
	return t.ProfileLocked, nil
}

// SetCuisine switches to a real cuisine profile, regenerating every
// unlocked slot and turning chaos off. Picking the current cuisine while
// chaos is off changes nothing.
func (e *Engine) SetCuisine(ctx context.Context, id string, profile domain.Profile) (*domain.Table, error) {
	t, err := e.Table(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, ok := domain.LookupProfile(profile); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProfile, profile)
	}
	if profile == t.Recipe.Profile && !t.Chaos {
		return t, nil
	}

	locked := t.Locks.LockedIngredients(t.Recipe)
	r := e.sel.ChangeProfile(t.Recipe, profile, locked)
	t.Locks = packedLocks(locked)
	t.Chaos = false
	t.Rolls++
	if err := e.commit(ctx, t, r); err != nil {
		return nil, err
	}
	e.log.Info("table %s switched to %s", id, profile)
	return t, nil
}

// SetChaos turns chaos mode on or off. The recipe is left as it is; the
// flag applies from the next roll or reroll on.
func (e *Engine) SetChaos(ctx context.Context, id string, on bool) (*domain.Table, error) {
	t, err := e.Table(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Chaos = on
	t.UpdatedAt = e.now()
	if err := e.store.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("saving table: %w", err)
	}
	return t, nil
}

// Rename gives the recipe a new name. An empty name draws a fresh one for
// the current profile.
func (e *Engine) Rename(ctx context.Context, id string, name string) (*domain.Table, error) {
	t, err := e.Table(ctx, id)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = e.sel.GenerateName(t.Recipe.Profile, t.Chaos)
	}
	if err := e.commit(ctx, t, selection.Rename(t.Recipe, name)); err != nil {
		return nil, err
	}
	return t, nil
}

// Options returns the candidate pool a reroll of the category draws from.
func (e *Engine) Options(ctx context.Context, id string, cat domain.Category) ([]domain.Ingredient, error) {
	t, err := e.Table(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, ok := domain.LookupCategory(cat); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCategory, cat)
	}
	return e.sel.ResolvePool(cat, t.Recipe.Profile, t.Chaos), nil
}

// Catalog returns the full ingredient list of a category, which is what
// manual selection picks from.
func (e *Engine) Catalog(cat domain.Category) []domain.Ingredient {
	return e.catalog.Ingredients(cat)
}

// Stats reports the pool size of every category for the table.
func (e *Engine) Stats(ctx context.Context, id string) (map[domain.Category]selection.Stats, error) {
	t, err := e.Table(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.StatsFor(t), nil
}

// StatsFor computes pool sizes for an already loaded table.
func (e *Engine) StatsFor(t *domain.Table) map[domain.Category]selection.Stats {
	out := make(map[domain.Category]selection.Stats, len(domain.Categories))
	for _, cat := range domain.CategoryKeys() {
		out[cat] = e.sel.CategoryStats(cat, t.Recipe.Profile, t.Chaos)
	}
	return out
}

// End discards a table.
func (e *Engine) End(ctx context.Context, id string) error {
	if err := e.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting table: %w", err)
	}
	e.log.Info("table %s ended", id)
	return nil
}

// commit stores the new recipe on the table and saves it.
func (e *Engine) commit(ctx context.Context, t *domain.Table, r domain.Recipe) error {
	for _, cat := range domain.CategoryKeys() {
		for _, ing := range r.Ingredients[cat] {
			if ing.IsEmpty() {
				e.log.Warn("catalog has no %s ingredients; slot holds the empty marker", cat)
			}
		}
	}
	t.Recipe = r
	t.UpdatedAt = e.now()
	if err := e.store.Save(ctx, t); err != nil {
		return fmt.Errorf("saving table: %w", err)
	}
	return nil
}

// packedLocks locks the leading slots that Generate filled with locked
// ingredients.
func packedLocks(locked map[domain.Category][]domain.Ingredient) domain.LockState {
	out := domain.LockState{}
	for cat, list := range locked {
		for i := range list {
			out.Lock(cat, i)
		}
	}
	return out
}

func checkSlot(r domain.Recipe, cat domain.Category, idx int) error {
	if _, ok := domain.LookupCategory(cat); !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownCategory, cat)
	}
	if n := len(r.Ingredients[cat]); idx < 0 || idx >= n {
		return fmt.Errorf("%s #%d of %d: %w", cat, idx+1, n, domain.ErrSlotOutOfRange)
	}
	return nil
}

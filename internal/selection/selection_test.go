package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/casseroll/internal/catalog"
	"github.com/hammamikhairi/casseroll/internal/domain"
	"github.com/hammamikhairi/casseroll/internal/logger"
)

// scriptedRand replays fixed values, wrapped into range.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) IntN(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func testCatalog() *catalog.Catalog {
	return catalog.New(catalog.Raw{
		domain.CategoryStarch: {
			{Name: "Egg Noodles", Tags: []string{"comfort"}},
			{Name: "Penne", Tags: []string{"italian"}},
			{Name: "Rice", Tags: []string{"asian"}},
		},
		domain.CategoryProtein: {
			{Name: "Chicken", Tags: []string{"comfort"}},
			{Name: "Italian Sausage", Tags: []string{"italian"}},
			{Name: "Tofu", Tags: []string{"asian"}},
		},
		domain.CategoryVegetables: {
			{Name: "Peas", Tags: []string{"comfort"}},
			{Name: "Spinach", Tags: []string{"italian"}},
			{Name: "Bok Choy", Tags: []string{"asian"}},
			{Name: "Mushrooms", Tags: []string{"italian", "comfort"}},
		},
		domain.CategoryBinder: {
			{Name: "Cream of Mushroom", Tags: []string{"comfort"}},
			{Name: "Marinara", Tags: []string{"italian"}},
		},
		domain.CategoryTopper: {
			{Name: "Breadcrumbs", Tags: []string{"italian"}},
			{Name: "Crackers"},
		},
	}, logger.Nop())
}

func newSelector(seed int64) *Selector {
	return New(testCatalog(), NewSeededRand(seed))
}

func ids(list []domain.Ingredient) []string {
	out := make([]string, len(list))
	for i, ing := range list {
		out[i] = ing.ID
	}
	return out
}

func TestResolvePoolFiltersByProfile(t *testing.T) {
	s := newSelector(1)

	pool := s.ResolvePool(domain.CategoryProtein, domain.ProfileItalian, false)
	require.Len(t, pool, 1)
	assert.Equal(t, "Italian Sausage", pool[0].Name)

	pool = s.ResolvePool(domain.CategoryProtein, domain.ProfileItalian, true)
	assert.Equal(t, []string{"protein-0", "protein-1", "protein-2"}, ids(pool))

	pool = s.ResolvePool(domain.CategoryVegetables, domain.ProfileComfort, false)
	assert.Equal(t, []string{"vegetables-0", "vegetables-3"}, ids(pool), "catalog order is kept")
}

func TestResolvePoolFallback(t *testing.T) {
	s := newSelector(1)
	cat := testCatalog()

	for _, c := range domain.CategoryKeys() {
		pool := s.ResolvePool(c, domain.ProfileBBQ, false)
		assert.Equal(t, ids(cat.Ingredients(c)), ids(pool), "category %s", c)
	}

	pool := s.ResolvePool(domain.CategoryTopper, domain.ProfileComfort, false)
	assert.Len(t, pool, 2, "untagged topper list falls back whole")
}

func TestResolvePoolChaosUniversality(t *testing.T) {
	s := newSelector(1)
	cat := testCatalog()

	profiles := append(domain.ProfileKeys(), domain.ProfileChaos, "made-up")
	for _, c := range domain.CategoryKeys() {
		want := ids(cat.Ingredients(c))
		for _, p := range profiles {
			assert.Equal(t, want, ids(s.ResolvePool(c, p, true)), "%s/%s", c, p)
		}
		assert.Equal(t, want, ids(s.ResolvePool(c, domain.ProfileChaos, false)), "chaos profile without flag")
	}
}

func TestResolvePoolUnknownCategory(t *testing.T) {
	s := newSelector(1)
	assert.Empty(t, s.ResolvePool("dessert", domain.ProfileItalian, false))
	assert.Empty(t, s.ResolvePool("dessert", domain.ProfileItalian, true))
}

func TestPickRespectsExclusion(t *testing.T) {
	s := newSelector(7)
	pool := testCatalog().Ingredients(domain.CategoryVegetables)

	for i := 0; i < 200; i++ {
		got := s.Pick(pool, "vegetables-1")
		require.NotEqual(t, "vegetables-1", got.ID)
		require.Contains(t, ids(pool), got.ID)
	}

	two := pool[:2]
	for i := 0; i < 50; i++ {
		assert.Equal(t, "vegetables-1", s.Pick(two, "vegetables-0").ID)
	}
}

func TestPickCoversAvailable(t *testing.T) {
	s := newSelector(3)
	pool := testCatalog().Ingredients(domain.CategoryVegetables)

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		seen[s.Pick(pool).ID] = true
	}
	assert.Len(t, seen, len(pool))
}

func TestPickFallbacks(t *testing.T) {
	s := newSelector(1)
	pool := testCatalog().Ingredients(domain.CategoryBinder)

	got := s.Pick(pool, "binder-0", "binder-1")
	assert.Equal(t, "binder-0", got.ID, "everything excluded falls back to the first member")

	got = s.Pick(nil)
	assert.True(t, got.IsEmpty())
	assert.Equal(t, "err", got.ID)
	assert.Equal(t, "Empty", got.Name)
}

func TestGenerateName(t *testing.T) {
	s := New(testCatalog(), &scriptedRand{vals: []int{2}})

	assert.Equal(t, "Cozy Night Casserole", s.GenerateName(domain.ProfileComfort, false))
	assert.Equal(t, "Trattoria Casserole", s.GenerateName(domain.ProfileItalian, false))
	assert.Equal(t, "Wildcard Casserole", s.GenerateName(domain.ProfileItalian, true))
	assert.Equal(t, "Wildcard Casserole", s.GenerateName(domain.ProfileChaos, false))
	assert.Equal(t, "Cozy Night Casserole", s.GenerateName("unknown", false))
}

func TestGenerateProfilePrecedence(t *testing.T) {
	tests := []struct {
		name string
		opts GenerateOptions
		want domain.Profile
	}{
		{"locked beats chaos", GenerateOptions{LockedProfile: domain.ProfileAsian, Chaos: true, ForcedProfile: domain.ProfileItalian}, domain.ProfileAsian},
		{"chaos beats forced", GenerateOptions{Chaos: true, ForcedProfile: domain.ProfileItalian}, domain.ProfileChaos},
		{"forced", GenerateOptions{ForcedProfile: domain.ProfileItalian}, domain.ProfileItalian},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newSelector(5).Generate(tt.opts)
			assert.Equal(t, tt.want, r.Profile)
		})
	}

	s := New(testCatalog(), &scriptedRand{vals: []int{3}})
	r := s.Generate(GenerateOptions{})
	assert.Equal(t, domain.ProfileKeys()[3], r.Profile, "random choice among real profiles")
}

func TestGenerateShape(t *testing.T) {
	s := newSelector(11)
	for i := 0; i < 50; i++ {
		r := s.Generate(GenerateOptions{ForcedProfile: domain.ProfileItalian})
		require.Len(t, r.Ingredients, len(domain.Categories))
		for _, c := range domain.CategoryKeys() {
			require.Len(t, r.Ingredients[c], 1, "category %s", c)
		}
		assert.Equal(t, "Italian Sausage", r.Ingredients[domain.CategoryProtein][0].Name)
		assert.Equal(t, "Marinara", r.Ingredients[domain.CategoryBinder][0].Name)
		assert.Contains(t, r.Name, domain.NameSuffix)
	}
}

func TestGenerateKeepsLockedIngredients(t *testing.T) {
	s := newSelector(9)
	cat := testCatalog()
	veg := cat.Ingredients(domain.CategoryVegetables)
	locked := map[domain.Category][]domain.Ingredient{
		domain.CategoryVegetables: {veg[2], veg[0], veg[1]},
		domain.CategoryProtein:    {},
	}

	for i := 0; i < 20; i++ {
		r := s.Generate(GenerateOptions{LockedIngredients: locked})
		assert.Equal(t, []string{"vegetables-2", "vegetables-0", "vegetables-1"}, ids(r.Ingredients[domain.CategoryVegetables]))
		assert.Len(t, r.Ingredients[domain.CategoryProtein], 1, "empty lock list is ignored")
	}

	r := s.Generate(GenerateOptions{LockedIngredients: locked})
	r.Ingredients[domain.CategoryVegetables][0] = veg[3]
	assert.Equal(t, "vegetables-2", locked[domain.CategoryVegetables][0].ID, "locked input is copied")
}

func TestGenerateEmptyCategoryUsesMarker(t *testing.T) {
	cat := catalog.New(catalog.Raw{
		domain.CategoryStarch: {{Name: "Rice"}},
	}, logger.Nop())
	s := New(cat, NewSeededRand(1))

	r := s.Generate(GenerateOptions{ForcedProfile: domain.ProfileComfort})
	assert.Equal(t, "Rice", r.Ingredients[domain.CategoryStarch][0].Name)
	assert.True(t, r.Ingredients[domain.CategoryTopper][0].IsEmpty())
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	a := newSelector(42).Generate(GenerateOptions{})
	b := newSelector(42).Generate(GenerateOptions{})
	assert.Equal(t, a, b)
}

func TestRerollSlotAvoidsSiblings(t *testing.T) {
	s := newSelector(13)
	veg := testCatalog().Ingredients(domain.CategoryVegetables)

	r := s.Generate(GenerateOptions{ForcedProfile: domain.ProfileItalian})
	r.Ingredients[domain.CategoryVegetables] = []domain.Ingredient{veg[0], veg[1]}

	for i := 0; i < 100; i++ {
		next := s.RerollSlot(r, domain.CategoryVegetables, 0, false)
		slots := next.Ingredients[domain.CategoryVegetables]
		require.Len(t, slots, 2)
		assert.NotEqual(t, veg[1].ID, slots[0].ID)
		assert.NotEqual(t, veg[0].ID, slots[0].ID, "italian pool still has mushrooms")
		assert.Equal(t, veg[1].ID, slots[1].ID)
	}
}

func TestRerollSlotLockedSiblingScenario(t *testing.T) {
	s := newSelector(21)
	veg := testCatalog().Ingredients(domain.CategoryVegetables)

	r := s.Generate(GenerateOptions{Chaos: true})
	a, b := veg[0], veg[3]
	r.Ingredients[domain.CategoryVegetables] = []domain.Ingredient{a, b}

	for i := 0; i < 100; i++ {
		next := s.RerollSlot(r, domain.CategoryVegetables, 0, false)
		slots := next.Ingredients[domain.CategoryVegetables]
		assert.NotEqual(t, b.ID, slots[0].ID)
		assert.Equal(t, b, slots[1])
	}
}

func TestRerollSlotSoleOption(t *testing.T) {
	s := newSelector(2)
	r := s.Generate(GenerateOptions{ForcedProfile: domain.ProfileItalian})
	before := r.Ingredients[domain.CategoryProtein][0]

	next := s.RerollSlot(r, domain.CategoryProtein, 0, false)
	assert.Equal(t, before, next.Ingredients[domain.CategoryProtein][0], "only one italian protein exists")

	next = s.RerollSlot(r, domain.CategoryProtein, 0, true)
	assert.NotEqual(t, before.ID, next.Ingredients[domain.CategoryProtein][0].ID, "chaos widens the pool")
}

func TestRerollSlotOutOfRange(t *testing.T) {
	s := newSelector(2)
	r := s.Generate(GenerateOptions{ForcedProfile: domain.ProfileComfort})

	assert.Equal(t, r, s.RerollSlot(r, domain.CategoryStarch, 3, false))
	assert.Equal(t, r, s.RerollSlot(r, domain.CategoryStarch, -1, false))
}

func TestMutatorsDoNotTouchInput(t *testing.T) {
	s := newSelector(4)
	r := s.Generate(GenerateOptions{ForcedProfile: domain.ProfileComfort})
	snapshot := r.Clone()
	extra := testCatalog().Ingredients(domain.CategoryVegetables)[2]

	_ = s.RerollSlot(r, domain.CategoryVegetables, 0, true)
	_ = s.AddSlot(r, domain.CategoryVegetables, false)
	_ = SetSlot(r, domain.CategoryVegetables, 0, extra)
	_ = RemoveSlot(s.AddSlot(r, domain.CategoryVegetables, false), domain.CategoryVegetables, 0)
	_ = Rename(r, "Other")

	assert.Equal(t, snapshot, r)
}

func TestAddSlotCap(t *testing.T) {
	s := newSelector(6)
	r := s.Generate(GenerateOptions{ForcedProfile: domain.ProfileItalian})

	for i := 0; i < 5; i++ {
		r = s.AddSlot(r, domain.CategoryVegetables, true)
		assert.LessOrEqual(t, len(r.Ingredients[domain.CategoryVegetables]), domain.MaxSlots)
	}
	slots := r.Ingredients[domain.CategoryVegetables]
	require.Len(t, slots, domain.MaxSlots)
	assert.NotEqual(t, slots[0].ID, slots[1].ID)
	assert.NotEqual(t, slots[1].ID, slots[2].ID)
	assert.NotEqual(t, slots[0].ID, slots[2].ID)

	r = s.AddSlot(r, domain.CategoryBinder, false)
	assert.Len(t, r.Ingredients[domain.CategoryBinder], 1, "binder is single-slot")
}

func TestSetSlot(t *testing.T) {
	s := newSelector(8)
	r := s.Generate(GenerateOptions{ForcedProfile: domain.ProfileItalian})
	tofu := testCatalog().Ingredients(domain.CategoryProtein)[2]

	next := SetSlot(r, domain.CategoryProtein, 0, tofu)
	assert.Equal(t, tofu, next.Ingredients[domain.CategoryProtein][0])
	assert.Equal(t, r, SetSlot(r, domain.CategoryProtein, 1, tofu), "out of range is ignored")
}

func TestRemoveSlot(t *testing.T) {
	s := newSelector(10)
	r := s.Generate(GenerateOptions{ForcedProfile: domain.ProfileComfort})

	assert.Equal(t, r, RemoveSlot(r, domain.CategoryVegetables, 0), "last slot stays")

	r = s.AddSlot(r, domain.CategoryVegetables, true)
	r = s.AddSlot(r, domain.CategoryVegetables, true)
	before := r.Ingredients[domain.CategoryVegetables]

	next := RemoveSlot(r, domain.CategoryVegetables, 1)
	assert.Equal(t, []string{before[0].ID, before[2].ID}, ids(next.Ingredients[domain.CategoryVegetables]))
	assert.Equal(t, r, RemoveSlot(r, domain.CategoryVegetables, 5))
}

func TestChangeProfile(t *testing.T) {
	s := newSelector(12)
	r := s.Generate(GenerateOptions{ForcedProfile: domain.ProfileComfort})
	veg := r.Ingredients[domain.CategoryVegetables]

	next := s.ChangeProfile(r, domain.ProfileItalian, map[domain.Category][]domain.Ingredient{
		domain.CategoryVegetables: veg,
	})
	assert.Equal(t, domain.ProfileItalian, next.Profile)
	assert.Equal(t, veg, next.Ingredients[domain.CategoryVegetables])
	assert.Equal(t, "Marinara", next.Ingredients[domain.CategoryBinder][0].Name)

}

func TestChangeProfileSameProfileRegenerates(t *testing.T) {
	s := newSelector(5)
	r := s.Generate(GenerateOptions{Chaos: true})
	r = s.AddSlot(r, domain.CategoryVegetables, true)
	before := r.Clone()
	second := r.Ingredients[domain.CategoryVegetables][1]

	r.Profile = domain.ProfileComfort
	next := s.ChangeProfile(r, domain.ProfileComfort, map[domain.Category][]domain.Ingredient{
		domain.CategoryVegetables: {second},
	})
	assert.Equal(t, domain.ProfileComfort, next.Profile)
	assert.Equal(t, []domain.Ingredient{second}, next.Ingredients[domain.CategoryVegetables],
		"locked slot is packed to the front even without a profile change")
	assert.Equal(t, "Egg Noodles", next.Ingredients[domain.CategoryStarch][0].Name)
	assert.Equal(t, before.Ingredients, r.Ingredients, "input untouched")
}

func TestRename(t *testing.T) {
	r := newSelector(1).Generate(GenerateOptions{})
	assert.Equal(t, "Leftover Surprise", Rename(r, "Leftover Surprise").Name)
}

func TestCategoryStats(t *testing.T) {
	s := newSelector(1)

	assert.Equal(t, Stats{Count: 2}, s.CategoryStats(domain.CategoryVegetables, domain.ProfileItalian, false))
	assert.Equal(t, Stats{Count: 4}, s.CategoryStats(domain.CategoryVegetables, domain.ProfileItalian, true))
	assert.Equal(t, Stats{Count: 4}, s.CategoryStats(domain.CategoryVegetables, domain.ProfileBBQ, false))
	assert.Equal(t, Stats{Count: 0}, s.CategoryStats("dessert", domain.ProfileBBQ, false))
}

func TestSeededRandDeterministic(t *testing.T) {
	a := NewSeededRand(12345)
	b := NewSeededRand(12345)
	for i := 0; i < 20; i++ {
		require.Equal(t, a.IntN(100000), b.IntN(100000), "mismatch at %d", i)
	}
	assert.NotEqual(t, seedWord(99, "a"), seedWord(99, "b"))
}

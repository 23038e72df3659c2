package display

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/hammamikhairi/casseroll/internal/domain"
	"github.com/hammamikhairi/casseroll/internal/selection"
)

func fixtureTable() *domain.Table {
	locks := domain.LockState{}
	locks.Lock(domain.CategoryVegetables, 1)
	return &domain.Table{
		ID: "fixture",
		Recipe: domain.Recipe{
			Name:    "Nonna's Casserole",
			Profile: domain.ProfileItalian,
			Ingredients: map[domain.Category][]domain.Ingredient{
				domain.CategoryStarch:  {{ID: "starch-1", Name: "Penne"}},
				domain.CategoryProtein: {{ID: "protein-5", Name: "Italian Sausage"}},
				domain.CategoryVegetables: {
					{ID: "vegetables-4", Name: "Spinach"},
					{ID: "vegetables-11", Name: "Mushrooms"},
				},
				domain.CategoryBinder: {{ID: "binder-2", Name: "Marinara"}},
				domain.CategoryTopper: {domain.EmptyIngredient},
			},
		},
		Locks:         locks,
		ProfileLocked: true,
		Rolls:         3,
	}
}

func fixtureStats() map[domain.Category]selection.Stats {
	return map[domain.Category]selection.Stats{
		domain.CategoryStarch:     {Count: 4},
		domain.CategoryProtein:    {Count: 1},
		domain.CategoryVegetables: {Count: 3},
		domain.CategoryBinder:     {Count: 2},
		domain.CategoryTopper:     {Count: 0},
	}
}

func TestFormatRecipeGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "plain_recipe", []byte(FormatRecipe(fixtureTable(), fixtureStats())))
}

func TestRecipeViewJSON(t *testing.T) {
	data, err := json.Marshal(NewRecipeView(fixtureTable(), nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back RecipeView
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back.Categories) != len(domain.Categories) {
		t.Fatalf("expected %d categories, got %d", len(domain.Categories), len(back.Categories))
	}
	for _, c := range back.Categories {
		if c.Pool != nil {
			t.Fatalf("%s: pool should be omitted without stats", c.Key)
		}
	}
	veg := back.Categories[2]
	if veg.Key != domain.CategoryVegetables || !veg.Slots[1].Locked || veg.Slots[0].Locked {
		t.Fatalf("unexpected vegetables view: %+v", veg)
	}
	if !back.Categories[4].Slots[0].Empty {
		t.Fatal("empty marker not flagged")
	}
	if strings.Contains(string(data), `"pool"`) {
		t.Fatal("pool key present without stats")
	}
}

func TestRenderCard(t *testing.T) {
	out := RenderCard(fixtureTable(), fixtureStats())
	for _, want := range []string{"Nonna's Casserole", "Italian", "cuisine locked", "Mushrooms", "Empty", "3 in pool"} {
		if !strings.Contains(out, want) {
			t.Errorf("card is missing %q:\n%s", want, out)
		}
	}
}

func TestRenderOptions(t *testing.T) {
	all := []domain.Ingredient{
		{ID: "vegetables-4", Name: "Spinach", Tags: []string{"italian"}},
		{ID: "vegetables-9", Name: "Okra", Tags: []string{"cajun"}},
		{ID: "vegetables-11", Name: "Mushrooms"},
	}
	pool := []domain.Ingredient{all[0], all[2]}
	out := RenderOptions("Vegetables", all, pool, []string{"vegetables-11"})
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "2 of 3 in pool") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "1. Spinach") || !strings.Contains(lines[1], "italian") {
		t.Errorf("unexpected first entry %q", lines[1])
	}
	if !strings.Contains(lines[2], "2. Okra") {
		t.Errorf("out-of-pool entries keep their number: %q", lines[2])
	}
	if !strings.Contains(lines[3], "on the table") {
		t.Errorf("current ingredient not marked: %q", lines[3])
	}
}

package conversation

import (
	"strings"

	"github.com/hammamikhairi/casseroll/internal/domain"
	"github.com/hammamikhairi/casseroll/internal/fuzzy"
)

var categoryAliases = map[string]domain.Category{
	"veg":       domain.CategoryVegetables,
	"veggie":    domain.CategoryVegetables,
	"veggies":   domain.CategoryVegetables,
	"vegetable": domain.CategoryVegetables,
	"greens":    domain.CategoryVegetables,
	"meat":      domain.CategoryProtein,
	"prot":      domain.CategoryProtein,
	"carb":      domain.CategoryStarch,
	"carbs":     domain.CategoryStarch,
	"base":      domain.CategoryStarch,
	"sauce":     domain.CategoryBinder,
	"glue":      domain.CategoryBinder,
	"top":       domain.CategoryTopper,
	"topping":   domain.CategoryTopper,
	"toppings":  domain.CategoryTopper,
	"crunch":    domain.CategoryTopper,
}

var profileAliases = map[string]domain.Profile{
	"euro":      domain.ProfileEasternEuro,
	"eastern":   domain.ProfileEasternEuro,
	"polish":    domain.ProfileEasternEuro,
	"barbecue":  domain.ProfileBBQ,
	"southern":  domain.ProfileComfort,
	"tex-mex":   domain.ProfileMexican,
	"texmex":    domain.ProfileMexican,
	"creole":    domain.ProfileCajun,
	"greek":     domain.ProfileMediterranean,
	"med":       domain.ProfileMediterranean,
	"brunch":    domain.ProfileBreakfast,
	"diner":     domain.ProfileAmerican,
	"usa":       domain.ProfileAmerican,
	"pan-asian": domain.ProfileAsian,
}

// ResolveCategory maps user text (key, label, alias or a near miss of
// either) to a category.
func ResolveCategory(word string) (domain.Category, bool) {
	w := strings.ToLower(strings.TrimSpace(word))
	if c, ok := categoryAliases[w]; ok {
		return c, true
	}

	keys := domain.CategoryKeys()
	names := make([]string, 0, 2*len(keys))
	targets := make([]domain.Category, 0, 2*len(keys))
	for _, info := range domain.Categories {
		names = append(names, string(info.Key), info.Label)
		targets = append(targets, info.Key, info.Key)
	}
	if m, ok := bestDistinct(w, names, func(i int) string { return string(targets[i]) }); ok {
		return targets[m], true
	}
	return "", false
}

// ResolveProfile maps user text to a real cuisine profile. Chaos is not a
// profile here; callers handle it as its own command.
func ResolveProfile(word string) (domain.Profile, bool) {
	w := strings.ToLower(strings.TrimSpace(word))
	if p, ok := profileAliases[w]; ok {
		return p, true
	}

	names := make([]string, 0, 2*len(domain.Profiles))
	targets := make([]domain.Profile, 0, 2*len(domain.Profiles))
	for _, info := range domain.Profiles {
		names = append(names, string(info.Key), info.Label)
		targets = append(targets, info.Key, info.Key)
	}
	if m, ok := bestDistinct(w, names, func(i int) string { return string(targets[i]) }); ok {
		return targets[m], true
	}
	return "", false
}

// bestDistinct is fuzzy.Best, except that a near tie between two names
// for the same target still counts as a match.
func bestDistinct(query string, names []string, target func(int) string) (int, bool) {
	ranked := fuzzy.Rank(query, names)
	if len(ranked) == 0 {
		return 0, false
	}
	best := ranked[0]
	for _, m := range ranked[1:] {
		if best.Score == 1.0 || best.Score-m.Score >= 0.05 {
			break
		}
		if target(m.Index) != target(best.Index) {
			return 0, false
		}
	}
	return best.Index, true
}

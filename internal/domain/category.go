package domain

// Category is one recipe component group (starch, protein, ...).
type Category string

const (
	CategoryStarch     Category = "starch"
	CategoryProtein    Category = "protein"
	CategoryVegetables Category = "vegetables"
	CategoryBinder     Category = "binder"
	CategoryTopper     Category = "topper"
)

// MaxSlots caps how many ingredients a multi category may hold.
const MaxSlots = 3

// CategoryInfo holds the display metadata of a category.
type CategoryInfo struct {
	Key   Category
	Label string
	Icon  string
	Multi bool // may hold more than one slot
}

// Categories is the fixed, ordered category enumeration.
var Categories = []CategoryInfo{
	{Key: CategoryStarch, Label: "Starch Base", Icon: "🍚"},
	{Key: CategoryProtein, Label: "Protein", Icon: "🍗", Multi: true},
	{Key: CategoryVegetables, Label: "Vegetables", Icon: "🥕", Multi: true},
	{Key: CategoryBinder, Label: "Creamy Binder", Icon: "🥣"},
	{Key: CategoryTopper, Label: "Crispy Topper", Icon: "✨", Multi: true},
}

// CategoryKeys returns the category keys in enumeration order.
func CategoryKeys() []Category {
	out := make([]Category, len(Categories))
	for i, c := range Categories {
		out[i] = c.Key
	}
	return out
}

// LookupCategory returns the metadata for a category key.
func LookupCategory(c Category) (CategoryInfo, bool) {
	for _, info := range Categories {
		if info.Key == c {
			return info, true
		}
	}
	return CategoryInfo{}, false
}

// IsMulti reports whether the category supports more than one slot.
func (c Category) IsMulti() bool {
	info, ok := LookupCategory(c)
	return ok && info.Multi
}

// Label returns the display label, or the raw key for unknown categories.
func (c Category) Label() string {
	if info, ok := LookupCategory(c); ok {
		return info.Label
	}
	return string(c)
}

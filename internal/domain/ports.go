package domain

import "context"

// Catalog provides the static ingredient lists. Implementations can be
// embedded, file-backed, or built in tests.
type Catalog interface {
	// Ingredients returns the full list for a category in catalog order.
	// Unknown categories yield an empty list.
	Ingredients(c Category) []Ingredient
	// Lookup finds an ingredient of the category by id, exact name, or
	// closest fuzzy name match.
	Lookup(c Category, query string) (Ingredient, error)
}

// TableStore keeps roller sessions. Implementations can be in-memory or any
// other backend; nothing outlives the process today.
type TableStore interface {
	Save(ctx context.Context, table *Table) error
	Load(ctx context.Context, id string) (*Table, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Table, error)
}

// IntentParser converts raw user input into structured intents.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}

// Notifier delivers messages to the user.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}

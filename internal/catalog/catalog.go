// Package catalog provides the static ingredient catalog.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hammamikhairi/casseroll/internal/domain"
	"github.com/hammamikhairi/casseroll/internal/fuzzy"
	"github.com/hammamikhairi/casseroll/internal/logger"
)

// Compile-time interface check.
var _ domain.Catalog = (*Catalog)(nil)

// RawItem is one catalog record as written in a catalog file.
type RawItem struct {
	Name string   `yaml:"name" json:"name"`
	Tags []string `yaml:"tags" json:"tags"`
}

// Raw maps a category key to its ordered records.
type Raw map[domain.Category][]RawItem

// Catalog holds the processed ingredient lists. It is built once and never
// modified afterwards, so reads need no locking.
type Catalog struct {
	items   map[domain.Category][]domain.Ingredient
	unknown []string // category keys present in the source but not in the enumeration
	log     *logger.Logger
}

// New processes raw records into a catalog, assigning each ingredient the
// id "<category>-<index>". Keys outside the category enumeration are kept
// aside and reported by Unknown.
func New(raw Raw, log *logger.Logger) *Catalog {
	c := &Catalog{
		items: make(map[domain.Category][]domain.Ingredient, len(domain.Categories)),
		log:   log,
	}
	for key := range raw {
		if _, ok := domain.LookupCategory(key); !ok {
			c.unknown = append(c.unknown, string(key))
			log.Warn("catalog: ignoring unknown category %q", key)
		}
	}
	sort.Strings(c.unknown)
	for _, cat := range domain.CategoryKeys() {
		records := raw[cat]
		list := make([]domain.Ingredient, 0, len(records))
		for idx, rec := range records {
			list = append(list, domain.Ingredient{
				ID:   fmt.Sprintf("%s-%d", cat, idx),
				Name: strings.TrimSpace(rec.Name),
				Tags: normalizeTags(rec.Tags),
			})
		}
		c.items[cat] = list
		if len(list) == 0 {
			log.Warn("catalog: category %q has no ingredients", cat)
		}
	}
	log.Debug("catalog loaded: %d ingredients", c.Size())
	return c
}

// Ingredients returns the full list for a category in catalog order.
func (c *Catalog) Ingredients(cat domain.Category) []domain.Ingredient {
	list := c.items[cat]
	out := make([]domain.Ingredient, len(list))
	copy(out, list)
	return out
}

// Lookup finds an ingredient by id, then by name. Names are matched
// case-insensitively, falling back to the closest fuzzy match.
func (c *Catalog) Lookup(cat domain.Category, query string) (domain.Ingredient, error) {
	list, ok := c.items[cat]
	if !ok {
		return domain.Ingredient{}, fmt.Errorf("%w: %s", domain.ErrUnknownCategory, cat)
	}
	q := strings.TrimSpace(query)
	for _, ing := range list {
		if ing.ID == q {
			return ing, nil
		}
	}

	names := make([]string, len(list))
	for i, ing := range list {
		names[i] = ing.Name
	}
	m, ok := fuzzy.Best(q, names)
	if !ok {
		c.log.Debug("catalog: no %s matching %q", cat, q)
		return domain.Ingredient{}, fmt.Errorf("%s %q: %w", cat, q, domain.ErrNotFound)
	}
	return list[m.Index], nil
}

// Size returns the total number of ingredients across all categories.
func (c *Catalog) Size() int {
	n := 0
	for _, list := range c.items {
		n += len(list)
	}
	return n
}

// Unknown returns category keys from the source that are not part of the
// category enumeration.
func (c *Catalog) Unknown() []string {
	return append([]string(nil), c.unknown...)
}

func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

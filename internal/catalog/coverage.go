package catalog

import "github.com/hammamikhairi/casseroll/internal/domain"

// Cell describes one category × profile combination.
type Cell struct {
	Category domain.Category
	Profile  domain.Profile
	Tagged   int  // ingredients carrying the profile tag
	Total    int  // ingredients in the category
	Fallback bool // no tagged ingredient, so the pool is the full list
}

// Coverage reports, for every category and real profile, how many
// ingredients are tagged and whether that profile falls back to the full
// list. Rows follow the category enumeration, columns the profile list.
func (c *Catalog) Coverage() [][]Cell {
	rows := make([][]Cell, 0, len(domain.Categories))
	for _, cat := range domain.CategoryKeys() {
		list := c.items[cat]
		row := make([]Cell, 0, len(domain.Profiles))
		for _, p := range domain.ProfileKeys() {
			tagged := 0
			for _, ing := range list {
				if ing.HasTag(p) {
					tagged++
				}
			}
			row = append(row, Cell{
				Category: cat,
				Profile:  p,
				Tagged:   tagged,
				Total:    len(list),
				Fallback: tagged == 0,
			})
		}
		rows = append(rows, row)
	}
	return rows
}

// Gaps returns only the cells that fall back.
func (c *Catalog) Gaps() []Cell {
	var out []Cell
	for _, row := range c.Coverage() {
		for _, cell := range row {
			if cell.Fallback {
				out = append(out, cell)
			}
		}
	}
	return out
}

package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/casseroll/internal/domain"
	"github.com/hammamikhairi/casseroll/internal/selection"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fef3c7")).
			Bold(true)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	lockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5")).
			Italic(true)
)

// RenderCard renders the table's recipe as a bordered card. stats may be
// nil; when present each category header shows its pool size.
func RenderCard(t *domain.Table, stats map[domain.Category]selection.Stats) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(t.Recipe.Name))
	b.WriteByte('\n')
	b.WriteString(secondaryStyle.Render(subtitle(t)))
	b.WriteByte('\n')

	for _, info := range domain.Categories {
		b.WriteByte('\n')
		header := info.Icon + " " + info.Label
		if info.Multi {
			header += fmt.Sprintf(" (%d/%d)", len(t.Recipe.Ingredients[info.Key]), domain.MaxSlots)
		}
		b.WriteString(categoryStyle.Render(header))
		if s, ok := stats[info.Key]; ok {
			b.WriteString(secondaryStyle.Render(fmt.Sprintf("  %d in pool", s.Count)))
		}
		b.WriteByte('\n')

		for i, ing := range t.Recipe.Ingredients[info.Key] {
			line := fmt.Sprintf("  %d. ", i+1)
			switch {
			case ing.IsEmpty():
				line += emptyStyle.Render(ing.Name + " (catalog has nothing here)")
			case t.Locks.IsLocked(info.Key, i):
				line += lockedStyle.Render(ing.Name + " 🔒")
			default:
				line += primaryStyle.Render(ing.Name)
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderOptions renders a category's full ingredient list with 1-based
// numbers (the numbers manual selection accepts). Ingredients outside the
// current pool are dimmed and the ones already on the recipe are marked.
func RenderOptions(title string, all, pool []domain.Ingredient, current []string) string {
	inPool := make(map[string]bool, len(pool))
	for _, ing := range pool {
		inPool[ing.ID] = true
	}
	inUse := make(map[string]bool, len(current))
	for _, id := range current {
		inUse[id] = true
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%d of %d in pool)", title, len(pool), len(all))))
	b.WriteByte('\n')
	for i, ing := range all {
		line := fmt.Sprintf("  %2d. %s", i+1, ing.Name)
		switch {
		case inUse[ing.ID]:
			b.WriteString(lockedStyle.Render(line + "  ← on the table"))
		case inPool[ing.ID]:
			b.WriteString(primaryStyle.Render(line))
		default:
			b.WriteString(dimStyle.Render(line))
		}
		if len(ing.Tags) > 0 {
			b.WriteString(secondaryStyle.Render("  " + strings.Join(ing.Tags, ", ")))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func subtitle(t *domain.Table) string {
	parts := []string{t.Recipe.Profile.Icon() + " " + t.Recipe.Profile.Label()}
	if t.ProfileLocked {
		parts = append(parts, "cuisine locked")
	}
	if t.Chaos && !t.Recipe.Profile.IsChaos() {
		parts = append(parts, "chaos on")
	}
	parts = append(parts, fmt.Sprintf("roll #%d", t.Rolls))
	return strings.Join(parts, " · ")
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/hammamikhairi/casseroll/internal/display"
	"github.com/hammamikhairi/casseroll/internal/domain"
	"github.com/hammamikhairi/casseroll/internal/engine"
	"github.com/hammamikhairi/casseroll/internal/logger"
)

// screen is the slice of display.UI the table loop prints through.
type screen interface {
	Println(a ...interface{})
	PrintChat(text string)
	PrintHeader(text string)
	PrintLine(text string)
	PrintHint(text string)
	PrintUrgent(text string)
	Quit()
}

// playApp runs one interactive table.
type playApp struct {
	engine   *engine.Engine
	parser   domain.IntentParser
	notifier domain.Notifier
	log      *logger.Logger
	out      screen
	tableID  string
	tipIdx   int
}

// begin rolls the first recipe.
func (a *playApp) begin(ctx context.Context, start engine.StartOptions) error {
	t, err := a.engine.Start(ctx, start)
	if err != nil {
		return err
	}
	a.tableID = t.ID
	a.out.PrintChat(lineWelcome())
	a.showCard(t)
	return nil
}

func (a *playApp) run(ctx context.Context, inputs <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case input, ok := <-inputs:
			if !ok {
				return
			}
			if !a.handle(ctx, input) {
				return
			}
		}
	}
}

// handle processes one input line and reports whether the loop goes on.
func (a *playApp) handle(ctx context.Context, input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return true
	}

	intent, err := a.parser.Parse(ctx, input)
	if err != nil {
		a.refuse(ctx, err)
		return true
	}
	a.log.Debug("intent: %s (category=%q, index=%d, payload=%q)", intent.Type, intent.Category, intent.Index, intent.Payload)

	if intent.Type == domain.IntentQuit {
		a.quit(ctx)
		return false
	}
	if err := a.dispatch(ctx, intent); err != nil {
		a.refuse(ctx, err)
	}
	return true
}

func (a *playApp) dispatch(ctx context.Context, intent *domain.Intent) error {
	switch intent.Type {
	case domain.IntentHelp:
		a.showHelp()
	case domain.IntentRoll:
		return a.roll(ctx)
	case domain.IntentReroll:
		return a.reroll(ctx, intent)
	case domain.IntentLock:
		return a.lock(ctx, intent)
	case domain.IntentLockCuisine:
		return a.lockCuisine(ctx)
	case domain.IntentAdd:
		return a.add(ctx, intent.Category)
	case domain.IntentRemove:
		return a.remove(ctx, intent)
	case domain.IntentSelect:
		return a.selectIngredient(ctx, intent)
	case domain.IntentOptions:
		return a.options(ctx, intent.Category)
	case domain.IntentCuisines:
		return a.cuisines(ctx)
	case domain.IntentCuisine:
		return a.cuisine(ctx, domain.Profile(intent.Payload))
	case domain.IntentChaos:
		return a.chaos(ctx, intent.Payload)
	case domain.IntentRename:
		return a.rename(ctx, intent.Payload)
	case domain.IntentShow:
		return a.show(ctx)
	case domain.IntentStats:
		return a.stats(ctx)
	case domain.IntentTips:
		a.tip()
	default:
		a.out.PrintChat(lineUnknown(intent.Payload))
	}
	return nil
}

// refuse explains a failed command.
func (a *playApp) refuse(ctx context.Context, err error) {
	msg, ok := lineRefusal(err)
	if !ok {
		a.log.Error("command failed: %v", err)
	}
	a.log.Debug("refused: %v", err)
	a.notifier.NotifyUrgent(ctx, msg)
}

func (a *playApp) roll(ctx context.Context) error {
	t, err := a.engine.Roll(ctx, a.tableID)
	if err != nil {
		return err
	}
	a.showCard(t)
	return nil
}

func (a *playApp) reroll(ctx context.Context, intent *domain.Intent) error {
	if intent.Index == domain.NoIndex {
		t, err := a.engine.RerollCategory(ctx, a.tableID, intent.Category)
		if err != nil {
			return err
		}
		a.showCard(t)
		return nil
	}

	t, err := a.engine.Reroll(ctx, a.tableID, intent.Category, intent.Index)
	if err != nil {
		return err
	}
	ing := t.Recipe.Ingredients[intent.Category][intent.Index]
	a.notifier.Notify(ctx, lineRerolled(intent.Category, intent.Index, ing.Name))
	a.showCard(t)
	return nil
}

// slotIndex fills in a missing slot number: single-slot categories mean
// slot 1, anything else has to be explicit.
func (a *playApp) slotIndex(ctx context.Context, cat domain.Category, idx int) (int, error) {
	if idx != domain.NoIndex {
		return idx, nil
	}
	t, err := a.engine.Table(ctx, a.tableID)
	if err != nil {
		return 0, err
	}
	if n := len(t.Recipe.Ingredients[cat]); n != 1 {
		return 0, fmt.Errorf("%s has %d slots, say which: %w", cat, n, domain.ErrSlotOutOfRange)
	}
	return 0, nil
}

func (a *playApp) lock(ctx context.Context, intent *domain.Intent) error {
	idx, err := a.slotIndex(ctx, intent.Category, intent.Index)
	if err != nil {
		return err
	}
	locked, err := a.engine.ToggleLock(ctx, a.tableID, intent.Category, idx)
	if err != nil {
		return err
	}
	t, err := a.engine.Table(ctx, a.tableID)
	if err != nil {
		return err
	}
	name := t.Recipe.Ingredients[intent.Category][idx].Name
	if locked {
		a.notifier.Notify(ctx, lineLocked(intent.Category, idx, name))
	} else {
		a.notifier.Notify(ctx, lineUnlocked(name))
	}
	return nil
}

func (a *playApp) lockCuisine(ctx context.Context) error {
	locked, err := a.engine.ToggleProfileLock(ctx, a.tableID)
	if err != nil {
		return err
	}
	a.notifier.Notify(ctx, lineCuisineLocked(locked))
	return nil
}

func (a *playApp) add(ctx context.Context, cat domain.Category) error {
	t, err := a.engine.Add(ctx, a.tableID, cat)
	if err != nil {
		return err
	}
	slots := t.Recipe.Ingredients[cat]
	a.notifier.Notify(ctx, lineAdded(cat, slots[len(slots)-1].Name))
	a.showCard(t)
	return nil
}

func (a *playApp) remove(ctx context.Context, intent *domain.Intent) error {
	idx := intent.Index
	if idx == domain.NoIndex {
		t, err := a.engine.Table(ctx, a.tableID)
		if err != nil {
			return err
		}
		idx = len(t.Recipe.Ingredients[intent.Category]) - 1
	}
	t, err := a.engine.Remove(ctx, a.tableID, intent.Category, idx)
	if err != nil {
		return err
	}
	a.showCard(t)
	return nil
}

func (a *playApp) selectIngredient(ctx context.Context, intent *domain.Intent) error {
	idx, err := a.slotIndex(ctx, intent.Category, intent.Index)
	if err != nil {
		return err
	}
	t, err := a.engine.Select(ctx, a.tableID, intent.Category, idx, intent.Payload)
	if err != nil {
		return err
	}
	a.notifier.Notify(ctx, lineSelected(intent.Category, idx, t.Recipe.Ingredients[intent.Category][idx].Name))
	a.showCard(t)
	return nil
}

func (a *playApp) options(ctx context.Context, cat domain.Category) error {
	pool, err := a.engine.Options(ctx, a.tableID, cat)
	if err != nil {
		return err
	}
	t, err := a.engine.Table(ctx, a.tableID)
	if err != nil {
		return err
	}
	a.out.Println(display.RenderOptions(cat.Label(), a.engine.Catalog(cat), pool, t.Recipe.SlotIDs(cat)))
	a.out.PrintHint(fmt.Sprintf("select %s [slot] <number|name> puts one on the table", cat))
	return nil
}

func (a *playApp) cuisines(ctx context.Context) error {
	t, err := a.engine.Table(ctx, a.tableID)
	if err != nil {
		return err
	}
	a.out.PrintHeader("Cuisines:")
	for _, p := range domain.Profiles {
		line := fmt.Sprintf("%s %-22s %s", p.Icon, p.Label, p.Key)
		if p.Key == t.Recipe.Profile {
			line += "  ← current"
		}
		a.out.PrintLine(line)
	}
	a.out.PrintHint("cuisine <name> switches; chaos on/off ignores cuisines altogether")
	return nil
}

func (a *playApp) cuisine(ctx context.Context, profile domain.Profile) error {
	t, err := a.engine.SetCuisine(ctx, a.tableID, profile)
	if err != nil {
		return err
	}
	a.notifier.Notify(ctx, lineCuisine(profile))
	a.showCard(t)
	return nil
}

func (a *playApp) chaos(ctx context.Context, payload string) error {
	t, err := a.engine.Table(ctx, a.tableID)
	if err != nil {
		return err
	}
	on := !t.Chaos
	switch payload {
	case "on":
		on = true
	case "off":
		on = false
	}
	if _, err := a.engine.SetChaos(ctx, a.tableID, on); err != nil {
		return err
	}
	a.notifier.Notify(ctx, lineChaos(on))
	return nil
}

func (a *playApp) rename(ctx context.Context, name string) error {
	t, err := a.engine.Rename(ctx, a.tableID, name)
	if err != nil {
		return err
	}
	a.notifier.Notify(ctx, lineRenamed(t.Recipe.Name))
	return nil
}

func (a *playApp) show(ctx context.Context) error {
	t, err := a.engine.Table(ctx, a.tableID)
	if err != nil {
		return err
	}
	a.showCard(t)
	return nil
}

func (a *playApp) stats(ctx context.Context) error {
	stats, err := a.engine.Stats(ctx, a.tableID)
	if err != nil {
		return err
	}
	a.out.PrintHeader("Pool sizes:")
	for _, info := range domain.Categories {
		a.out.PrintLine(fmt.Sprintf("%s %-14s %d", info.Icon, info.Label, stats[info.Key].Count))
	}
	return nil
}

func (a *playApp) tip() {
	a.out.PrintChat("Tip: " + display.Tips[a.tipIdx%len(display.Tips)])
	a.tipIdx++
}

func (a *playApp) quit(ctx context.Context) {
	if a.tableID != "" {
		if err := a.engine.End(ctx, a.tableID); err != nil {
			a.log.Error("ending table: %v", err)
		}
		a.tableID = ""
	}
	a.out.PrintChat(lineBye())
	a.out.Quit()
}

func (a *playApp) showCard(t *domain.Table) {
	a.out.Println(display.RenderCard(t, a.engine.StatsFor(t)))
	for _, info := range domain.Categories {
		for _, ing := range t.Recipe.Ingredients[info.Key] {
			if ing.IsEmpty() {
				a.out.PrintUrgent(lineEmptyCategory(strings.ToLower(info.Label)))
			}
		}
	}
}

func (a *playApp) showHelp() {
	a.out.PrintHeader("Commands:")
	a.out.PrintLine("roll / r                    Reroll everything that isn't locked")
	a.out.PrintLine("reroll <cat> [n]            Reroll slot n, or every unlocked slot")
	a.out.PrintLine("lock <cat> [n]              Lock or unlock a slot")
	a.out.PrintLine("lock cuisine                Keep the cuisine on full rolls")
	a.out.PrintLine("add <cat>                   Add a slot (protein, veg, topper; max 3)")
	a.out.PrintLine("remove <cat> [n]            Drop slot n, or the last one")
	a.out.PrintLine("options <cat>               List a category, pool marked")
	a.out.PrintLine("select <cat> [n] <pick>     Put an ingredient (number or name) in a slot")
	a.out.PrintLine("cuisines / cuisine <name>   List or switch cuisines")
	a.out.PrintLine("chaos [on|off]              Ignore cuisine tags on the next rolls")
	a.out.PrintLine("rename [name]               Rename, or draw a new name")
	a.out.PrintLine("show / stats / tips         Card, pool sizes, a casserole tip")
	a.out.PrintLine("quit                        Leave the table")
	a.out.PrintHint("Categories: starch, protein, veg, binder, topper. Slots count from 1.")
}

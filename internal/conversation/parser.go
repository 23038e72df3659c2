// Package conversation provides intent parsing and user notification implementations.
package conversation

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hammamikhairi/casseroll/internal/domain"
	"github.com/hammamikhairi/casseroll/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches table commands using keywords and simple patterns.
// Slot numbers typed by the user are 1-based; intents carry 0-based
// indices.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

// patternRule optionally captures named groups: cat (a category word),
// n (a slot number) and rest (free text payload).
type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(roll|r|again|go|new|shuffle)$`), domain.IntentRoll},
		{regexp.MustCompile(`(?i)^(reroll|rr|re)\s+(?P<cat>\S+)(?:\s+(?P<n>\d+))?$`), domain.IntentReroll},
		{regexp.MustCompile(`(?i)^(lock|unlock|l)\s+(cuisine|profile|style)$`), domain.IntentLockCuisine},
		{regexp.MustCompile(`(?i)^(lock|unlock|l)\s+(?P<cat>\S+)(?:\s+(?P<n>\d+))?$`), domain.IntentLock},
		{regexp.MustCompile(`(?i)^(?:(?:add|more)\s+|\+\s*)(?P<cat>\S+)$`), domain.IntentAdd},
		{regexp.MustCompile(`(?i)^(?:(?:remove|rm|drop)\s+|-\s*)(?P<cat>\S+)(?:\s+(?P<n>\d+))?$`), domain.IntentRemove},
		{regexp.MustCompile(`(?i)^(select|pick|set|use)\s+(?P<cat>\S+)(?:\s+(?P<n>\d+))?\s+(?P<rest>.+)$`), domain.IntentSelect},
		{regexp.MustCompile(`(?i)^(options|opts|o|pool)\s+(?P<cat>\S+)$`), domain.IntentOptions},
		{regexp.MustCompile(`(?i)^(cuisines|profiles|styles)$`), domain.IntentCuisines},
		{regexp.MustCompile(`(?i)^(cuisine|profile|style|c)\s+(?P<rest>.+)$`), domain.IntentCuisine},
		{regexp.MustCompile(`(?i)^(chaos|wild|wild magic)(?:\s+(?P<rest>on|off))?$`), domain.IntentChaos},
		{regexp.MustCompile(`(?i)^(rename|name)(?:\s+(?P<rest>.+))?$`), domain.IntentRename},
		{regexp.MustCompile(`(?i)^(show|recipe|card|s)$`), domain.IntentShow},
		{regexp.MustCompile(`(?i)^(stats|pools)$`), domain.IntentStats},
		{regexp.MustCompile(`(?i)^(tips|tip|hint)$`), domain.IntentTips},
		{regexp.MustCompile(`(?i)^(quit|exit|q|bye)$`), domain.IntentQuit},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.IntentHelp},
	}
	return p
}

// Parse converts user input into an intent. Commands that name an unknown
// category, cuisine or slot number return an error wrapping the matching
// domain error.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown, Index: domain.NoIndex}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		p.log.Debug("matched intent: %s", rule.intent)
		intent := &domain.Intent{Type: rule.intent, Index: domain.NoIndex}
		if err := fill(intent, rule.regex, m); err != nil {
			return nil, err
		}
		return intent, nil
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Index: domain.NoIndex, Payload: trimmed}, nil
}

func fill(intent *domain.Intent, re *regexp.Regexp, m []string) error {
	for i, name := range re.SubexpNames() {
		v := strings.TrimSpace(m[i])
		if v == "" {
			continue
		}
		switch name {
		case "cat":
			cat, ok := ResolveCategory(v)
			if !ok {
				return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, v)
			}
			intent.Category = cat
		case "n":
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return fmt.Errorf("slot %q: %w", v, domain.ErrSlotOutOfRange)
			}
			intent.Index = n - 1
		case "rest":
			intent.Payload = v
		}
	}

	switch intent.Type {
	case domain.IntentCuisine:
		if isChaosWord(intent.Payload) {
			intent.Type = domain.IntentChaos
			intent.Payload = "on"
			return nil
		}
		profile, ok := ResolveProfile(intent.Payload)
		if !ok {
			return fmt.Errorf("%w: %q", domain.ErrUnknownProfile, intent.Payload)
		}
		intent.Payload = string(profile)
	case domain.IntentChaos:
		intent.Payload = strings.ToLower(intent.Payload)
	}
	return nil
}

func isChaosWord(s string) bool {
	switch strings.ToLower(s) {
	case "chaos", "wild", "wild magic", "random":
		return true
	}
	return false
}

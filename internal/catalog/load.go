package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/casseroll/internal/domain"
	"github.com/hammamikhairi/casseroll/internal/logger"
)

//go:embed data/casserole.yaml
var builtin []byte

// Builtin returns the catalog shipped with the binary.
func Builtin(log *logger.Logger) (*Catalog, error) {
	raw, err := ParseYAML(builtin)
	if err != nil {
		return nil, fmt.Errorf("parsing built-in catalog: %w", err)
	}
	return New(raw, log), nil
}

// Load reads a catalog file. Files ending in .json are parsed as JSON,
// everything else as YAML. An empty path loads the built-in catalog.
func Load(path string, log *logger.Logger) (*Catalog, error) {
	if path == "" {
		return Builtin(log)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var raw Raw
	if strings.EqualFold(filepath.Ext(path), ".json") {
		raw, err = ParseJSON(data)
	} else {
		raw, err = ParseYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	log.Info("catalog loaded from %s", path)
	return New(raw, log), nil
}

// ErrUnnamedIngredient is returned for a record without a name. Ids are
// positional, so such records cannot simply be skipped.
var ErrUnnamedIngredient = errors.New("ingredient has no name")

// ParseYAML decodes a category → records mapping.
func ParseYAML(data []byte) (Raw, error) {
	var raw Raw
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, domain.ErrEmptyCatalog
	}
	if err := checkNames(raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// ParseJSON decodes the same shape as ParseYAML from JSON. Tags may be
// omitted.
func ParseJSON(data []byte) (Raw, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.New("catalog must be an object keyed by category")
	}

	raw := make(Raw)
	var perr error
	root.ForEach(func(key, value gjson.Result) bool {
		if !value.IsArray() {
			perr = fmt.Errorf("category %q: expected a list", key.String())
			return false
		}
		cat := domain.Category(key.String())
		records := make([]RawItem, 0, len(value.Array()))
		for _, item := range value.Array() {
			name := item.Get("name").String()
			var tags []string
			for _, t := range item.Get("tags").Array() {
				tags = append(tags, t.String())
			}
			records = append(records, RawItem{Name: name, Tags: tags})
		}
		raw[cat] = records
		return true
	})
	if perr != nil {
		return nil, perr
	}
	if len(raw) == 0 {
		return nil, domain.ErrEmptyCatalog
	}
	if err := checkNames(raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func checkNames(raw Raw) error {
	for _, cat := range domain.CategoryKeys() {
		for i, item := range raw[cat] {
			if strings.TrimSpace(item.Name) == "" {
				return fmt.Errorf("%s record %d: %w", cat, i+1, ErrUnnamedIngredient)
			}
		}
	}
	return nil
}

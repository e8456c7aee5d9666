// Package catalog reads the stand's menu from TOML.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"stand-ledger/internal/domain/sale"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultCatalog string

type file struct {
	Items []entry `toml:"item"`
}

type entry struct {
	ID          int64  `toml:"id"`
	Name        string `toml:"name"`
	Price       string `toml:"price"`
	Description string `toml:"description"`
}

// Default returns the embedded menu.
func Default() ([]sale.Item, error) {
	return Parse(defaultCatalog)
}

// Load reads the catalog at path, or the embedded menu when path is empty.
func Load(path string) ([]sale.Item, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	items, err := Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return items, nil
}

// Parse decodes and validates a TOML catalog. Ids and names must be unique.
func Parse(data string) ([]sale.Item, error) {
	var f file
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown catalog keys: %v", undecoded)
	}

	items := make([]sale.Item, 0, len(f.Items))
	ids := make(map[int64]struct{}, len(f.Items))
	names := make(map[string]struct{}, len(f.Items))
	for i, e := range f.Items {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("item %d: name is required", i+1)
		}
		if e.ID <= 0 {
			return nil, fmt.Errorf("item %q: id must be positive", name)
		}
		if _, dup := ids[e.ID]; dup {
			return nil, fmt.Errorf("item %q: duplicate id %d", name, e.ID)
		}
		if _, dup := names[name]; dup {
			return nil, fmt.Errorf("duplicate item name %q", name)
		}
		price, err := sale.ParseMoney(e.Price)
		if err != nil {
			return nil, fmt.Errorf("item %q: price: %w", name, err)
		}
		ids[e.ID] = struct{}{}
		names[name] = struct{}{}
		items = append(items, sale.Item{
			ID:          e.ID,
			Name:        name,
			Price:       price,
			Description: strings.TrimSpace(e.Description),
		})
	}
	return items, nil
}

package wardrobecat

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/anvitha/outfit-advisor/internal/domain/wardrobe"
)

// LoadFile reads a JSON clothing catalog from disk. Each entry may omit
// category, tags, age group, or gender; defaults are filled in.
func LoadFile(path string) ([]wardrobe.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes catalog JSON into normalized items.
func Parse(data []byte) ([]wardrobe.Item, error) {
	var items []wardrobe.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	out := make([]wardrobe.Item, 0, len(items))
	for _, item := range items {
		if item.Name == "" {
			continue
		}
		item.ApplyDefaults()
		out = append(out, item)
	}
	return out, nil
}

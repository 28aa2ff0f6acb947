package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// catalogFile is the on-disk shape of the catalog data set.
type catalogFile struct {
	Cards      []*Card     `json:"cards"`
	Archetypes []Archetype `json:"archetypes"`
}

// LoadFile reads and validates a catalog JSON file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	cat, err := New(file.Cards, file.Archetypes)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	return cat, nil
}

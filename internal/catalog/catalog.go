package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"faqbot/internal/domain"
)

// Load reads a FAQ catalog from a JSON file: an array of
// {"question": ..., "answer": ...} objects. It rejects an empty catalog
// with domain.ErrEmptyCatalog and entries whose question is blank.
func Load(path string) ([]domain.CatalogEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes catalog JSON and validates the entries.
func Parse(data []byte) ([]domain.CatalogEntry, error) {
	var entries []domain.CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(entries) == 0 {
		return nil, domain.ErrEmptyCatalog
	}
	for i, entry := range entries {
		if strings.TrimSpace(entry.Question) == "" {
			return nil, fmt.Errorf("catalog entry %d has an empty question", i)
		}
	}
	return entries, nil
}

// Package data holds the embedded seed catalog, recipe and FAQ tables. The JSON
// files are the contract surface shared with the frontend; field names must
// not drift.
package data

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed catalog.json recipes.json faqs.json
var seedFS embed.FS

type SeedItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    float64  `json:"price"`
	Unit     string   `json:"unit"`
	Tags     []string `json:"tags"`
}

type SeedFAQ struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

type SeedRecipe struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
}

// CatalogItems returns the seed catalog in declaration order.
func CatalogItems() ([]SeedItem, error) {
	raw, err := seedFS.ReadFile("catalog.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read seed catalog: %w", err)
	}
	var doc struct {
		Items []SeedItem `json:"items"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed catalog: %w", err)
	}
	return doc.Items, nil
}

// FAQs returns the seed FAQ table in declaration order.
func FAQs() ([]SeedFAQ, error) {
	raw, err := seedFS.ReadFile("faqs.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read seed faqs: %w", err)
	}
	var doc struct {
		FAQs []SeedFAQ `json:"faqs"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed faqs: %w", err)
	}
	return doc.FAQs, nil
}

// Recipes returns the seed recipes in declaration order. Order matters: the
// resolver's fuzzy match takes the first hit.
func Recipes() ([]SeedRecipe, error) {
	raw, err := seedFS.ReadFile("recipes.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read seed recipes: %w", err)
	}
	var doc struct {
		Recipes []SeedRecipe `json:"recipes"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed recipes: %w", err)
	}
	return doc.Recipes, nil
}

package recipe

import (
	"strings"

	"github.com/HackerKing5128/voicecart/internal/data"
)

// Recipe maps a dish name to the catalog items needed to cook it. Recipes are
// static and never mutated at runtime.
type Recipe struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
}

// Resolver matches free-text dish names against the static table. Entries are
// an ordered slice, not a map: when several entries would fuzzy-match, the
// first declared one wins, and that tie-break is part of the contract.
type Resolver struct {
	entries []Recipe
}

// Resolve returns the recipe for a dish name, or nil when nothing matches.
// Match order: exact case-insensitive name first, then the first entry whose
// name contains the query or is contained in it.
func (r *Resolver) Resolve(name string) *Recipe {
	q := strings.ToLower(strings.TrimSpace(name))
	if q == "" {
		return nil
	}

	for i := range r.entries {
		if strings.ToLower(r.entries[i].Name) == q {
			rec := r.entries[i]
			return &rec
		}
	}

	for i := range r.entries {
		key := strings.ToLower(r.entries[i].Name)
		if strings.Contains(key, q) || strings.Contains(q, key) {
			rec := r.entries[i]
			return &rec
		}
	}

	return nil
}

// All returns every recipe in declaration order.
func (r *Resolver) All() []Recipe {
	out := make([]Recipe, len(r.entries))
	copy(out, r.entries)
	return out
}

// NewResolver builds a resolver over explicit entries, kept in order.
func NewResolver(entries []Recipe) *Resolver {
	return &Resolver{entries: entries}
}

// NewSeededResolver builds a resolver from the embedded recipe table.
func NewSeededResolver() (*Resolver, error) {
	seed, err := data.Recipes()
	if err != nil {
		return nil, err
	}
	entries := make([]Recipe, len(seed))
	for i, s := range seed {
		entries[i] = Recipe{
			Name:        s.Name,
			Description: s.Description,
			Items:       s.Items,
		}
	}
	return NewResolver(entries), nil
}

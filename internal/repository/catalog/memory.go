package catalog

import (
	"strings"

	"github.com/HackerKing5128/voicecart/internal/data"
	"github.com/HackerKing5128/voicecart/internal/domains/catalog"
)

// MemoryItemRepo serves the catalog from an in-memory slice kept in seed
// order. Search is a linear scan with no result cap.
type MemoryItemRepo struct {
	items []catalog.Item
	byID  map[string]int
}

// GetByID implements catalog.ItemRepository. Lookup is case-insensitive to
// match voice transcriptions like "BREAD-001".
func (m *MemoryItemRepo) GetByID(id string) (*catalog.Item, error) {
	idx, ok := m.byID[strings.ToLower(id)]
	if !ok {
		return nil, catalog.ErrItemNotFound
	}
	item := m.items[idx]
	return &item, nil
}

// Search implements catalog.ItemRepository. An item matching more than one
// criterion is still included exactly once.
func (m *MemoryItemRepo) Search(query string) ([]catalog.Item, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]catalog.Item, 0)

	for _, item := range m.items {
		if strings.Contains(strings.ToLower(item.Name), q) {
			results = append(results, item)
			continue
		}
		if q == strings.ToLower(item.Category) {
			results = append(results, item)
			continue
		}
		if tagMatch(item.Tags, q) {
			results = append(results, item)
		}
	}
	return results, nil
}

func tagMatch(tags []string, q string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// All implements catalog.ItemRepository.
func (m *MemoryItemRepo) All() ([]catalog.Item, error) {
	out := make([]catalog.Item, len(m.items))
	copy(out, m.items)
	return out, nil
}

// NewMemoryItemRepo builds a repository from explicit items, kept in the
// given order.
func NewMemoryItemRepo(items []catalog.Item) *MemoryItemRepo {
	byID := make(map[string]int, len(items))
	for i, item := range items {
		byID[strings.ToLower(item.ID)] = i
	}
	return &MemoryItemRepo{items: items, byID: byID}
}

// NewSeededMemoryItemRepo builds a repository from the embedded seed catalog.
func NewSeededMemoryItemRepo() (*MemoryItemRepo, error) {
	seed, err := data.CatalogItems()
	if err != nil {
		return nil, err
	}
	items := make([]catalog.Item, len(seed))
	for i, s := range seed {
		items[i] = catalog.Item{
			ID:       s.ID,
			Name:     s.Name,
			Category: s.Category,
			Price:    s.Price,
			Unit:     s.Unit,
			Tags:     s.Tags,
		}
	}
	return NewMemoryItemRepo(items), nil
}

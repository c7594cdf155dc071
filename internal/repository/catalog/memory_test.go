package catalog

import (
	"testing"

	"github.com/HackerKing5128/voicecart/internal/domains/catalog"
)

func testItems() []catalog.Item {
	return []catalog.Item{
		{ID: "bread-001", Name: "Sourdough Loaf", Category: "bakery", Price: 4.50, Unit: "loaf", Tags: []string{"bread", "sourdough", "fresh"}},
		{ID: "bread-002", Name: "Whole Wheat Bread", Category: "bakery", Price: 3.25, Unit: "loaf", Tags: []string{"bread", "wheat"}},
		{ID: "dairy-001", Name: "Whole Milk", Category: "dairy", Price: 3.99, Unit: "gallon", Tags: []string{"milk"}},
	}
}

func TestMemoryGetByIDCaseInsensitive(t *testing.T) {
	repo := NewMemoryItemRepo(testItems())

	item, err := repo.GetByID("BREAD-001")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if item.Name != "Sourdough Loaf" {
		t.Errorf("Expected Sourdough Loaf, got %s", item.Name)
	}

	if _, err := repo.GetByID("bread-999"); err != catalog.ErrItemNotFound {
		t.Errorf("Expected ErrItemNotFound, got %v", err)
	}
}

func TestMemorySearchByName(t *testing.T) {
	repo := NewMemoryItemRepo(testItems())

	items, err := repo.Search("bread")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	// "Whole Wheat Bread" by name, "Sourdough Loaf" only via its tag
	if len(items) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(items))
	}
	if items[0].ID != "bread-001" || items[1].ID != "bread-002" {
		t.Errorf("Expected seed order bread-001, bread-002, got %s, %s", items[0].ID, items[1].ID)
	}
}

func TestMemorySearchByCategory(t *testing.T) {
	repo := NewMemoryItemRepo(testItems())

	items, err := repo.Search("dairy")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != "dairy-001" {
		t.Errorf("Expected only dairy-001, got %v", items)
	}
}

func TestMemorySearchIncludesMatchOnce(t *testing.T) {
	// "sourdough" matches bread-001 on both name and tag
	repo := NewMemoryItemRepo(testItems())

	items, err := repo.Search("sourdough")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("Item matching several criteria must appear once, got %d results", len(items))
	}
}

func TestMemorySearchNoMatch(t *testing.T) {
	repo := NewMemoryItemRepo(testItems())

	items, err := repo.Search("caviar")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected no results, got %d", len(items))
	}
	if items == nil {
		t.Error("Expected empty slice, not nil")
	}
}

func TestSeededMemoryRepoLoads(t *testing.T) {
	repo, err := NewSeededMemoryItemRepo()
	if err != nil {
		t.Fatalf("Failed to load seeded repo: %v", err)
	}

	all, err := repo.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) == 0 {
		t.Fatal("Expected seeded items")
	}

	item, err := repo.GetByID("bread-001")
	if err != nil {
		t.Fatalf("Expected seeded bread-001: %v", err)
	}
	if item.Price != 4.50 {
		t.Errorf("Expected price 4.50, got %v", item.Price)
	}
}

package cart

import (
	"testing"

	"github.com/HackerKing5128/voicecart/internal/domains/catalog"
)

func bread() catalog.Item {
	return catalog.Item{
		ID:       "bread-001",
		Name:     "Sourdough Loaf",
		Category: "bakery",
		Price:    4.50,
		Unit:     "loaf",
	}
}

func milk() catalog.Item {
	return catalog.Item{
		ID:       "dairy-001",
		Name:     "Whole Milk",
		Category: "dairy",
		Price:    3.99,
		Unit:     "gallon",
	}
}

func TestCartAddSumsQuantities(t *testing.T) {
	c := New()

	c.Add(bread(), 2)
	line := c.Add(bread(), 1)

	if line.Quantity != 3 {
		t.Errorf("Expected quantity 3 after re-add, got %d", line.Quantity)
	}

	contents := c.Contents()
	if contents.ItemCount != 1 {
		t.Errorf("Expected a single line, got %d", contents.ItemCount)
	}
	if contents.Items[0].Subtotal != 13.50 {
		t.Errorf("Expected subtotal 13.50, got %v", contents.Items[0].Subtotal)
	}
	if contents.Total != 13.50 {
		t.Errorf("Expected total 13.50, got %v", contents.Total)
	}
}

func TestCartContentsInsertionOrder(t *testing.T) {
	c := New()
	c.Add(bread(), 1)
	c.Add(milk(), 2)

	contents := c.Contents()
	if len(contents.Items) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(contents.Items))
	}
	if contents.Items[0].ID != "bread-001" || contents.Items[1].ID != "dairy-001" {
		t.Errorf("Expected insertion order bread-001, dairy-001, got %s, %s",
			contents.Items[0].ID, contents.Items[1].ID)
	}
	if contents.TotalQuantity != 3 {
		t.Errorf("Expected total quantity 3, got %d", contents.TotalQuantity)
	}
}

func TestCartSetQuantityZeroRemoves(t *testing.T) {
	c := New()
	c.Add(bread(), 2)

	if _, err := c.SetQuantity("bread-001", 0); err != nil {
		t.Errorf("SetQuantity(0) should remove the line, got error %v", err)
	}

	contents := c.Contents()
	if !contents.Empty {
		t.Error("Expected empty cart after removing the only line")
	}
}

func TestCartRemoveUnknownLine(t *testing.T) {
	c := New()

	if _, err := c.Remove("nope-001"); err != ErrLineNotFound {
		t.Errorf("Expected ErrLineNotFound, got %v", err)
	}
}

func TestCartEmptyContents(t *testing.T) {
	c := New()

	contents := c.Contents()
	if !contents.Empty {
		t.Error("New cart should report empty")
	}
	if contents.Items == nil {
		t.Error("Items should be an empty slice, not nil")
	}
	if contents.Total != 0 {
		t.Errorf("Expected zero total, got %v", contents.Total)
	}
}

func TestCartClear(t *testing.T) {
	c := New()
	c.Add(bread(), 1)
	c.Add(milk(), 1)

	c.Clear()

	if !c.Contents().Empty {
		t.Error("Expected empty cart after Clear")
	}
}

func TestCartTotalRoundedOnce(t *testing.T) {
	c := New()
	item := catalog.Item{ID: "x-001", Name: "Odd Priced", Price: 1.333, Unit: "each"}
	c.Add(item, 3)

	contents := c.Contents()
	// 3 * 1.333 = 3.999, rounded to 4.00 only at the total
	if contents.Total != 4.00 {
		t.Errorf("Expected rounded total 4.00, got %v", contents.Total)
	}
	if contents.Items[0].Subtotal == 4.00 {
		t.Error("Line subtotal should stay unrounded")
	}
}

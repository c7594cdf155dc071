package catalog

// Item represents one purchasable product. Items are immutable after load;
// the id uniquely determines exactly one item.
// @Description Catalog item
type Item struct {
	ID       string   `json:"id" example:"bread-001"`
	Name     string   `json:"name" example:"Sourdough Loaf"`
	Category string   `json:"category" example:"bakery"`
	Price    float64  `json:"price" example:"4.50"`
	Unit     string   `json:"unit" example:"loaf"`
	Tags     []string `json:"tags" example:"bread,sourdough,fresh"`
}

// ItemRepository defines the interface for catalog data access.
type ItemRepository interface {
	// GetByID returns the item or ErrItemNotFound.
	GetByID(id string) (*Item, error)

	// Search matches query against name (substring), category (exact) and
	// tags (substring), all case-insensitive. Zero matches is an empty
	// slice, not an error.
	Search(query string) ([]Item, error)

	// All returns every item in catalog storage order.
	All() ([]Item, error)
}

package catalog

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/HackerKing5128/voicecart/internal/domains/catalog"
)

// TagList is a custom type for handling JSON serialization of string slices
type TagList []string

// Value implements driver.Valuer interface for GORM
func (t TagList) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "[]", nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner interface for GORM
func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = TagList{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		*t = TagList{}
		return nil
	}
}

// ItemEntity represents the database row for a catalog item with GORM tags
type ItemEntity struct {
	ID       string  `gorm:"primaryKey;type:varchar(40);not null"`
	Name     string  `gorm:"column:name;type:varchar(120);not null"`
	Category string  `gorm:"column:category;type:varchar(40);index"`
	Price    float64 `gorm:"column:price;not null"`
	Unit     string  `gorm:"column:unit;type:varchar(20)"`
	Tags     TagList `gorm:"type:json;column:tags"`
	// SeedOrder preserves catalog storage order for unranked search results.
	SeedOrder int `gorm:"column:seed_order;index"`
}

// TableName returns the table name for GORM
func (ItemEntity) TableName() string {
	return "catalog"
}

// ToDomain converts ItemEntity to a domain Item
func (e *ItemEntity) ToDomain() *catalog.Item {
	tags := []string(e.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &catalog.Item{
		ID:       e.ID,
		Name:     e.Name,
		Category: e.Category,
		Price:    e.Price,
		Unit:     e.Unit,
		Tags:     tags,
	}
}

// FromDomain converts a domain Item to ItemEntity
func (e *ItemEntity) FromDomain(item *catalog.Item) {
	e.ID = item.ID
	e.Name = item.Name
	e.Category = item.Category
	e.Price = item.Price
	e.Unit = item.Unit
	e.Tags = TagList(item.Tags)
}

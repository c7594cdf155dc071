package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HackerKing5128/voicecart/internal/domains/catalog"
	"gorm.io/gorm"
)

// GormItemRepo mirrors the seed catalog into an indexed table. Search results
// are capped at pageSize, in seed order (no relevance ranking).
type GormItemRepo struct {
	db       *gorm.DB
	pageSize int
}

// GetByID implements catalog.ItemRepository
func (g *GormItemRepo) GetByID(id string) (*catalog.Item, error) {
	var entity ItemEntity
	if err := g.db.Where("LOWER(id) = ?", strings.ToLower(id)).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get catalog item by ID: %w", err)
	}
	return entity.ToDomain(), nil
}

// Search implements catalog.ItemRepository. A single WHERE with ORs keeps each
// row in the result at most once however many criteria it matches. The tags
// column holds the serialized tag list, so LIKE against it is only a candidate
// filter; rows that matched nothing but tags are re-checked per tag so a query
// cannot match across tag boundaries or serialization punctuation.
func (g *GormItemRepo) Search(query string) ([]catalog.Item, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	like := "%" + q + "%"

	var entities []ItemEntity
	err := g.db.
		Where("LOWER(name) LIKE ? OR LOWER(category) = ? OR LOWER(tags) LIKE ?", like, q, like).
		Order("seed_order ASC").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search catalog: %w", err)
	}

	items := make([]catalog.Item, 0, len(entities))
	for i := range entities {
		item := entities[i].ToDomain()
		if !strings.Contains(strings.ToLower(item.Name), q) &&
			q != strings.ToLower(item.Category) &&
			!tagMatch(item.Tags, q) {
			continue
		}
		items = append(items, *item)
		if len(items) == g.pageSize {
			break
		}
	}
	return items, nil
}

// All implements catalog.ItemRepository
func (g *GormItemRepo) All() ([]catalog.Item, error) {
	var entities []ItemEntity
	if err := g.db.Order("seed_order ASC").Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}

	items := make([]catalog.Item, len(entities))
	for i, entity := range entities {
		items[i] = *entity.ToDomain()
	}
	return items, nil
}

// Seed inserts items if the table is empty. Already-seeded tables are left
// untouched so manual price tweaks survive restarts.
func (g *GormItemRepo) Seed(items []catalog.Item) error {
	var count int64
	if err := g.db.Model(&ItemEntity{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count catalog rows: %w", err)
	}
	if count > 0 {
		return nil
	}

	entities := make([]ItemEntity, len(items))
	for i := range items {
		entities[i].FromDomain(&items[i])
		entities[i].SeedOrder = i
	}
	if err := g.db.Create(&entities).Error; err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}

// NewGormItemRepo creates a new GORM-based catalog repository
func NewGormItemRepo(db *gorm.DB, pageSize int) *GormItemRepo {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &GormItemRepo{db: db, pageSize: pageSize}
}

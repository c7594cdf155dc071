package cart

import (
	"errors"
	"math"
	"sync"

	"github.com/HackerKing5128/voicecart/internal/domains/catalog"
)

// Common errors
var (
	ErrLineNotFound = errors.New("item not found in cart")
)

// Line is one (item, quantity) pair. Adding an id already in the cart sums
// quantities instead of duplicating the line.
type Line struct {
	Item     catalog.Item
	Quantity int
}

// ContentsLine is a read-only snapshot of a cart line. JSON field names are
// the persisted contract shared with the frontend.
type ContentsLine struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Unit      string  `json:"unit"`
	Subtotal  float64 `json:"subtotal"`
}

// Contents is a pure read of the cart. Only the grand total is rounded;
// per-line subtotals stay raw so rounding never compounds.
type Contents struct {
	Empty         bool           `json:"empty"`
	Items         []ContentsLine `json:"items"`
	ItemCount     int            `json:"item_count"`
	TotalQuantity int            `json:"total_quantity"`
	Total         float64        `json:"total"`
}

// Cart holds one session's uncommitted selection. It lives only in memory and
// dies with the session unless committed into an order.
type Cart struct {
	mu    sync.Mutex
	lines map[string]*Line
	order []string // insertion order of item ids
}

func New() *Cart {
	return &Cart{
		lines: make(map[string]*Line),
	}
}

// Add upserts the item, summing quantities. The item must already be resolved
// against the catalog; unknown ids are rejected upstream.
func (c *Cart) Add(item catalog.Item, quantity int) Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	if line, exists := c.lines[item.ID]; exists {
		line.Quantity += quantity
		return *line
	}

	line := &Line{Item: item, Quantity: quantity}
	c.lines[item.ID] = line
	c.order = append(c.order, item.ID)
	return *line
}

// Remove deletes the line entirely.
func (c *Cart) Remove(itemID string) (Line, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(itemID)
}

func (c *Cart) removeLocked(itemID string) (Line, error) {
	line, exists := c.lines[itemID]
	if !exists {
		return Line{}, ErrLineNotFound
	}
	delete(c.lines, itemID)
	for i, id := range c.order {
		if id == itemID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return *line, nil
}

// SetQuantity replaces the line's quantity. A non-positive quantity removes
// the line.
func (c *Cart) SetQuantity(itemID string, quantity int) (Line, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		return c.removeLocked(itemID)
	}

	line, exists := c.lines[itemID]
	if !exists {
		return Line{}, ErrLineNotFound
	}
	line.Quantity = quantity
	return *line, nil
}

// Contents snapshots the cart in insertion order.
func (c *Cart) Contents() Contents {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.lines) == 0 {
		return Contents{Empty: true, Items: []ContentsLine{}}
	}

	items := make([]ContentsLine, 0, len(c.order))
	total := 0.0
	totalQuantity := 0

	for _, id := range c.order {
		line := c.lines[id]
		subtotal := line.Item.Price * float64(line.Quantity)
		total += subtotal
		totalQuantity += line.Quantity

		items = append(items, ContentsLine{
			ID:        line.Item.ID,
			Name:      line.Item.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Item.Price,
			Unit:      line.Item.Unit,
			Subtotal:  subtotal,
		})
	}

	return Contents{
		Empty:         false,
		Items:         items,
		ItemCount:     len(items),
		TotalQuantity: totalQuantity,
		Total:         Round2(total),
	}
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = make(map[string]*Line)
	c.order = nil
}

// Round2 rounds to currency precision. Applied once to grand totals, never
// per line.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

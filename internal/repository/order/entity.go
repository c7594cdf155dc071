package order

import (
	"time"

	"github.com/HackerKing5128/voicecart/internal/domains/order"
)

// OrderEntity represents the orders table row with GORM tags
type OrderEntity struct {
	OrderID      string            `gorm:"primaryKey;column:order_id;type:varchar(20);not null"`
	CustomerName string            `gorm:"column:customer_name;type:varchar(120)"`
	Total        float64           `gorm:"column:total;not null"`
	Currency     string            `gorm:"column:currency;type:varchar(3);default:USD"`
	Status       string            `gorm:"column:status;type:varchar(20);not null;index;default:received"`
	CreatedAt    time.Time         `gorm:"column:created_at;index"`
	UpdatedAt    time.Time         `gorm:"column:updated_at"`
	Items        []OrderLineEntity `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderEntity) TableName() string {
	return "orders"
}

// OrderLineEntity represents one order_items row.
type OrderLineEntity struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	OrderID   string  `gorm:"column:order_id;type:varchar(20);index;not null"`
	ItemID    string  `gorm:"column:item_id;type:varchar(40);not null"`
	ItemName  string  `gorm:"column:item_name;type:varchar(120)"`
	UnitPrice float64 `gorm:"column:unit_price;not null"`
	Quantity  int     `gorm:"column:quantity;not null"`
	Subtotal  float64 `gorm:"column:subtotal;not null"`
}

// TableName returns the table name for GORM
func (OrderLineEntity) TableName() string {
	return "order_items"
}

// ToDomain converts OrderEntity to a domain Order
func (e *OrderEntity) ToDomain() *order.Order {
	items := make([]order.Line, len(e.Items))
	for i, line := range e.Items {
		items[i] = order.Line{
			ItemID:    line.ItemID,
			ItemName:  line.ItemName,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal,
		}
	}

	return &order.Order{
		OrderID:      e.OrderID,
		CustomerName: e.CustomerName,
		Items:        items,
		Total:        e.Total,
		Currency:     e.Currency,
		Status:       order.Status(e.Status),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// FromDomain converts a domain Order to OrderEntity
func (e *OrderEntity) FromDomain(o *order.Order) {
	e.OrderID = o.OrderID
	e.CustomerName = o.CustomerName
	e.Total = o.Total
	e.Currency = o.Currency
	e.Status = string(o.Status)
	e.CreatedAt = o.CreatedAt
	e.UpdatedAt = o.UpdatedAt

	e.Items = make([]OrderLineEntity, len(o.Items))
	for i, line := range o.Items {
		e.Items[i] = OrderLineEntity{
			OrderID:   o.OrderID,
			ItemID:    line.ItemID,
			ItemName:  line.ItemName,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal,
		}
	}
}

// NewOrderEntityFromDomain creates a new OrderEntity from a domain Order
func NewOrderEntityFromDomain(o *order.Order) *OrderEntity {
	entity := &OrderEntity{}
	entity.FromDomain(o)
	return entity
}

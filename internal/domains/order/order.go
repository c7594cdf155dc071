package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
)

// Status is one value from the fixed delivery progression.
type Status string

const (
	StatusReceived       Status = "received"
	StatusConfirmed      Status = "confirmed"
	StatusPreparing      Status = "preparing"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

// Progression is the forward-only status sequence. cancelled sits outside it
// and is reachable from any non-delivered state.
var Progression = []Status{
	StatusReceived,
	StatusConfirmed,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
}

// fsm event names
const (
	eventConfirm  = "confirm"
	eventPrepare  = "prepare"
	eventDispatch = "dispatch"
	eventDeliver  = "deliver"
	eventCancel   = "cancel"
)

var advanceEvents = map[Status]string{
	StatusReceived:       eventConfirm,
	StatusConfirmed:      eventPrepare,
	StatusPreparing:      eventDispatch,
	StatusOutForDelivery: eventDeliver,
}

// newStatusFSM builds the delivery state machine seeded at current. The fsm
// is the single source of truth for which transitions are legal.
func newStatusFSM(current Status) *fsm.FSM {
	return fsm.NewFSM(
		string(current),
		fsm.Events{
			{Name: eventConfirm, Src: []string{string(StatusReceived)}, Dst: string(StatusConfirmed)},
			{Name: eventPrepare, Src: []string{string(StatusConfirmed)}, Dst: string(StatusPreparing)},
			{Name: eventDispatch, Src: []string{string(StatusPreparing)}, Dst: string(StatusOutForDelivery)},
			{Name: eventDeliver, Src: []string{string(StatusOutForDelivery)}, Dst: string(StatusDelivered)},
			{Name: eventCancel, Src: []string{
				string(StatusReceived),
				string(StatusConfirmed),
				string(StatusPreparing),
				string(StatusOutForDelivery),
			}, Dst: string(StatusCancelled)},
		},
		fsm.Callbacks{},
	)
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Next returns the following status in the progression, or false when
// terminal (or unknown).
func (s Status) Next() (Status, bool) {
	if _, ok := advanceEvents[s]; !ok {
		return s, false
	}
	m := newStatusFSM(s)
	if err := m.Event(context.Background(), advanceEvents[s]); err != nil {
		return s, false
	}
	return Status(m.Current()), true
}

// CanCancel reports whether cancellation is legal from this status.
func (s Status) CanCancel() bool {
	return newStatusFSM(s).Can(eventCancel)
}

// Line is an immutable snapshot of a cart line taken at commit time; later
// catalog price changes never touch a placed order.
type Line struct {
	ItemID    string  `json:"item_id"`
	ItemName  string  `json:"item_name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// Order is a committed, persisted cart with its own status lifecycle.
// JSON field names are the persisted contract; anything reading the store
// depends on them.
type Order struct {
	OrderID      string    `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	Items        []Line    `json:"items"`
	Total        float64   `json:"total"`
	Currency     string    `json:"currency"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewOrderID generates a fresh order identifier, e.g. "FM-3FA2B1". Ids are
// never reused.
func NewOrderID() string {
	id := uuid.New()
	return fmt.Sprintf("FM-%X", id[:3])
}

// Repository defines the interface for order persistence. It must survive
// process restart.
type Repository interface {
	Create(o *Order) error

	// GetByID returns the order or ErrOrderNotFound.
	GetByID(orderID string) (*Order, error)

	// GetLatest returns the most recently created order or ErrOrderNotFound.
	GetLatest() (*Order, error)

	// ListRecent returns up to limit orders, most recent first.
	ListRecent(limit int) ([]Order, error)

	// UpdateStatus writes the status atomically and always advances the
	// update timestamp, even when the status is unchanged.
	UpdateStatus(orderID string, status Status) (*Order, error)
}

// EventPublisher receives status-change notifications. Implementations must
// be best-effort: a failed publish never fails the transition.
type EventPublisher interface {
	PublishStatusChange(orderID string, status Status)
}

// Tracker starts background delivery tracking for a committed order.
type Tracker interface {
	Track(orderID string)
}

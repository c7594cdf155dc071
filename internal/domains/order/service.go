package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HackerKing5128/voicecart/internal/domains/cart"
	"github.com/HackerKing5128/voicecart/pkg/Logger"
)

// Common errors
var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyCart     = errors.New("cannot place order, cart is empty")
	ErrOrderTerminal = errors.New("order is already in a terminal status")
)

// DefaultCustomerName is used when the caller never gave a name.
const DefaultCustomerName = "Guest"

// Service defines the order lifecycle operations.
type Service interface {
	// PlaceOrder commits the cart into a persisted order and clears the
	// cart. An empty cart fails with ErrEmptyCart and creates nothing.
	PlaceOrder(ctx context.Context, c *cart.Cart, customerName string) (*Order, error)

	GetOrder(ctx context.Context, orderID string) (*Order, error)
	GetLatestOrder(ctx context.Context) (*Order, error)
	OrderHistory(ctx context.Context, limit int) ([]Order, error)

	// UpdateStatus sets the status directly. Idempotent: re-setting the
	// current status is fine and still bumps the update timestamp.
	UpdateStatus(ctx context.Context, orderID string, status Status) (*Order, error)

	// Cancel transitions to cancelled unless the order is already
	// delivered or cancelled, in which case ErrOrderTerminal.
	Cancel(ctx context.Context, orderID string) (*Order, error)
}

type service struct {
	repository Repository
	tracker    Tracker
	publisher  EventPublisher
	currency   string
	logger     *Logger.Logger
}

// PlaceOrder implements Service.
func (s *service) PlaceOrder(ctx context.Context, c *cart.Cart, customerName string) (*Order, error) {
	contents := c.Contents()
	if contents.Empty {
		return nil, ErrEmptyCart
	}

	if customerName == "" {
		customerName = DefaultCustomerName
	}

	lines := make([]Line, len(contents.Items))
	for i, item := range contents.Items {
		lines[i] = Line{
			ItemID:    item.ID,
			ItemName:  item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		}
	}

	now := time.Now()
	o := &Order{
		OrderID:      NewOrderID(),
		CustomerName: customerName,
		Items:        lines,
		Total:        contents.Total,
		Currency:     s.currency,
		Status:       StatusReceived,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repository.Create(o); err != nil {
		s.logger.Errorf("error persisting order %s: %v", o.OrderID, err)
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	// the cart is spent once its contents are committed
	c.Clear()

	s.publish(o.OrderID, o.Status)

	// Fire-and-forget delivery tracking. A missing tracker must never fail
	// or delay the commit that would have spawned it.
	if s.tracker != nil {
		s.tracker.Track(o.OrderID)
	} else {
		s.logger.Warnf("no delivery tracker attached, order %s will not auto-advance", o.OrderID)
	}

	s.logger.Infof("order %s placed for %s, total %.2f %s", o.OrderID, customerName, o.Total, o.Currency)
	return o, nil
}

// GetOrder implements Service.
func (s *service) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	o, err := s.repository.GetByID(orderID)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		s.logger.Errorf("error getting order %s: %v", orderID, err)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return o, nil
}

// GetLatestOrder implements Service.
func (s *service) GetLatestOrder(ctx context.Context) (*Order, error) {
	o, err := s.repository.GetLatest()
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		s.logger.Errorf("error getting latest order: %v", err)
		return nil, fmt.Errorf("failed to get latest order: %w", err)
	}
	return o, nil
}

// OrderHistory implements Service.
func (s *service) OrderHistory(ctx context.Context, limit int) ([]Order, error) {
	if limit <= 0 {
		limit = 10
	}
	orders, err := s.repository.ListRecent(limit)
	if err != nil {
		s.logger.Errorf("error listing orders: %v", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus implements Service.
func (s *service) UpdateStatus(ctx context.Context, orderID string, status Status) (*Order, error) {
	o, err := s.repository.UpdateStatus(orderID, status)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		s.logger.Errorf("error updating order %s status: %v", orderID, err)
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	s.publish(orderID, status)
	return o, nil
}

// Cancel implements Service.
func (s *service) Cancel(ctx context.Context, orderID string) (*Order, error) {
	o, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !o.Status.CanCancel() {
		return nil, ErrOrderTerminal
	}

	updated, err := s.repository.UpdateStatus(orderID, StatusCancelled)
	if err != nil {
		s.logger.Errorf("error cancelling order %s: %v", orderID, err)
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}

	s.publish(orderID, StatusCancelled)
	s.logger.Infof("order %s cancelled (was %s)", orderID, o.Status)
	return updated, nil
}

func (s *service) publish(orderID string, status Status) {
	if s.publisher != nil {
		s.publisher.PublishStatusChange(orderID, status)
	}
}

// NewService creates a new order service. tracker and publisher may be nil.
func NewService(repository Repository, tracker Tracker, publisher EventPublisher, currency string, logger *Logger.Logger) Service {
	if currency == "" {
		currency = "USD"
	}
	return &service{
		repository: repository,
		tracker:    tracker,
		publisher:  publisher,
		currency:   currency,
		logger:     logger,
	}
}

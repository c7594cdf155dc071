package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/HackerKing5128/voicecart/internal/domains/catalog"
	"github.com/HackerKing5128/voicecart/pkg/Logger"
)

// Service defines cart operations scoped to a session.
type Service interface {
	AddItem(ctx context.Context, sessionID, itemID string, quantity int) (*Line, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (*Line, error)
	SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*Line, error)
	GetContents(ctx context.Context, sessionID string) Contents
	Clear(ctx context.Context, sessionID string)

	// SessionCart exposes the live cart for order commit.
	SessionCart(sessionID string) *Cart
}

type service struct {
	manager *Manager
	catalog catalog.Service
	logger  *Logger.Logger
}

// AddItem implements Service. Unknown item ids fail with
// catalog.ErrItemNotFound and leave the cart untouched.
func (s *service) AddItem(ctx context.Context, sessionID, itemID string, quantity int) (*Line, error) {
	if quantity <= 0 {
		quantity = 1
	}

	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			return nil, catalog.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to resolve item for cart: %w", err)
	}

	line := s.manager.GetOrCreate(sessionID).Add(*item, quantity)
	s.logger.Infof("cart %s: added %dx %s", sessionID, quantity, item.Name)
	return &line, nil
}

// RemoveItem implements Service.
func (s *service) RemoveItem(ctx context.Context, sessionID, itemID string) (*Line, error) {
	line, err := s.manager.GetOrCreate(sessionID).Remove(itemID)
	if err != nil {
		return nil, err
	}
	s.logger.Infof("cart %s: removed %s", sessionID, line.Item.Name)
	return &line, nil
}

// SetQuantity implements Service.
func (s *service) SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*Line, error) {
	line, err := s.manager.GetOrCreate(sessionID).SetQuantity(itemID, quantity)
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// GetContents implements Service.
func (s *service) GetContents(ctx context.Context, sessionID string) Contents {
	return s.manager.GetOrCreate(sessionID).Contents()
}

// Clear implements Service.
func (s *service) Clear(ctx context.Context, sessionID string) {
	s.manager.GetOrCreate(sessionID).Clear()
}

// SessionCart implements Service.
func (s *service) SessionCart(sessionID string) *Cart {
	return s.manager.GetOrCreate(sessionID)
}

// NewService creates a new cart service
func NewService(manager *Manager, catalogService catalog.Service, logger *Logger.Logger) Service {
	return &service{
		manager: manager,
		catalog: catalogService,
		logger:  logger,
	}
}

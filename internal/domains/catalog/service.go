package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/HackerKing5128/voicecart/pkg/Logger"
)

// Common errors
var (
	ErrItemNotFound = errors.New("catalog item not found")
)

// Service defines the interface for catalog reads.
type Service interface {
	Search(ctx context.Context, query string) ([]Item, error)
	GetItem(ctx context.Context, id string) (*Item, error)
	ListAll(ctx context.Context) ([]Item, error)
}

type service struct {
	repository ItemRepository
	logger     *Logger.Logger
}

// Search implements Service. A blank query lists the whole catalog.
func (s *service) Search(ctx context.Context, query string) ([]Item, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.ListAll(ctx)
	}

	items, err := s.repository.Search(query)
	if err != nil {
		s.logger.Errorf("error searching catalog for %q: %v", query, err)
		return nil, fmt.Errorf("failed to search catalog: %w", err)
	}
	return items, nil
}

// GetItem implements Service.
func (s *service) GetItem(ctx context.Context, id string) (*Item, error) {
	item, err := s.repository.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Errorf("error getting catalog item %s: %v", id, err)
		return nil, fmt.Errorf("failed to get catalog item: %w", err)
	}
	return item, nil
}

// ListAll implements Service.
func (s *service) ListAll(ctx context.Context) ([]Item, error) {
	items, err := s.repository.All()
	if err != nil {
		s.logger.Errorf("error listing catalog: %v", err)
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	return items, nil
}

// NewService creates a new catalog service
func NewService(repository ItemRepository, logger *Logger.Logger) Service {
	return &service{
		repository: repository,
		logger:     logger,
	}
}

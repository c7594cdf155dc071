package order

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/HackerKing5128/voicecart/internal/domains/cart"
	"github.com/HackerKing5128/voicecart/internal/domains/catalog"
	"github.com/HackerKing5128/voicecart/pkg/Logger"
)

// fakeRepo is an in-memory Repository for tests.
type fakeRepo struct {
	mu     sync.Mutex
	orders map[string]*Order
	seq    int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{orders: make(map[string]*Order)}
}

func (f *fakeRepo) Create(o *Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	// distinct created_at per order so GetLatest is deterministic
	clone := *o
	clone.CreatedAt = clone.CreatedAt.Add(time.Duration(f.seq) * time.Millisecond)
	f.orders[o.OrderID] = &clone
	return nil
}

func (f *fakeRepo) GetByID(orderID string) (*Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (f *fakeRepo) GetLatest() (*Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var latest *Order
	for _, o := range f.orders {
		if latest == nil || o.CreatedAt.After(latest.CreatedAt) {
			latest = o
		}
	}
	if latest == nil {
		return nil, ErrOrderNotFound
	}
	clone := *latest
	return &clone, nil
}

func (f *fakeRepo) ListRecent(limit int) ([]Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]Order, 0, len(f.orders))
	for _, o := range f.orders {
		all = append(all, *o)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeRepo) UpdateStatus(orderID string, status Status) (*Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	clone := *o
	return &clone, nil
}

// recordingPublisher captures published transitions in order.
type recordingPublisher struct {
	mu     sync.Mutex
	events []Status
}

func (p *recordingPublisher) PublishStatusChange(orderID string, status Status) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, status)
}

func testLogger() *Logger.Logger {
	return Logger.New(false)
}

func loadedCart() *cart.Cart {
	c := cart.New()
	c.Add(catalog.Item{ID: "bread-001", Name: "Sourdough Loaf", Price: 4.50, Unit: "loaf"}, 2)
	c.Add(catalog.Item{ID: "dairy-001", Name: "Whole Milk", Price: 3.99, Unit: "gallon"}, 1)
	return c
}

func TestPlaceOrderCommitsAndClearsCart(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, nil, "USD", testLogger())

	c := loadedCart()
	expectedTotal := c.Contents().Total

	o, err := svc.PlaceOrder(context.Background(), c, "Alice")
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}

	if o.Status != StatusReceived {
		t.Errorf("Expected status %s, got %s", StatusReceived, o.Status)
	}
	if o.Total != expectedTotal {
		t.Errorf("Expected total %v, got %v", expectedTotal, o.Total)
	}
	if o.CustomerName != "Alice" {
		t.Errorf("Expected customer Alice, got %s", o.CustomerName)
	}
	if len(o.Items) != 2 {
		t.Errorf("Expected 2 lines, got %d", len(o.Items))
	}
	if !c.Contents().Empty {
		t.Error("Cart should be empty after commit")
	}

	stored, err := repo.GetByID(o.OrderID)
	if err != nil {
		t.Fatalf("Order was not persisted: %v", err)
	}
	if stored.Total != expectedTotal {
		t.Errorf("Persisted total %v differs from %v", stored.Total, expectedTotal)
	}
}

func TestPlaceOrderDefaultsCustomerName(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, nil, "USD", testLogger())

	o, err := svc.PlaceOrder(context.Background(), loadedCart(), "")
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if o.CustomerName != DefaultCustomerName {
		t.Errorf("Expected default customer %q, got %q", DefaultCustomerName, o.CustomerName)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, nil, "USD", testLogger())

	_, err := svc.PlaceOrder(context.Background(), cart.New(), "Alice")
	if err != ErrEmptyCart {
		t.Errorf("Expected ErrEmptyCart, got %v", err)
	}
	if len(repo.orders) != 0 {
		t.Error("No order should be created for an empty cart")
	}
}

func TestOrderIDFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewOrderID()
		if len(id) != 9 || id[:3] != "FM-" {
			t.Fatalf("Unexpected order id format: %q", id)
		}
		if seen[id] {
			t.Fatalf("Duplicate order id %q", id)
		}
		seen[id] = true
	}
}

func TestCancelInFlightOrder(t *testing.T) {
	repo := newFakeRepo()
	pub := &recordingPublisher{}
	svc := NewService(repo, nil, pub, "USD", testLogger())

	o, err := svc.PlaceOrder(context.Background(), loadedCart(), "Bob")
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}

	if _, err := repo.UpdateStatus(o.OrderID, StatusPreparing); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	cancelled, err := svc.Cancel(context.Background(), o.OrderID)
	if err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if cancelled.Status != StatusCancelled {
		t.Errorf("Expected status %s, got %s", StatusCancelled, cancelled.Status)
	}

	// second cancel hits a terminal order
	if _, err := svc.Cancel(context.Background(), o.OrderID); err != ErrOrderTerminal {
		t.Errorf("Expected ErrOrderTerminal on re-cancel, got %v", err)
	}
}

func TestCancelDeliveredOrder(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, nil, "USD", testLogger())

	o, err := svc.PlaceOrder(context.Background(), loadedCart(), "Bob")
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if _, err := repo.UpdateStatus(o.OrderID, StatusDelivered); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if _, err := svc.Cancel(context.Background(), o.OrderID); err != ErrOrderTerminal {
		t.Errorf("Expected ErrOrderTerminal, got %v", err)
	}

	stored, _ := repo.GetByID(o.OrderID)
	if stored.Status != StatusDelivered {
		t.Errorf("Delivered status must not change, got %s", stored.Status)
	}
}

func TestGetLatestOrder(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, nil, "USD", testLogger())

	if _, err := svc.GetLatestOrder(context.Background()); err != ErrOrderNotFound {
		t.Errorf("Expected ErrOrderNotFound with no orders, got %v", err)
	}

	first, _ := svc.PlaceOrder(context.Background(), loadedCart(), "First")
	second, _ := svc.PlaceOrder(context.Background(), loadedCart(), "Second")

	latest, err := svc.GetLatestOrder(context.Background())
	if err != nil {
		t.Fatalf("GetLatestOrder failed: %v", err)
	}
	if latest.OrderID != second.OrderID {
		t.Errorf("Expected latest %s, got %s (first was %s)", second.OrderID, latest.OrderID, first.OrderID)
	}
}

func TestOrderHistoryLimit(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, nil, "USD", testLogger())

	for i := 0; i < 5; i++ {
		if _, err := svc.PlaceOrder(context.Background(), loadedCart(), "Bulk"); err != nil {
			t.Fatalf("PlaceOrder failed: %v", err)
		}
	}

	orders, err := svc.OrderHistory(context.Background(), 3)
	if err != nil {
		t.Fatalf("OrderHistory failed: %v", err)
	}
	if len(orders) != 3 {
		t.Errorf("Expected 3 orders, got %d", len(orders))
	}
}

func TestStatusProgression(t *testing.T) {
	expected := []Status{StatusReceived, StatusConfirmed, StatusPreparing, StatusOutForDelivery, StatusDelivered}

	current := StatusReceived
	visited := []Status{current}
	for {
		next, ok := current.Next()
		if !ok {
			break
		}
		visited = append(visited, next)
		current = next
	}

	if len(visited) != len(expected) {
		t.Fatalf("Expected %d statuses, got %d: %v", len(expected), len(visited), visited)
	}
	for i := range expected {
		if visited[i] != expected[i] {
			t.Errorf("Step %d: expected %s, got %s", i, expected[i], visited[i])
		}
	}

	if !StatusDelivered.Terminal() || !StatusCancelled.Terminal() {
		t.Error("delivered and cancelled must be terminal")
	}
	if StatusDelivered.CanCancel() || StatusCancelled.CanCancel() {
		t.Error("terminal statuses must not be cancellable")
	}
	if !StatusOutForDelivery.CanCancel() {
		t.Error("out_for_delivery must still be cancellable")
	}
}

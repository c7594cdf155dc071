package catalog_test

import (
	"context"
	"sync"
	"testing"

	"github.com/HackerKing5128/voicecart/internal/app/toolsetup"
	"github.com/HackerKing5128/voicecart/internal/domains/cart"
	catalogdomain "github.com/HackerKing5128/voicecart/internal/domains/catalog"
	"github.com/HackerKing5128/voicecart/internal/domains/faq"
	"github.com/HackerKing5128/voicecart/internal/domains/order"
	"github.com/HackerKing5128/voicecart/internal/domains/recipe"
	catalogRepo "github.com/HackerKing5128/voicecart/internal/repository/catalog"
	"github.com/HackerKing5128/voicecart/internal/tools"
	"github.com/HackerKing5128/voicecart/pkg/Logger"
	"github.com/HackerKing5128/voicecart/pkg/toolsystem"
)

type memOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*order.Order
	last   string
}

func (m *memOrderRepo) Create(o *order.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *o
	m.orders[o.OrderID] = &clone
	m.last = o.OrderID
	return nil
}

func (m *memOrderRepo) GetByID(orderID string) (*order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (m *memOrderRepo) GetLatest() (*order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.last == "" {
		return nil, order.ErrOrderNotFound
	}
	clone := *m.orders[m.last]
	return &clone, nil
}

func (m *memOrderRepo) ListRecent(limit int) ([]order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]order.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, *o)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memOrderRepo) UpdateStatus(orderID string, status order.Status) (*order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	o.Status = status
	clone := *o
	return &clone, nil
}

func testRegistry(t *testing.T) (toolsystem.Registry, toolsystem.Executor) {
	t.Helper()
	logger := Logger.New(false)

	itemRepo, err := catalogRepo.NewSeededMemoryItemRepo()
	if err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}
	catalogService := catalogdomain.NewService(itemRepo, logger)
	cartService := cart.NewService(cart.NewManager(), catalogService, logger)
	orderService := order.NewService(&memOrderRepo{orders: map[string]*order.Order{}}, nil, nil, "USD", logger)

	recipes, err := recipe.NewSeededResolver()
	if err != nil {
		t.Fatalf("failed to seed recipes: %v", err)
	}
	faqs, err := faq.NewSeededSearcher()
	if err != nil {
		t.Fatalf("failed to seed faqs: %v", err)
	}

	factory := tools.NewToolFactory(&tools.ToolDependencies{
		CatalogService: catalogService,
		CartService:    cartService,
		OrderService:   orderService,
		Recipes:        recipes,
		FAQs:           faqs,
		Logger:         logger,
	})
	if err := toolsetup.RegisterToolBuilders(factory); err != nil {
		t.Fatalf("failed to register builders: %v", err)
	}

	registry := toolsystem.NewMemoryRegistry()
	if err := factory.RegisterAll(registry); err != nil {
		t.Fatalf("failed to build tools: %v", err)
	}
	return registry, toolsystem.NewExecutor()
}

func invoke(t *testing.T, reg toolsystem.Registry, exec toolsystem.Executor, name string, args map[string]any) map[string]any {
	t.Helper()
	_, result, err := exec.Execute(context.Background(), reg, toolsystem.ToolCall{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("tool %s failed: %v", name, err)
	}
	return result.Response
}

func TestShoppingFlowThroughTools(t *testing.T) {
	reg, exec := testRegistry(t)

	resp := invoke(t, reg, exec, "search_catalog", map[string]any{"query": "bread"})
	if resp["count"].(int) == 0 {
		t.Fatal("Expected bread results in seeded catalog")
	}

	resp = invoke(t, reg, exec, "add_to_cart", map[string]any{
		"item_id":  "bread-001",
		"quantity": float64(2),
	})
	if resp["added"] != "Sourdough Loaf" {
		t.Errorf("Expected Sourdough Loaf added, got %v", resp["added"])
	}

	resp = invoke(t, reg, exec, "view_cart", nil)
	contents, ok := resp["cart"].(cart.Contents)
	if !ok {
		t.Fatalf("Expected cart.Contents, got %T", resp["cart"])
	}
	if contents.Total != 9.00 {
		t.Errorf("Expected total 9.00, got %v", contents.Total)
	}

	resp = invoke(t, reg, exec, "place_order", map[string]any{"customer_name": "Alice"})
	placed, ok := resp["order"].(*order.Order)
	if !ok {
		t.Fatalf("Expected *order.Order, got %T", resp["order"])
	}
	if placed.Status != order.StatusReceived {
		t.Errorf("Expected status received, got %s", placed.Status)
	}

	resp = invoke(t, reg, exec, "view_cart", nil)
	contents = resp["cart"].(cart.Contents)
	if !contents.Empty {
		t.Error("Cart should be empty after placing the order")
	}

	resp = invoke(t, reg, exec, "get_order_status", map[string]any{"order_id": placed.OrderID})
	fetched := resp["order"].(*order.Order)
	if fetched.Total != placed.Total {
		t.Errorf("Expected total %v, got %v", placed.Total, fetched.Total)
	}
}

func TestAddUnknownItemFails(t *testing.T) {
	reg, exec := testRegistry(t)

	call, _, err := exec.Execute(context.Background(), reg, toolsystem.ToolCall{
		Name:      "add_to_cart",
		Arguments: map[string]any{"item_id": "caviar-999"},
	})
	if err == nil {
		t.Fatal("Expected error adding unknown item")
	}
	if call.Status != toolsystem.FAILED {
		t.Errorf("Expected failed call, got %s", call.Status)
	}
}

func TestSuggestRecipeTool(t *testing.T) {
	reg, exec := testRegistry(t)

	resp := invoke(t, reg, exec, "suggest_recipe", map[string]any{"dish": "pasta night"})
	if resp["found"] != true {
		t.Fatalf("Expected a recipe match, got %v", resp)
	}
	ingredients, ok := resp["ingredients"].([]catalogdomain.Item)
	if !ok {
		t.Fatalf("Expected ingredient items, got %T", resp["ingredients"])
	}
	if len(ingredients) == 0 {
		t.Error("Expected resolved ingredients")
	}

	resp = invoke(t, reg, exec, "suggest_recipe", map[string]any{"dish": "science experiment"})
	if resp["found"] != false {
		t.Error("Expected no match for unknown dish")
	}
	if _, ok := resp["known_recipes"].([]string); !ok {
		t.Error("Expected known recipe names in miss response")
	}
}

func TestSearchFAQsTool(t *testing.T) {
	reg, exec := testRegistry(t)

	resp := invoke(t, reg, exec, "search_faqs", map[string]any{"query": "is there a delivery fee"})
	if resp["found"] != true {
		t.Fatalf("Expected FAQ hits, got %v", resp)
	}
	results, ok := resp["faqs"].([]faq.FAQ)
	if !ok {
		t.Fatalf("Expected FAQ entries, got %T", resp["faqs"])
	}
	if results[0].Category != "pricing" {
		t.Errorf("Expected the fee entry first, got %q", results[0].Question)
	}

	resp = invoke(t, reg, exec, "search_faqs", map[string]any{"query": "repairing bicycles"})
	if resp["found"] != false {
		t.Error("Expected no FAQ match for off-topic question")
	}
}

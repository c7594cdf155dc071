package toolsetup

import (
	"fmt"

	"github.com/HackerKing5128/voicecart/internal/tools"
	"github.com/HackerKing5128/voicecart/internal/tools/catalog"
)

// RegisterToolBuilders registers all tool builders with the factory.
// This function exists in a separate package to avoid import cycles.
func RegisterToolBuilders(factory *tools.ToolFactory) error {
	builders := map[string]tools.ToolBuilder{
		// Catalog, recipe and FAQ tools
		"search_catalog": &catalog.CatalogSearchToolBuilder{},
		"get_item":       &catalog.ItemInfoToolBuilder{},
		"suggest_recipe": &catalog.RecipeSuggestToolBuilder{},
		"search_faqs":    &catalog.FAQSearchToolBuilder{},

		// Cart tools
		"add_to_cart":      &catalog.CartAddToolBuilder{},
		"remove_from_cart": &catalog.CartRemoveToolBuilder{},
		"update_quantity":  &catalog.CartQuantityToolBuilder{},
		"view_cart":        &catalog.CartViewToolBuilder{},
		"clear_cart":       &catalog.CartClearToolBuilder{},

		// Order tools
		"place_order":       &catalog.OrderPlaceToolBuilder{},
		"get_order_status":  &catalog.OrderStatusToolBuilder{},
		"get_latest_order":  &catalog.OrderLatestToolBuilder{},
		"get_order_history": &catalog.OrderHistoryToolBuilder{},
		"cancel_order":      &catalog.OrderCancelToolBuilder{},

		// Fraud alert tools
		"lookup_fraud_case":  &catalog.FraudLookupToolBuilder{},
		"verify_identity":    &catalog.FraudVerifyToolBuilder{},
		"resolve_fraud_case": &catalog.FraudResolveToolBuilder{},
	}

	for name, builder := range builders {
		if err := factory.RegisterBuilder(name, builder); err != nil {
			return fmt.Errorf("failed to register %s tool: %w", name, err)
		}
	}

	return nil
}

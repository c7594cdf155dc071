package catalog

import (
	"context"
	"fmt"

	catalogdomain "github.com/HackerKing5128/voicecart/internal/domains/catalog"
	"github.com/HackerKing5128/voicecart/internal/tools"
	"github.com/HackerKing5128/voicecart/pkg/toolsystem"
)

// CatalogSearchToolBuilder builds a tool to search the grocery catalog
type CatalogSearchToolBuilder struct{}

func (b *CatalogSearchToolBuilder) Build(deps *tools.ToolDependencies) (toolsystem.Tool, error) {
	return toolsystem.NewToolBuilder("search_catalog", "1.0.0", "Search the grocery catalog by name, category or tag. A blank query lists everything.").
		AddStringParameter("query", "Search term, e.g. 'bread' or 'dairy'", false).
		SetHandler(func(ctx context.Context, args map[string]any) (map[string]any, error) {
			query := toolsystem.OptionalString(args, "query", "")

			items, err := deps.CatalogService.Search(ctx, query)
			if err != nil {
				return nil, fmt.Errorf("failed to search catalog: %w", err)
			}

			return map[string]any{
				"items": items,
				"count": len(items),
				"query": query,
			}, nil
		}).
		AddTags("catalog", "search").
		Build()
}

// ItemInfoToolBuilder builds a tool to fetch a single catalog item
type ItemInfoToolBuilder struct{}

func (b *ItemInfoToolBuilder) Build(deps *tools.ToolDependencies) (toolsystem.Tool, error) {
	return toolsystem.NewToolBuilder("get_item", "1.0.0", "Fetch a single catalog item by its id").
		AddStringParameter("item_id", "Catalog item id, e.g. 'bread-001'", true).
		SetHandler(func(ctx context.Context, args map[string]any) (map[string]any, error) {
			itemID, err := toolsystem.RequireString(args, "item_id")
			if err != nil {
				return nil, err
			}

			item, err := deps.CatalogService.GetItem(ctx, itemID)
			if err != nil {
				return nil, err
			}

			return map[string]any{"item": item}, nil
		}).
		AddTags("catalog", "lookup").
		Build()
}

// RecipeSuggestToolBuilder builds a tool that maps a dish name to its
// ingredient list, resolved against the catalog.
type RecipeSuggestToolBuilder struct{}

func (b *RecipeSuggestToolBuilder) Build(deps *tools.ToolDependencies) (toolsystem.Tool, error) {
	return toolsystem.NewToolBuilder("suggest_recipe", "1.0.0", "Suggest ingredients for a named dish, e.g. 'pasta night'").
		AddStringParameter("dish", "The dish or meal the customer wants to cook", true).
		SetHandler(func(ctx context.Context, args map[string]any) (map[string]any, error) {
			dish, err := toolsystem.RequireString(args, "dish")
			if err != nil {
				return nil, err
			}

			r := deps.Recipes.Resolve(dish)
			if r == nil {
				known := deps.Recipes.All()
				names := make([]string, len(known))
				for i, k := range known {
					names[i] = k.Name
				}
				return map[string]any{
					"found":         false,
					"dish":          dish,
					"known_recipes": names,
				}, nil
			}

			// Unknown ingredient ids are skipped rather than failing the
			// whole suggestion.
			ingredients := make([]catalogdomain.Item, 0, len(r.Items))
			for _, id := range r.Items {
				item, err := deps.CatalogService.GetItem(ctx, id)
				if err != nil {
					deps.Logger.Warnf("recipe %q references unknown item %s", r.Name, id)
					continue
				}
				ingredients = append(ingredients, *item)
			}

			return map[string]any{
				"found":       true,
				"recipe":      r.Name,
				"description": r.Description,
				"ingredients": ingredients,
			}, nil
		}).
		AddTags("recipe", "suggest").
		Build()
}

// CartAddToolBuilder builds a tool to add an item to the session cart
type CartAddToolBuilder struct{}

func (b *CartAddToolBuilder) Build(deps *tools.ToolDependencies) (toolsystem.Tool, error) {
	return toolsystem.NewToolBuilder("add_to_cart", "1.0.0", "Add a catalog item to the cart. Adding an item already in the cart increases its quantity.").
		AddStringParameter("item_id", "Catalog item id to add", true).
		AddNumberParameter("quantity", "How many to add, defaults to 1", false).
		AddStringParameter("session_id", "Cart session id", false).
		SetHandler(func(ctx context.Context, args map[string]any) (map[string]any, error) {
			itemID, err := toolsystem.RequireString(args, "item_id")
			if err != nil {
				return nil, err
			}
			quantity := toolsystem.OptionalInt(args, "quantity", 1)
			session := toolsystem.OptionalString(args, "session_id", tools.DefaultSession)

			line, err := deps.CartService.AddItem(ctx, session, itemID, quantity)
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"added":    line.Item.Name,
				"quantity": line.Quantity,
				"cart":     deps.CartService.GetContents(ctx, session),
			}, nil
		}).
		AddTags("cart", "add").
		Build()
}

// CartRemoveToolBuilder builds a tool to remove an item from the cart
type CartRemoveToolBuilder struct{}

func (b *CartRemoveToolBuilder) Build(deps *tools.ToolDependencies) (toolsystem.Tool, error) {
	return toolsystem.NewToolBuilder("remove_from_cart", "1.0.0", "Remove an item from the cart entirely").
		AddStringParameter("item_id", "Catalog item id to remove", true).
		AddStringParameter("session_id", "Cart session id", false).
		SetHandler(func(ctx context.Context, args map[string]any) (map[string]any, error) {
			itemID, err := toolsystem.RequireString(args, "item_id")
			if err != nil {
				return nil, err
			}
			session := toolsystem.OptionalString(args, "session_id", tools.DefaultSession)

			line, err := deps.CartService.RemoveItem(ctx, session, itemID)
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"removed": line.Item.Name,
				"cart":    deps.CartService.GetContents(ctx, session),
			}, nil
		}).
		AddTags("cart", "remove").
		Build()
}

// CartQuantityToolBuilder builds a tool to set a line's quantity
type CartQuantityToolBuilder struct{}

func (b *CartQuantityToolBuilder) Build(deps *tools.ToolDependencies) (toolsystem.Tool, error) {
	return toolsystem.NewToolBuilder("update_quantity", "1.0.0", "Set the quantity of a cart line. Zero or less removes the line.").
		AddStringParameter("item_id", "Catalog item id to update", true).
		AddNumberParameter("quantity", "New quantity for the line", true).
		AddStringParameter("session_id", "Cart session id", false).
		SetHandler(func(ctx context.Context, args map[string]any) (map[string]any, error) {
			itemID, err := toolsystem.RequireString(args, "item_id")
			if err != nil {
				return nil, err
			}
			quantity, ok := args["quantity"].(float64)
			if !ok {
				return nil, fmt.Errorf("quantity parameter is required and must be a number")
			}
			session := toolsystem.OptionalString(args, "session_id", tools.DefaultSession)

			line, err := deps.CartService.SetQuantity(ctx, session, itemID, int(quantity))
			if err != nil {
				return nil, err
			}

			result := map[string]any{
				"cart": deps.CartService.GetContents(ctx, session),
			}
			if int(quantity) <= 0 {
				result["removed"] = line.Item.Name
			} else {
				result["item"] = line.Item.Name
				result["quantity"] = line.Quantity
			}
			return result, nil
		}).
		AddTags("cart", "update").
		Build()
}

// CartViewToolBuilder builds a tool to read the cart contents
type CartViewToolBuilder struct{}

func (b *CartViewToolBuilder) Build(deps *tools.ToolDependencies) (toolsystem.Tool, error) {
	return toolsystem.NewToolBuilder("view_cart", "1.0.0", "Show the current cart contents and running total").
		AddStringParameter("session_id", "Cart session id", false).
		SetHandler(func(ctx context.Context, args map[string]any) (map[string]any, error) {
			session := toolsystem.OptionalString(args, "session_id", tools.DefaultSession)
			return map[string]any{
				"cart": deps.CartService.GetContents(ctx, session),
			}, nil
		}).
		AddTags("cart", "view").
		Build()
}

// CartClearToolBuilder builds a tool to empty the cart
type CartClearToolBuilder struct{}

func (b *CartClearToolBuilder) Build(deps *tools.ToolDependencies) (toolsystem.Tool, error) {
	return toolsystem.NewToolBuilder("clear_cart", "1.0.0", "Remove every item from the cart").
		AddStringParameter("session_id", "Cart session id", false).
		SetHandler(func(ctx context.Context, args map[string]any) (map[string]any, error) {
			session := toolsystem.OptionalString(args, "session_id", tools.DefaultSession)
			deps.CartService.Clear(ctx, session)
			return map[string]any{"cleared": true}, nil
		}).
		AddTags("cart", "clear").
		Build()
}

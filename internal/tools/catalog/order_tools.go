package catalog

import (
	"context"

	"github.com/HackerKing5128/voicecart/internal/tools"
	"github.com/HackerKing5128/voicecart/pkg/toolsystem"
)

// OrderPlaceToolBuilder builds a tool that commits the cart into an order
type OrderPlaceToolBuilder struct{}

func (b *OrderPlaceToolBuilder) Build(deps *tools.ToolDependencies) (toolsystem.Tool, error) {
	return toolsystem.NewToolBuilder("place_order", "1.0.0", "Place an order from the current cart. The cart is emptied on success.").
		AddStringParameter("customer_name", "Name for the order, defaults to Guest", false).
		AddStringParameter("session_id", "Cart session id", false).
		SetHandler(func(ctx context.Context, args map[string]any) (map[string]any, error) {
			session := toolsystem.OptionalString(args, "session_id", tools.DefaultSession)
			customer := toolsystem.OptionalString(args, "customer_name", "")

			c := deps.CartService.SessionCart(session)
			o, err := deps.OrderService.PlaceOrder(ctx, c, customer)
			if err != nil {
				return nil, err
			}

			return map[string]any{"order": o}, nil
		}).
		AddTags("order", "place").
		Build()
}

// OrderStatusToolBuilder builds a tool to check one order's status
type OrderStatusToolBuilder struct{}

func (b *OrderStatusToolBuilder) Build(deps *tools.ToolDependencies) (toolsystem.Tool, error) {
	return toolsystem.NewToolBuilder("get_order_status", "1.0.0", "Look up an order by id and report its delivery status").
		AddStringParameter("order_id", "Order id, e.g. 'FM-3FA2B1'", true).
		SetHandler(func(ctx context.Context, args map[string]any) (map[string]any, error) {
			orderID, err := toolsystem.RequireString(args, "order_id")
			if err != nil {
				return nil, err
			}

			o, err := deps.OrderService.GetOrder(ctx, orderID)
			if err != nil {
				return nil, err
			}

			return map[string]any{"order": o}, nil
		}).
		AddTags("order", "status").
		Build()
}

// OrderLatestToolBuilder builds a tool that fetches the newest order
type OrderLatestToolBuilder struct{}

func (b *OrderLatestToolBuilder) Build(deps *tools.ToolDependencies) (toolsystem.Tool, error) {
	return toolsystem.NewToolBuilder("get_latest_order", "1.0.0", "Fetch the most recently placed order").
		SetHandler(func(ctx context.Context, args map[string]any) (map[string]any, error) {
			o, err := deps.OrderService.GetLatestOrder(ctx)
			if err != nil {
				return nil, err
			}

			return map[string]any{"order": o}, nil
		}).
		AddTags("order", "latest").
		Build()
}

// OrderHistoryToolBuilder builds a tool listing recent orders
type OrderHistoryToolBuilder struct{}

func (b *OrderHistoryToolBuilder) Build(deps *tools.ToolDependencies) (toolsystem.Tool, error) {
	return toolsystem.NewToolBuilder("get_order_history", "1.0.0", "List recent orders, newest first").
		AddNumberParameter("limit", "Maximum number of orders to return, defaults to 10", false).
		SetHandler(func(ctx context.Context, args map[string]any) (map[string]any, error) {
			limit := toolsystem.OptionalInt(args, "limit", 10)

			orders, err := deps.OrderService.OrderHistory(ctx, limit)
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"orders": orders,
				"count":  len(orders),
			}, nil
		}).
		AddTags("order", "history").
		Build()
}

// OrderCancelToolBuilder builds a tool to cancel an in-flight order
type OrderCancelToolBuilder struct{}

func (b *OrderCancelToolBuilder) Build(deps *tools.ToolDependencies) (toolsystem.Tool, error) {
	return toolsystem.NewToolBuilder("cancel_order", "1.0.0", "Cancel an order that has not yet been delivered").
		AddStringParameter("order_id", "Order id to cancel", true).
		SetHandler(func(ctx context.Context, args map[string]any) (map[string]any, error) {
			orderID, err := toolsystem.RequireString(args, "order_id")
			if err != nil {
				return nil, err
			}

			o, err := deps.OrderService.Cancel(ctx, orderID)
			if err != nil {
				return nil, err
			}

			return map[string]any{"order": o}, nil
		}).
		AddTags("order", "cancel").
		Build()
}

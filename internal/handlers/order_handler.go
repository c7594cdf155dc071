package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HackerKing5128/voicecart/internal/domains/cart"
	"github.com/HackerKing5128/voicecart/internal/domains/order"
	"github.com/HackerKing5128/voicecart/pkg/Logger"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService order.Service
	cartService  cart.Service
	logger       *Logger.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService order.Service, cartService cart.Service, logger *Logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		cartService:  cartService,
		logger:       logger,
	}
}

// PlaceOrder handles committing the cart into an order
// @Summary Place an order
// @Description Commit the session's cart into a persisted order. The cart is emptied on success.
// @Tags Orders
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Param request body PlaceOrderRequest false "Customer name"
// @Success 201 {object} OrderResponse "The created order"
// @Failure 409 {object} ErrorResponse "Cart is empty"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	// Body is optional, a bare POST orders for the default customer.
	_ = c.ShouldBindJSON(&req)

	sessionCart := h.cartService.SessionCart(SessionID(c))
	o, err := h.orderService.PlaceOrder(c.Request.Context(), sessionCart, req.CustomerName)
	if err != nil {
		switch err {
		case order.ErrEmptyCart:
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Cart is empty"})
		default:
			h.logger.Errorf("place order error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, OrderResponse{Order: *o})
}

// GetOrder handles single order lookup
// @Summary Get an order
// @Description Fetch one order with its line items and current status
// @Tags Orders
// @Produce json
// @Param id path string true "Order id, e.g. FM-3FA2B1"
// @Success 200 {object} OrderResponse "The order"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case order.ErrOrderNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
		default:
			h.logger.Errorf("order lookup error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, OrderResponse{Order: *o})
}

// GetLatestOrder handles fetching the newest order
// @Summary Get the latest order
// @Description Fetch the most recently placed order
// @Tags Orders
// @Produce json
// @Success 200 {object} OrderResponse "The latest order"
// @Failure 404 {object} ErrorResponse "No orders yet"
// @Router /orders/latest [get]
func (h *OrderHandler) GetLatestOrder(c *gin.Context) {
	o, err := h.orderService.GetLatestOrder(c.Request.Context())
	if err != nil {
		switch err {
		case order.ErrOrderNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No orders yet"})
		default:
			h.logger.Errorf("latest order error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, OrderResponse{Order: *o})
}

// ListOrders handles order history
// @Summary List recent orders
// @Description List orders newest first, capped by the limit parameter
// @Tags Orders
// @Produce json
// @Param limit query int false "Maximum orders to return, defaults to 10"
// @Success 200 {object} ListOrdersResponse "Recent orders"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	limit := 10
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	orders, err := h.orderService.OrderHistory(c.Request.Context(), limit)
	if err != nil {
		h.logger.Errorf("order history error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, ListOrdersResponse{
		Orders: orders,
		Count:  len(orders),
	})
}

// CancelOrder handles cancelling an in-flight order
// @Summary Cancel an order
// @Description Cancel an order that has not been delivered yet
// @Tags Orders
// @Produce json
// @Param id path string true "Order id"
// @Success 200 {object} OrderResponse "The cancelled order"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 409 {object} ErrorResponse "Order already delivered or cancelled"
// @Router /orders/{id} [delete]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	o, err := h.orderService.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case order.ErrOrderNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
		case order.ErrOrderTerminal:
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Order already delivered or cancelled"})
		default:
			h.logger.Errorf("cancel order error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, OrderResponse{Order: *o})
}

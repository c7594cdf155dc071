package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HackerKing5128/voicecart/internal/domains/cart"
	"github.com/HackerKing5128/voicecart/internal/domains/catalog"
	"github.com/HackerKing5128/voicecart/pkg/Logger"
)

// CartHandler handles cart HTTP requests
type CartHandler struct {
	cartService cart.Service
	logger      *Logger.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService cart.Service, logger *Logger.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// GetCart handles cart reads
// @Summary View the cart
// @Description Show the session's cart contents and running total
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Success 200 {object} CartResponse "The cart contents"
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	contents := h.cartService.GetContents(c.Request.Context(), SessionID(c))
	c.JSON(http.StatusOK, CartResponse{Cart: contents})
}

// AddItem handles cart additions
// @Summary Add an item to the cart
// @Description Add a catalog item. Re-adding an existing line increases its quantity.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Param request body AddToCartRequest true "Item and quantity"
// @Success 200 {object} CartResponse "Updated cart contents"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	session := SessionID(c)
	_, err := h.cartService.AddItem(c.Request.Context(), session, req.ItemID, req.Quantity)
	if err != nil {
		switch err {
		case catalog.ErrItemNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Item not found"})
		default:
			h.logger.Errorf("cart add error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, CartResponse{Cart: h.cartService.GetContents(c.Request.Context(), session)})
}

// UpdateQuantity handles line quantity changes
// @Summary Set a line's quantity
// @Description Set the quantity of a cart line. Zero or less removes the line.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Param id path string true "Item id"
// @Param request body UpdateQuantityRequest true "New quantity"
// @Success 200 {object} CartResponse "Updated cart contents"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Line not found"
// @Router /cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	session := SessionID(c)
	_, err := h.cartService.SetQuantity(c.Request.Context(), session, c.Param("id"), req.Quantity)
	if err != nil {
		switch err {
		case cart.ErrLineNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Line not found"})
		default:
			h.logger.Errorf("cart update error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, CartResponse{Cart: h.cartService.GetContents(c.Request.Context(), session)})
}

// RemoveItem handles line removal
// @Summary Remove an item from the cart
// @Description Remove the line for an item id entirely
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Param id path string true "Item id"
// @Success 200 {object} CartResponse "Updated cart contents"
// @Failure 404 {object} ErrorResponse "Line not found"
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	session := SessionID(c)
	_, err := h.cartService.RemoveItem(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		switch err {
		case cart.ErrLineNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Line not found"})
		default:
			h.logger.Errorf("cart remove error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, CartResponse{Cart: h.cartService.GetContents(c.Request.Context(), session)})
}

// ClearCart handles emptying the cart
// @Summary Clear the cart
// @Description Remove every line from the session's cart
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Success 200 {object} SuccessResponse "Cart cleared"
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cartService.Clear(c.Request.Context(), SessionID(c))
	c.JSON(http.StatusOK, SuccessResponse{Message: "Cart cleared"})
}

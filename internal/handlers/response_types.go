package handlers

import (
	"github.com/HackerKing5128/voicecart/internal/domains/cart"
	"github.com/HackerKing5128/voicecart/internal/domains/catalog"
	"github.com/HackerKing5128/voicecart/internal/domains/faq"
	"github.com/HackerKing5128/voicecart/internal/domains/fraudcase"
	"github.com/HackerKing5128/voicecart/internal/domains/order"
	"github.com/HackerKing5128/voicecart/internal/domains/recipe"
	"github.com/HackerKing5128/voicecart/pkg/toolsystem"
)

// Response wrapper types for Swagger documentation

// SuccessResponse represents a generic success response
type SuccessResponse struct {
	Message string `json:"message" example:"Operation completed successfully"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Something went wrong"`
	Details string `json:"details,omitempty" example:"Validation error details"`
}

// ListItemsResponse represents the response for listing or searching catalog items
type ListItemsResponse struct {
	Items []catalog.Item `json:"items"`
	Count int            `json:"count" example:"5"`
	Query string         `json:"query,omitempty" example:"bread"`
}

// ItemResponse represents the response for a single catalog item
type ItemResponse struct {
	Item catalog.Item `json:"item"`
}

// RecipeResponse represents the response for a resolved recipe
type RecipeResponse struct {
	Recipe      recipe.Recipe  `json:"recipe"`
	Ingredients []catalog.Item `json:"ingredients"`
}

// ListRecipesResponse represents the response for listing known recipes
type ListRecipesResponse struct {
	Recipes []recipe.Recipe `json:"recipes"`
}

// FAQSearchResponse represents the response for an FAQ search
type FAQSearchResponse struct {
	FAQs  []faq.FAQ `json:"faqs"`
	Count int       `json:"count" example:"2"`
	Query string    `json:"query" example:"is delivery free"`
}

// CartResponse represents the response for cart reads and mutations
type CartResponse struct {
	Cart cart.Contents `json:"cart"`
}

// OrderResponse represents the response for a single order
type OrderResponse struct {
	Order order.Order `json:"order"`
}

// ListOrdersResponse represents the response for listing orders
type ListOrdersResponse struct {
	Orders []order.Order `json:"orders"`
	Count  int           `json:"count" example:"3"`
}

// PlaceOrderRequest represents the request body for placing an order
type PlaceOrderRequest struct {
	CustomerName string `json:"customer_name" example:"Alice"`
}

// AddToCartRequest represents the request body for adding a cart item
type AddToCartRequest struct {
	ItemID   string `json:"item_id" binding:"required" example:"bread-001"`
	Quantity int    `json:"quantity" example:"2"`
}

// UpdateQuantityRequest represents the request body for setting a line quantity
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required" example:"3"`
}

// FraudLookupResponse represents the pre-verification view of a case
type FraudLookupResponse struct {
	CaseID           uint   `json:"case_id" example:"1"`
	UserName         string `json:"user_name" example:"John"`
	SecurityQuestion string `json:"security_question" example:"What is the name of your first pet?"`
}

// VerifyIdentityRequest represents the request body for identity checks
type VerifyIdentityRequest struct {
	Answer string `json:"answer" binding:"required" example:"perry"`
}

// VerifyIdentityResponse represents the result of an identity check
type VerifyIdentityResponse struct {
	Verified bool            `json:"verified" example:"true"`
	Case     *fraudcase.Case `json:"case,omitempty"`
}

// ResolveCaseRequest represents the request body for closing a fraud case
type ResolveCaseRequest struct {
	Outcome string `json:"outcome" binding:"required" example:"confirmed_safe"`
	Note    string `json:"note" example:"Customer confirmed the purchase"`
}

// CaseResponse represents the response for a fraud case
type CaseResponse struct {
	Case fraudcase.Case `json:"case"`
}

// ToolSpecsResponse represents the response for listing registered tools
type ToolSpecsResponse struct {
	Tools []toolsystem.ToolSpec `json:"tools"`
	Count int                   `json:"count" example:"16"`
}

// InvokeToolRequest represents the request body for invoking a tool
type InvokeToolRequest struct {
	Arguments map[string]any `json:"arguments"`
}

// InvokeToolResponse represents the result of a tool invocation
type InvokeToolResponse struct {
	Call toolsystem.ToolCall `json:"call"`
}

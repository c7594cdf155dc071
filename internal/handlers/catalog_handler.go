package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HackerKing5128/voicecart/internal/domains/catalog"
	"github.com/HackerKing5128/voicecart/internal/domains/recipe"
	"github.com/HackerKing5128/voicecart/pkg/Logger"
)

// CatalogHandler handles catalog and recipe HTTP requests
type CatalogHandler struct {
	catalogService catalog.Service
	recipes        *recipe.Resolver
	logger         *Logger.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService catalog.Service, recipes *recipe.Resolver, logger *Logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		recipes:        recipes,
		logger:         logger,
	}
}

// Search handles catalog search
// @Summary Search the catalog
// @Description Search catalog items by name, category or tag. A blank query lists everything.
// @Tags Catalog
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} ListItemsResponse "Matching items"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /catalog [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	query := c.Query("q")

	items, err := h.catalogService.Search(c.Request.Context(), query)
	if err != nil {
		h.logger.Errorf("catalog search error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, ListItemsResponse{
		Items: items,
		Count: len(items),
		Query: query,
	})
}

// GetItem handles single item lookup
// @Summary Get a catalog item
// @Description Fetch one catalog item by id
// @Tags Catalog
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} ItemResponse "The item"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /catalog/{id} [get]
func (h *CatalogHandler) GetItem(c *gin.Context) {
	itemID := c.Param("id")

	item, err := h.catalogService.GetItem(c.Request.Context(), itemID)
	if err != nil {
		switch err {
		case catalog.ErrItemNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Item not found"})
		default:
			h.logger.Errorf("item lookup error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, ItemResponse{Item: *item})
}

// ListRecipes handles recipe listing
// @Summary List known recipes
// @Description List every dish the recipe resolver knows about
// @Tags Recipes
// @Produce json
// @Success 200 {object} ListRecipesResponse "All recipes"
// @Router /recipes [get]
func (h *CatalogHandler) ListRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, ListRecipesResponse{Recipes: h.recipes.All()})
}

// SuggestRecipe handles dish-to-ingredients resolution
// @Summary Suggest ingredients for a dish
// @Description Resolve a dish name to a recipe and its catalog ingredients
// @Tags Recipes
// @Produce json
// @Param dish query string true "Dish name, e.g. 'pasta night'"
// @Success 200 {object} RecipeResponse "The recipe and its ingredients"
// @Failure 400 {object} ErrorResponse "Missing dish parameter"
// @Failure 404 {object} ErrorResponse "No matching recipe"
// @Router /recipes/suggest [get]
func (h *CatalogHandler) SuggestRecipe(c *gin.Context) {
	dish := c.Query("dish")
	if dish == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "dish query parameter required"})
		return
	}

	r := h.recipes.Resolve(dish)
	if r == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "No matching recipe"})
		return
	}

	ingredients := make([]catalog.Item, 0, len(r.Items))
	for _, id := range r.Items {
		item, err := h.catalogService.GetItem(c.Request.Context(), id)
		if err != nil {
			h.logger.Warnf("recipe %q references unknown item %s", r.Name, id)
			continue
		}
		ingredients = append(ingredients, *item)
	}

	c.JSON(http.StatusOK, RecipeResponse{
		Recipe:      *r,
		Ingredients: ingredients,
	})
}

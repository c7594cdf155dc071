package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HackerKing5128/voicecart/internal/domains/faq"
	"github.com/HackerKing5128/voicecart/pkg/Logger"
)

// FAQHandler handles FAQ search HTTP requests
type FAQHandler struct {
	faqs   *faq.Searcher
	logger *Logger.Logger
}

// NewFAQHandler creates a new FAQ handler
func NewFAQHandler(faqs *faq.Searcher, logger *Logger.Logger) *FAQHandler {
	return &FAQHandler{faqs: faqs, logger: logger}
}

// Search handles FAQ search
// @Summary Search store FAQs
// @Description Keyword search over the store FAQ table, best match first
// @Tags FAQs
// @Produce json
// @Param q query string true "The customer's question"
// @Param limit query int false "Max results, defaults to 3"
// @Success 200 {object} FAQSearchResponse "Matching FAQ entries"
// @Failure 400 {object} ErrorResponse "Missing q parameter"
// @Router /faqs/search [get]
func (h *FAQHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "q query parameter required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	results := h.faqs.Search(query, limit)

	c.JSON(http.StatusOK, FAQSearchResponse{
		FAQs:  results,
		Count: len(results),
		Query: query,
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HackerKing5128/voicecart/pkg/Logger"
	"github.com/HackerKing5128/voicecart/pkg/toolsystem"
)

// ToolHandler exposes the tool registry to the voice agent runtime.
type ToolHandler struct {
	registry toolsystem.Registry
	executor toolsystem.Executor
	logger   *Logger.Logger
}

// NewToolHandler creates a new tool handler
func NewToolHandler(registry toolsystem.Registry, executor toolsystem.Executor, logger *Logger.Logger) *ToolHandler {
	return &ToolHandler{
		registry: registry,
		executor: executor,
		logger:   logger,
	}
}

// ListTools handles tool spec listing
// @Summary List registered tools
// @Description List the schema of every tool the agent can call
// @Tags Tools
// @Produce json
// @Success 200 {object} ToolSpecsResponse "All tool specs"
// @Router /tools [get]
func (h *ToolHandler) ListTools(c *gin.Context) {
	specs := h.registry.Specs()
	c.JSON(http.StatusOK, ToolSpecsResponse{
		Tools: specs,
		Count: len(specs),
	})
}

// InvokeTool handles a single tool invocation
// @Summary Invoke a tool
// @Description Execute one registered tool by name with JSON arguments
// @Tags Tools
// @Accept json
// @Produce json
// @Param name path string true "Tool name, e.g. search_catalog"
// @Param request body InvokeToolRequest true "Tool arguments"
// @Success 200 {object} InvokeToolResponse "The completed call"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Tool not found"
// @Failure 422 {object} ErrorResponse "Tool call failed"
// @Router /tools/{name}/invoke [post]
func (h *ToolHandler) InvokeTool(c *gin.Context) {
	name := c.Param("name")
	if _, ok := h.registry.GetByName(name); !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Tool not found"})
		return
	}

	var req InvokeToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}
	if req.Arguments == nil {
		req.Arguments = map[string]any{}
	}

	// Session affinity for cart tools comes from the header unless the
	// caller set one explicitly.
	if _, ok := req.Arguments["session_id"]; !ok {
		req.Arguments["session_id"] = SessionID(c)
	}

	call := toolsystem.ToolCall{
		Name:      name,
		Arguments: req.Arguments,
	}

	completed, _, err := h.executor.Execute(c.Request.Context(), h.registry, call)
	if err != nil {
		h.logger.Warnf("tool %s failed: %v", name, err)
		if completed != nil {
			c.JSON(http.StatusUnprocessableEntity, InvokeToolResponse{Call: *completed})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, InvokeToolResponse{Call: *completed})
}

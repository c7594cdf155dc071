package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HackerKing5128/voicecart/internal/domains/fraudcase"
	"github.com/HackerKing5128/voicecart/pkg/Logger"
)

// FraudHandler handles fraud case HTTP requests
type FraudHandler struct {
	fraudService fraudcase.Service
	logger       *Logger.Logger
}

// NewFraudHandler creates a new fraud handler
func NewFraudHandler(fraudService fraudcase.Service, logger *Logger.Logger) *FraudHandler {
	return &FraudHandler{
		fraudService: fraudService,
		logger:       logger,
	}
}

func (h *FraudHandler) caseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid case id"})
		return 0, false
	}
	return uint(id), true
}

// Lookup handles finding a cardholder's open case
// @Summary Look up a pending fraud case
// @Description Find the open fraud alert for a cardholder by first name. Only the security question is revealed.
// @Tags Fraud
// @Produce json
// @Param user query string true "The cardholder's first name"
// @Success 200 {object} FraudLookupResponse "The case id and security question"
// @Failure 400 {object} ErrorResponse "Missing user parameter"
// @Failure 404 {object} ErrorResponse "No pending case"
// @Router /fraud/cases [get]
func (h *FraudHandler) Lookup(c *gin.Context) {
	userName := c.Query("user")
	if userName == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "user query parameter required"})
		return
	}

	fc, err := h.fraudService.LookupPending(c.Request.Context(), userName)
	if err != nil {
		switch err {
		case fraudcase.ErrCaseNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No pending case for that name"})
		default:
			h.logger.Errorf("fraud lookup error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, FraudLookupResponse{
		CaseID:           fc.ID,
		UserName:         fc.UserName,
		SecurityQuestion: fc.SecurityQuestion,
	})
}

// Verify handles identity verification
// @Summary Verify the caller's identity
// @Description Check the caller's security answer. Transaction details are only revealed on a match.
// @Tags Fraud
// @Accept json
// @Produce json
// @Param id path int true "Case id"
// @Param request body VerifyIdentityRequest true "The security answer"
// @Success 200 {object} VerifyIdentityResponse "Whether the answer matched"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Case not found"
// @Router /fraud/cases/{id}/verify [post]
func (h *FraudHandler) Verify(c *gin.Context) {
	id, ok := h.caseID(c)
	if !ok {
		return
	}

	var req VerifyIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	err := h.fraudService.VerifyIdentity(c.Request.Context(), id, req.Answer)
	if err != nil {
		switch err {
		case fraudcase.ErrCaseNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Case not found"})
		case fraudcase.ErrAnswerMismatch:
			c.JSON(http.StatusOK, VerifyIdentityResponse{Verified: false})
		default:
			h.logger.Errorf("identity verify error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	fc, err := h.fraudService.GetCase(c.Request.Context(), id)
	if err != nil {
		h.logger.Errorf("case fetch error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, VerifyIdentityResponse{
		Verified: true,
		Case:     fc,
	})
}

// Resolve handles closing a case
// @Summary Resolve a fraud case
// @Description Close a pending case as confirmed_safe or fraud_reported
// @Tags Fraud
// @Accept json
// @Produce json
// @Param id path int true "Case id"
// @Param request body ResolveCaseRequest true "Outcome and note"
// @Success 200 {object} CaseResponse "The resolved case"
// @Failure 400 {object} ErrorResponse "Invalid outcome"
// @Failure 404 {object} ErrorResponse "Case not found"
// @Failure 409 {object} ErrorResponse "Case already resolved"
// @Router /fraud/cases/{id}/resolve [post]
func (h *FraudHandler) Resolve(c *gin.Context) {
	id, ok := h.caseID(c)
	if !ok {
		return
	}

	var req ResolveCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	fc, err := h.fraudService.Resolve(c.Request.Context(), id, fraudcase.Status(req.Outcome), req.Note)
	if err != nil {
		switch {
		case errors.Is(err, fraudcase.ErrCaseNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Case not found"})
		case errors.Is(err, fraudcase.ErrCaseClosed):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Case already resolved"})
		case errors.Is(err, fraudcase.ErrBadOutcome):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Outcome must be confirmed_safe or fraud_reported"})
		default:
			h.logger.Errorf("case resolve error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, CaseResponse{Case: *fc})
}

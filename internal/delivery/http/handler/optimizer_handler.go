package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/photomatch/photomatch-backend/internal/usecase/optimizer"
)

type OptimizerHandler struct {
	optimizerUseCase *optimizer.UseCase
}

func NewOptimizerHandler(optimizerUseCase *optimizer.UseCase) *OptimizerHandler {
	return &OptimizerHandler{
		optimizerUseCase: optimizerUseCase,
	}
}

// Select handles POST /optimizer/select
// @Summary Select top-K photographers
// @Description Rank feasible photographers for the client constraints and return the top K with score breakdowns
// @Tags optimizer
// @Accept json
// @Produce json
// @Param request body optimizer.Request true "Optimization constraints"
// @Success 200 {object} optimizer.SelectionResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /optimizer/select [post]
func (h *OptimizerHandler) Select(c *gin.Context) {
	var req optimizer.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Kind:  "validation",
			Error: "invalid request body: " + err.Error(),
		})
		return
	}

	result, err := h.optimizerUseCase.Select(c.Request.Context(), req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Explain handles POST /optimizer/explain
// @Summary Explain a selection
// @Description Run a selection and return a human-readable per-attribute contribution breakdown
// @Tags optimizer
// @Accept json
// @Produce json
// @Param request body optimizer.Request true "Optimization constraints"
// @Success 200 {object} optimizer.Explanation
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /optimizer/explain [post]
func (h *OptimizerHandler) Explain(c *gin.Context) {
	var req optimizer.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Kind:  "validation",
			Error: "invalid request body: " + err.Error(),
		})
		return
	}

	explanation, err := h.optimizerUseCase.Explain(c.Request.Context(), req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, explanation)
}

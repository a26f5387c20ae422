package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/photomatch/photomatch-backend/internal/domain"
)

// ErrorResponse is the structured error body every endpoint returns.
// Kind is stable and machine-checkable; Error is for humans.
type ErrorResponse struct {
	Kind               string                 `json:"kind"`
	Error              string                 `json:"error"`
	AllowedTransitions []domain.BookingStatus `json:"allowed_transitions,omitempty"`
}

// respondDomainError maps the domain error taxonomy onto HTTP statuses.
// Everything recoverable is turned into a structured response here;
// unrecognized errors become an opaque 500.
func respondDomainError(c *gin.Context, err error) {
	var invalidTransition *domain.InvalidTransitionError
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Kind: "validation", Error: err.Error()})
	case errors.Is(err, domain.ErrNoCandidates):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Kind: "no_candidates", Error: err.Error()})
	case errors.Is(err, domain.ErrSolverInfeasible):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Kind: "infeasible", Error: err.Error()})
	case errors.Is(err, domain.ErrBookingConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Kind: "conflict", Error: err.Error()})
	case errors.As(err, &invalidTransition):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Kind:               "invalid_transition",
			Error:              invalidTransition.Error(),
			AllowedTransitions: invalidTransition.Allowed,
		})
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrPhotographerNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Kind: "not_found", Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Kind: "internal", Error: "internal server error"})
	}
}

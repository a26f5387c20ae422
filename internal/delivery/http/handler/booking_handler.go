package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/photomatch/photomatch-backend/internal/usecase/booking"
)

type BookingHandler struct {
	bookingUseCase *booking.UseCase
}

func NewBookingHandler(bookingUseCase *booking.UseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// Create handles POST /bookings
// @Summary Create a booking
// @Description Create a booking in requested status; fails with 409 when the photographer already holds a non-terminal booking for that date
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body booking.CreateRequest true "Booking data"
// @Success 201 {object} booking.Response
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req booking.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Kind:  "validation",
			Error: "invalid request body: " + err.Error(),
		})
		return
	}

	resp, err := h.bookingUseCase.Create(c.Request.Context(), &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Get handles GET /bookings/:id
// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} booking.Response
// @Failure 404 {object} ErrorResponse
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	resp, err := h.bookingUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// List handles GET /bookings?client_id=...|photographer_id=...
// @Summary List bookings for a client or a photographer
// @Tags bookings
// @Produce json
// @Param client_id query int false "Client ID"
// @Param photographer_id query int false "Photographer ID"
// @Success 200 {array} booking.Response
// @Failure 400 {object} ErrorResponse
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	if raw := c.Query("client_id"); raw != "" {
		clientID, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Kind: "validation", Error: "client_id must be an integer"})
			return
		}
		resp, err := h.bookingUseCase.ListByClient(c.Request.Context(), clientID)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	if raw := c.Query("photographer_id"); raw != "" {
		photographerID, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Kind: "validation", Error: "photographer_id must be an integer"})
			return
		}
		resp, err := h.bookingUseCase.ListByPhotographer(c.Request.Context(), photographerID)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Kind:  "validation",
		Error: "either client_id or photographer_id query parameter is required",
	})
}

// UpdateStatus handles PATCH /bookings/:id/status
// @Summary Update booking status
// @Description Drive one lifecycle transition; the response lists the next allowed transitions
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body booking.UpdateStatusRequest true "Target status"
// @Success 200 {object} booking.Response
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req booking.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Kind:  "validation",
			Error: "invalid request body: " + err.Error(),
		})
		return
	}

	resp, err := h.bookingUseCase.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

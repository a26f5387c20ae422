// Package booking drives the reservation lifecycle: creation with
// double-booking prevention and validated status transitions.
package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/photomatch/photomatch-backend/internal/domain"
	"github.com/photomatch/photomatch-backend/internal/repository"
)

type UseCase struct {
	bookingRepo      repository.BookingRepository
	photographerRepo repository.PhotographerRepository
	logger           zerolog.Logger
}

func NewUseCase(
	bookingRepo repository.BookingRepository,
	photographerRepo repository.PhotographerRepository,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		photographerRepo: photographerRepo,
		logger:           logger.With().Str("component", "booking").Logger(),
	}
}

// CreateRequest is a booking creation request, typically built from an
// optimizer selection.
type CreateRequest struct {
	ClientID          int      `json:"client_id" binding:"required"`
	PhotographerID    int      `json:"photographer_id" binding:"required"`
	EventDate         string   `json:"event_date" binding:"required,datetime=2006-01-02"`
	EventTime         string   `json:"event_time" binding:"required"`
	Location          string   `json:"location" binding:"required"`
	EventType         string   `json:"event_type"`
	Notes             *string  `json:"notes"`
	Price             float64  `json:"price" binding:"required,gt=0"`
	OptimizationScore *float64 `json:"optimization_score"`
}

// UpdateStatusRequest asks for one lifecycle transition.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Response pairs a booking with the transitions a client may attempt
// next, so UIs can render available actions without hardcoding the
// lifecycle table.
type Response struct {
	Booking                *domain.Booking        `json:"booking"`
	NextAllowedTransitions []domain.BookingStatus `json:"next_allowed_transitions"`
}

func newResponse(b *domain.Booking) *Response {
	return &Response{Booking: b, NextAllowedTransitions: b.Status.NextAllowed()}
}

// Create validates the request and inserts the booking in `requested`
// status. The double-booking check happens atomically inside the store;
// a losing concurrent request gets domain.ErrBookingConflict.
func (uc *UseCase) Create(ctx context.Context, req *CreateRequest) (*Response, error) {
	if _, err := uc.photographerRepo.GetByID(ctx, req.PhotographerID); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:                uuid.NewString(),
		ClientID:          req.ClientID,
		PhotographerID:    req.PhotographerID,
		EventDate:         req.EventDate,
		EventTime:         req.EventTime,
		Location:          req.Location,
		EventType:         req.EventType,
		Notes:             req.Notes,
		Price:             req.Price,
		OptimizationScore: req.OptimizationScore,
		Status:            domain.BookingRequested,
	}

	if err := uc.bookingRepo.CreateIfAvailable(ctx, booking); err != nil {
		return nil, err
	}

	uc.logger.Info().
		Str("booking_id", booking.ID).
		Int("photographer_id", booking.PhotographerID).
		Str("event_date", booking.EventDate).
		Msg("booking created")

	return newResponse(booking), nil
}

// UpdateStatus drives one transition through the lifecycle table. An
// unknown target status is a validation error; a known status that the
// table does not allow from the booking's current state fails with an
// InvalidTransitionError naming the permitted next states.
func (uc *UseCase) UpdateStatus(ctx context.Context, id string, req *UpdateStatusRequest) (*Response, error) {
	target := domain.BookingStatus(req.Status)
	if !target.IsValid() {
		return nil, fmt.Errorf("%w: unknown booking status %q", domain.ErrValidation, req.Status)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(target) {
		return nil, &domain.InvalidTransitionError{
			From:    booking.Status,
			To:      target,
			Allowed: booking.Status.NextAllowed(),
		}
	}

	updated, err := uc.bookingRepo.UpdateStatus(ctx, id, booking.Status, target)
	if err != nil {
		return nil, err
	}

	uc.logger.Info().
		Str("booking_id", updated.ID).
		Str("from", string(booking.Status)).
		Str("to", string(updated.Status)).
		Msg("booking status updated")

	return newResponse(updated), nil
}

func (uc *UseCase) Get(ctx context.Context, id string) (*Response, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newResponse(booking), nil
}

func (uc *UseCase) ListByClient(ctx context.Context, clientID int) ([]*Response, error) {
	bookings, err := uc.bookingRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return toResponses(bookings), nil
}

func (uc *UseCase) ListByPhotographer(ctx context.Context, photographerID int) ([]*Response, error) {
	bookings, err := uc.bookingRepo.ListByPhotographer(ctx, photographerID)
	if err != nil {
		return nil, err
	}
	return toResponses(bookings), nil
}

func toResponses(bookings []*domain.Booking) []*Response {
	out := make([]*Response, len(bookings))
	for i, b := range bookings {
		out[i] = newResponse(b)
	}
	return out
}

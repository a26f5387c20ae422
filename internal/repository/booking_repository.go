package repository

import (
	"context"

	"github.com/photomatch/photomatch-backend/internal/domain"
)

// BookingRepository is the transactional booking store. CreateIfAvailable
// must check the double-booking invariant and insert as one atomic
// operation: two concurrent creations for the same photographer and date
// must not both succeed.
type BookingRepository interface {
	// CreateIfAvailable inserts the booking unless a non-terminal booking
	// already exists for the same photographer and event date, in which
	// case it returns domain.ErrBookingConflict.
	CreateIfAvailable(ctx context.Context, booking *domain.Booking) error

	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByClient(ctx context.Context, clientID int) ([]*domain.Booking, error)
	ListByPhotographer(ctx context.Context, photographerID int) ([]*domain.Booking, error)

	// HasActiveBooking reports whether the photographer holds a
	// non-terminal booking on the given date. Used by the candidate
	// filter's availability constraint.
	HasActiveBooking(ctx context.Context, photographerID int, eventDate string) (bool, error)

	// UpdateStatus moves the booking from one status to another. It fails
	// with domain.ErrBookingNotFound when no booking currently has the
	// expected from status, which also guards against lost updates from
	// concurrent transitions.
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) (*domain.Booking, error)
}

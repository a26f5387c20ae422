package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/photomatch/photomatch-backend/internal/domain"
	"github.com/photomatch/photomatch-backend/internal/repository"
)

type bookingRepository struct {
	mu       sync.Mutex
	bookings map[string]*domain.Booking
	// active indexes the non-terminal booking per photographer/date so
	// the conflict check and insert happen under one lock.
	active map[string]string
}

func NewBookingRepository() repository.BookingRepository {
	return &bookingRepository{
		bookings: make(map[string]*domain.Booking),
		active:   make(map[string]string),
	}
}

func slotKey(photographerID int, eventDate string) string {
	return fmt.Sprintf("%d|%s", photographerID, eventDate)
}

func (r *bookingRepository) CreateIfAvailable(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey(booking.PhotographerID, booking.EventDate)
	if _, taken := r.active[key]; taken {
		return domain.ErrBookingConflict
	}

	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	stored := *booking
	r.bookings[booking.ID] = &stored
	r.active[key] = booking.ID
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (r *bookingRepository) ListByClient(ctx context.Context, clientID int) ([]*domain.Booking, error) {
	return r.list(func(b *domain.Booking) bool { return b.ClientID == clientID })
}

func (r *bookingRepository) ListByPhotographer(ctx context.Context, photographerID int) ([]*domain.Booking, error) {
	return r.list(func(b *domain.Booking) bool { return b.PhotographerID == photographerID })
}

func (r *bookingRepository) list(match func(*domain.Booking) bool) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Booking
	for _, b := range r.bookings {
		if match(b) {
			copied := *b
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *bookingRepository) HasActiveBooking(ctx context.Context, photographerID int, eventDate string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, taken := r.active[slotKey(photographerID, eventDate)]
	return taken, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if booking.Status != from {
		return nil, &domain.InvalidTransitionError{From: booking.Status, To: to, Allowed: booking.Status.NextAllowed()}
	}

	booking.Status = to
	booking.UpdatedAt = time.Now().UTC()
	if !booking.IsActive() {
		delete(r.active, slotKey(booking.PhotographerID, booking.EventDate))
	}

	copied := *booking
	return &copied, nil
}

package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/photomatch/photomatch-backend/internal/domain"
)

func newBooking(id string, photographerID int, eventDate string) *domain.Booking {
	return &domain.Booking{
		ID:             id,
		ClientID:       42,
		PhotographerID: photographerID,
		EventDate:      eventDate,
		EventTime:      "14:00",
		Location:       "Botanical Garden",
		Price:          45000,
		Status:         domain.BookingRequested,
	}
}

func TestBookingRepository_CreateIfAvailable(t *testing.T) {
	Convey("Given an empty booking store", t, func() {
		ctx := context.Background()
		repo := NewBookingRepository()

		Convey("The first booking for a slot succeeds and stamps timestamps", func() {
			b := newBooking("b1", 1, "2026-09-12")
			So(repo.CreateIfAvailable(ctx, b), ShouldBeNil)
			So(b.CreatedAt.IsZero(), ShouldBeFalse)
			So(b.UpdatedAt.Equal(b.CreatedAt), ShouldBeTrue)
		})

		Convey("A second booking for the same photographer and date conflicts", func() {
			So(repo.CreateIfAvailable(ctx, newBooking("b1", 1, "2026-09-12")), ShouldBeNil)
			So(repo.CreateIfAvailable(ctx, newBooking("b2", 1, "2026-09-12")), ShouldEqual, domain.ErrBookingConflict)
			So(repo.CreateIfAvailable(ctx, newBooking("b3", 1, "2026-09-13")), ShouldBeNil)
			So(repo.CreateIfAvailable(ctx, newBooking("b4", 2, "2026-09-12")), ShouldBeNil)
		})

		Convey("Under concurrent creation exactly one request wins each slot", func() {
			const workers = 16

			var wg sync.WaitGroup
			errs := make([]error, workers)
			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					errs[i] = repo.CreateIfAvailable(ctx, newBooking(fmt.Sprintf("b%d", i), 1, "2026-09-12"))
				}(i)
			}
			wg.Wait()

			var wins, conflicts int
			for _, err := range errs {
				switch {
				case err == nil:
					wins++
				case errors.Is(err, domain.ErrBookingConflict):
					conflicts++
				}
			}
			So(wins, ShouldEqual, 1)
			So(conflicts, ShouldEqual, workers-1)

			taken, err := repo.HasActiveBooking(ctx, 1, "2026-09-12")
			So(err, ShouldBeNil)
			So(taken, ShouldBeTrue)
		})
	})
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	Convey("Given a stored requested booking", t, func() {
		ctx := context.Background()
		repo := NewBookingRepository()
		So(repo.CreateIfAvailable(ctx, newBooking("b1", 1, "2026-09-12")), ShouldBeNil)

		Convey("A matching compare-and-set transition succeeds", func() {
			updated, err := repo.UpdateStatus(ctx, "b1", domain.BookingRequested, domain.BookingAccepted)
			So(err, ShouldBeNil)
			So(updated.Status, ShouldEqual, domain.BookingAccepted)

			Convey("And the slot stays held while the booking is active", func() {
				taken, err := repo.HasActiveBooking(ctx, 1, "2026-09-12")
				So(err, ShouldBeNil)
				So(taken, ShouldBeTrue)
			})
		})

		Convey("A stale expected status fails with the current state's transitions", func() {
			_, err := repo.UpdateStatus(ctx, "b1", domain.BookingAccepted, domain.BookingPaid)
			var invalid *domain.InvalidTransitionError
			So(errors.As(err, &invalid), ShouldBeTrue)
			So(invalid.From, ShouldEqual, domain.BookingRequested)
		})

		Convey("A terminal transition releases the photographer's date", func() {
			_, err := repo.UpdateStatus(ctx, "b1", domain.BookingRequested, domain.BookingCancelled)
			So(err, ShouldBeNil)

			taken, err := repo.HasActiveBooking(ctx, 1, "2026-09-12")
			So(err, ShouldBeNil)
			So(taken, ShouldBeFalse)

			So(repo.CreateIfAvailable(ctx, newBooking("b2", 1, "2026-09-12")), ShouldBeNil)
		})

		Convey("An unknown id fails with not found", func() {
			_, err := repo.UpdateStatus(ctx, "missing", domain.BookingRequested, domain.BookingAccepted)
			So(err, ShouldEqual, domain.ErrBookingNotFound)
		})
	})
}

func TestBookingRepository_Queries(t *testing.T) {
	Convey("Given bookings for two clients", t, func() {
		ctx := context.Background()
		repo := NewBookingRepository()

		first := newBooking("b1", 1, "2026-09-12")
		second := newBooking("b2", 2, "2026-09-12")
		second.ClientID = 7
		So(repo.CreateIfAvailable(ctx, first), ShouldBeNil)
		So(repo.CreateIfAvailable(ctx, second), ShouldBeNil)

		Convey("GetByID returns a copy, not the stored record", func() {
			got, err := repo.GetByID(ctx, "b1")
			So(err, ShouldBeNil)
			got.Status = domain.BookingCompleted

			again, err := repo.GetByID(ctx, "b1")
			So(err, ShouldBeNil)
			So(again.Status, ShouldEqual, domain.BookingRequested)
		})

		Convey("ListByClient filters on the client", func() {
			got, err := repo.ListByClient(ctx, 7)
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 1)
			So(got[0].ID, ShouldEqual, "b2")
		})

		Convey("ListByPhotographer filters on the photographer", func() {
			got, err := repo.ListByPhotographer(ctx, 1)
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 1)
			So(got[0].ID, ShouldEqual, "b1")
		})
	})
}

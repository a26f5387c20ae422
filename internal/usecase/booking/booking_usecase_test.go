package booking_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/photomatch/photomatch-backend/internal/domain"
	"github.com/photomatch/photomatch-backend/internal/repository/memory"
	"github.com/photomatch/photomatch-backend/internal/usecase/booking"
)

func newTestUseCase() *booking.UseCase {
	photographers, _ := memory.DemoCatalog()
	return booking.NewUseCase(
		memory.NewBookingRepository(),
		memory.NewPhotographerRepository(photographers),
		zerolog.Nop(),
	)
}

func createRequest(photographerID int, eventDate string) *booking.CreateRequest {
	return &booking.CreateRequest{
		ClientID:       42,
		PhotographerID: photographerID,
		EventDate:      eventDate,
		EventTime:      "14:00",
		Location:       "Botanical Garden",
		EventType:      "wedding",
		Price:          45000,
	}
}

func TestUseCase_Create(t *testing.T) {
	Convey("Given a booking workflow over an empty store", t, func() {
		ctx := context.Background()
		uc := newTestUseCase()

		Convey("Creation starts the booking in requested status", func() {
			resp, err := uc.Create(ctx, createRequest(1, "2026-09-12"))
			So(err, ShouldBeNil)
			So(resp.Booking.ID, ShouldNotBeEmpty)
			So(resp.Booking.Status, ShouldEqual, domain.BookingRequested)
			So(resp.NextAllowedTransitions, ShouldResemble, []domain.BookingStatus{
				domain.BookingAccepted, domain.BookingCancelled, domain.BookingRejected,
			})
		})

		Convey("A second booking for the same photographer and date is a conflict", func() {
			_, err := uc.Create(ctx, createRequest(1, "2026-09-12"))
			So(err, ShouldBeNil)

			_, err = uc.Create(ctx, createRequest(1, "2026-09-12"))
			So(err, ShouldWrap, domain.ErrBookingConflict)

			Convey("While a different date for the same photographer succeeds", func() {
				_, err := uc.Create(ctx, createRequest(1, "2026-09-13"))
				So(err, ShouldBeNil)
			})

			Convey("And another photographer on the same date succeeds", func() {
				_, err := uc.Create(ctx, createRequest(2, "2026-09-12"))
				So(err, ShouldBeNil)
			})
		})

		Convey("The date frees up once the holding booking reaches a terminal status", func() {
			resp, err := uc.Create(ctx, createRequest(1, "2026-09-12"))
			So(err, ShouldBeNil)

			_, err = uc.UpdateStatus(ctx, resp.Booking.ID, &booking.UpdateStatusRequest{Status: "cancelled"})
			So(err, ShouldBeNil)

			_, err = uc.Create(ctx, createRequest(1, "2026-09-12"))
			So(err, ShouldBeNil)
		})

		Convey("Booking an unknown photographer fails with not found", func() {
			_, err := uc.Create(ctx, createRequest(999, "2026-09-12"))
			So(err, ShouldWrap, domain.ErrPhotographerNotFound)
		})
	})
}

func TestUseCase_UpdateStatus(t *testing.T) {
	Convey("Given a requested booking", t, func() {
		ctx := context.Background()
		uc := newTestUseCase()

		resp, err := uc.Create(ctx, createRequest(1, "2026-09-12"))
		So(err, ShouldBeNil)
		id := resp.Booking.ID

		Convey("The happy path walks requested, accepted, paid, completed", func() {
			for _, step := range []struct {
				to   string
				next []domain.BookingStatus
			}{
				{"accepted", []domain.BookingStatus{domain.BookingPaid, domain.BookingCancelled, domain.BookingRejected}},
				{"paid", []domain.BookingStatus{domain.BookingCompleted, domain.BookingCancelled, domain.BookingRejected}},
				{"completed", []domain.BookingStatus{}},
			} {
				resp, err := uc.UpdateStatus(ctx, id, &booking.UpdateStatusRequest{Status: step.to})
				So(err, ShouldBeNil)
				So(resp.Booking.Status, ShouldEqual, domain.BookingStatus(step.to))
				So(resp.NextAllowedTransitions, ShouldResemble, step.next)
			}
		})

		Convey("Skipping a lifecycle step fails and names the allowed transitions", func() {
			_, err := uc.UpdateStatus(ctx, id, &booking.UpdateStatusRequest{Status: "paid"})
			var invalid *domain.InvalidTransitionError
			So(err, ShouldHaveSameTypeAs, invalid)
			invalid = err.(*domain.InvalidTransitionError)
			So(invalid.From, ShouldEqual, domain.BookingRequested)
			So(invalid.Allowed, ShouldResemble, []domain.BookingStatus{
				domain.BookingAccepted, domain.BookingCancelled, domain.BookingRejected,
			})
		})

		Convey("A terminal booking accepts no further transitions", func() {
			_, err := uc.UpdateStatus(ctx, id, &booking.UpdateStatusRequest{Status: "rejected"})
			So(err, ShouldBeNil)

			_, err = uc.UpdateStatus(ctx, id, &booking.UpdateStatusRequest{Status: "accepted"})
			var invalid *domain.InvalidTransitionError
			So(err, ShouldHaveSameTypeAs, invalid)
		})

		Convey("An unknown status is rejected as validation, not as a transition failure", func() {
			_, err := uc.UpdateStatus(ctx, id, &booking.UpdateStatusRequest{Status: "archived"})
			So(err, ShouldWrap, domain.ErrValidation)
		})

		Convey("An unknown booking id fails with not found", func() {
			_, err := uc.UpdateStatus(ctx, "missing", &booking.UpdateStatusRequest{Status: "accepted"})
			So(err, ShouldWrap, domain.ErrBookingNotFound)
		})
	})
}

func TestUseCase_Queries(t *testing.T) {
	Convey("Given a few bookings", t, func() {
		ctx := context.Background()
		uc := newTestUseCase()

		first, err := uc.Create(ctx, createRequest(1, "2026-09-12"))
		So(err, ShouldBeNil)
		_, err = uc.Create(ctx, createRequest(2, "2026-09-12"))
		So(err, ShouldBeNil)

		Convey("Get returns the booking with its next transitions", func() {
			resp, err := uc.Get(ctx, first.Booking.ID)
			So(err, ShouldBeNil)
			So(resp.Booking.PhotographerID, ShouldEqual, 1)
			So(resp.NextAllowedTransitions, ShouldNotBeEmpty)
		})

		Convey("ListByClient returns every booking of the client", func() {
			resp, err := uc.ListByClient(ctx, 42)
			So(err, ShouldBeNil)
			So(resp, ShouldHaveLength, 2)
		})

		Convey("ListByPhotographer scopes to one photographer", func() {
			resp, err := uc.ListByPhotographer(ctx, 1)
			So(err, ShouldBeNil)
			So(resp, ShouldHaveLength, 1)
			So(resp[0].Booking.PhotographerID, ShouldEqual, 1)
		})
	})
}

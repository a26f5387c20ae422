package domain

import "time"

type BookingStatus string

const (
	BookingRequested BookingStatus = "requested"
	BookingAccepted  BookingStatus = "accepted"
	BookingPaid      BookingStatus = "paid"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
	BookingRejected  BookingStatus = "rejected"
)

// bookingTransitions is the full lifecycle table. Cancellation and
// rejection are reachable from every non-terminal status; completed,
// cancelled and rejected are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingRequested: {BookingAccepted, BookingCancelled, BookingRejected},
	BookingAccepted:  {BookingPaid, BookingCancelled, BookingRejected},
	BookingPaid:      {BookingCompleted, BookingCancelled, BookingRejected},
	BookingCompleted: {},
	BookingCancelled: {},
	BookingRejected:  {},
}

func (s BookingStatus) IsValid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

func (s BookingStatus) IsTerminal() bool {
	next, ok := bookingTransitions[s]
	return ok && len(next) == 0
}

// NextAllowed returns the statuses reachable from s in one step. The
// returned slice is a copy; callers may modify it freely.
func (s BookingStatus) NextAllowed() []BookingStatus {
	next := bookingTransitions[s]
	out := make([]BookingStatus, len(next))
	copy(out, next)
	return out
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NonTerminalStatuses lists the statuses that hold a photographer's date.
// A second booking for the same photographer and date is rejected while
// one of these exists.
func NonTerminalStatuses() []BookingStatus {
	return []BookingStatus{BookingRequested, BookingAccepted, BookingPaid}
}

type Booking struct {
	ID                string        `json:"id" db:"id"`
	ClientID          int           `json:"client_id" db:"client_id"`
	PhotographerID    int           `json:"photographer_id" db:"photographer_id"`
	EventDate         string        `json:"event_date" db:"event_date"`
	EventTime         string        `json:"event_time" db:"event_time"`
	Location          string        `json:"location" db:"location"`
	EventType         string        `json:"event_type" db:"event_type"`
	Notes             *string       `json:"notes" db:"notes"`
	Price             float64       `json:"price" db:"price"`
	OptimizationScore *float64      `json:"optimization_score" db:"optimization_score"`
	Status            BookingStatus `json:"status" db:"status"`
	CreatedAt         time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at" db:"updated_at"`
}

func (b *Booking) IsActive() bool {
	return !b.Status.IsTerminal()
}

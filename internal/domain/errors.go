package domain

import (
	"errors"
	"fmt"
)

var (
	ErrPhotographerNotFound = errors.New("photographer not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrValidation           = errors.New("validation failed")

	// ErrBookingConflict signals a double-booking attempt: the
	// photographer already holds a non-terminal booking for that date.
	ErrBookingConflict = errors.New("photographer already booked for this date")

	// ErrNoCandidates is a reportable business outcome, not a failure:
	// the hard constraints eliminated every photographer.
	ErrNoCandidates = errors.New("no candidates satisfy the given constraints")

	// ErrSolverInfeasible is reserved for constraint sets the solver
	// cannot satisfy. Unreachable with a pure cardinality constraint.
	ErrSolverInfeasible = errors.New("solver found the problem infeasible")
)

// InvalidTransitionError reports an illegal booking status change and
// names the transitions that would have been accepted.
type InvalidTransitionError struct {
	From    BookingStatus
	To      BookingStatus
	Allowed []BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("cannot transition booking from terminal status %q", e.From)
	}
	return fmt.Sprintf("cannot transition booking from %q to %q, allowed: %v", e.From, e.To, e.Allowed)
}

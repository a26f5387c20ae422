package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/photomatch/photomatch-backend/internal/domain"
	"github.com/photomatch/photomatch-backend/internal/repository"
)

type bookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// event_date is stored as DATE and read back as text so the domain model
// keeps its YYYY-MM-DD representation.
const bookingColumns = `
	id, client_id, photographer_id, event_date::text AS event_date,
	event_time, location, event_type, notes, price, optimization_score,
	status, created_at, updated_at
`

func nonTerminalStrings() []string {
	statuses := domain.NonTerminalStatuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// CreateIfAvailable runs the conflict check and the insert in one
// transaction. FOR UPDATE locks nothing when the check finds no row, so
// the transaction first takes an advisory lock keyed on the slot; two
// concurrent creations for the same photographer and date serialize on
// it, and the loser observes the winner's row. The partial unique index
// on active bookings (see migrations) backstops the same invariant at
// the storage level, surfacing as ErrBookingConflict as well.
func (r *bookingRepository) CreateIfAvailable(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	// Released automatically at commit/rollback.
	lockQuery := `SELECT pg_advisory_xact_lock($1, hashtext($2))`
	if _, err := tx.ExecContext(ctx, lockQuery, booking.PhotographerID, booking.EventDate); err != nil {
		return fmt.Errorf("acquire slot lock: %w", err)
	}

	var existingID string
	checkQuery := `
		SELECT id FROM bookings
		WHERE photographer_id = $1 AND event_date = $2::date AND status = ANY($3)
	`
	err = tx.GetContext(ctx, &existingID, checkQuery, booking.PhotographerID, booking.EventDate, pq.Array(nonTerminalStrings()))
	if err == nil {
		return domain.ErrBookingConflict
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	insertQuery := `
		INSERT INTO bookings (
			id, client_id, photographer_id, event_date, event_time,
			location, event_type, notes, price, optimization_score, status
		)
		VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`
	err = tx.QueryRowContext(
		ctx, insertQuery,
		booking.ID, booking.ClientID, booking.PhotographerID, booking.EventDate,
		booking.EventTime, booking.Location, booking.EventType, booking.Notes,
		booking.Price, booking.OptimizationScore, booking.Status,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrBookingConflict
		}
		return err
	}

	return tx.Commit()
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var booking domain.Booking
	query := `SELECT` + bookingColumns + `FROM bookings WHERE id = $1`
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListByClient(ctx context.Context, clientID int) ([]*domain.Booking, error) {
	var bookings []*domain.Booking
	query := `SELECT` + bookingColumns + `FROM bookings WHERE client_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &bookings, query, clientID)
	return bookings, err
}

func (r *bookingRepository) ListByPhotographer(ctx context.Context, photographerID int) ([]*domain.Booking, error) {
	var bookings []*domain.Booking
	query := `SELECT` + bookingColumns + `FROM bookings WHERE photographer_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &bookings, query, photographerID)
	return bookings, err
}

func (r *bookingRepository) HasActiveBooking(ctx context.Context, photographerID int, eventDate string) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE photographer_id = $1 AND event_date = $2::date AND status = ANY($3)
		)
	`
	err := r.db.GetContext(ctx, &exists, query, photographerID, eventDate, pq.Array(nonTerminalStrings()))
	return exists, err
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) (*domain.Booking, error) {
	var booking domain.Booking
	query := `
		UPDATE bookings
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND status = $3
		RETURNING` + bookingColumns
	err := r.db.GetContext(ctx, &booking, query, to, id, from)
	if err == nil {
		return &booking, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// Distinguish a missing booking from one whose status moved under us.
	var current domain.BookingStatus
	err = r.db.GetContext(ctx, &current, `SELECT status FROM bookings WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return nil, &domain.InvalidTransitionError{From: current, To: to, Allowed: current.NextAllowed()}
}

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shareit/internal/models"
)

const bookingColumns = `id, start_time, end_time, item_id, booker_id, status`

func (db *DB) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `INSERT INTO bookings (start_time, end_time, item_id, booker_id, status)
	          VALUES (?, ?, ?, ?, ?)`
	result, err := db.db.ExecContext(ctx, query,
		booking.Start, booking.End, booking.ItemID, booking.BookerID, booking.Status)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	booking.ID = id
	return nil
}

func (db *DB) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	booking, err := scanBooking(db.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

// DecideBooking moves a WAITING booking to the given terminal status within
// one transaction, so concurrent readers never observe an intermediate
// state and a second decision attempt fails cleanly.
func (db *DB) DecideBooking(ctx context.Context, id int64, status models.BookingStatus) (*models.Booking, error) {
	tx, err := db.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	booking, err := scanBooking(tx.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking in tx: %w", err)
	}

	if booking.Status != models.StatusWaiting {
		return nil, ErrAlreadyDecided
	}

	if _, err := tx.ExecContext(ctx, `UPDATE bookings SET status = ? WHERE id = ?`, status, id); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit decision: %w", err)
	}

	booking.Status = status
	return booking, nil
}

func (db *DB) GetBookingsByBooker(ctx context.Context, bookerID int64, state models.BookingState, now time.Time, limit, offset int) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booker_id = ?`
	args := []interface{}{bookerID}

	query, args = appendStateFilter(query, args, "", state, now)
	query += ` ORDER BY start_time DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := db.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings by booker: %w", err)
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (db *DB) GetBookingsByOwner(ctx context.Context, ownerID int64, state models.BookingState, now time.Time, limit, offset int) ([]*models.Booking, error) {
	query := `SELECT b.id, b.start_time, b.end_time, b.item_id, b.booker_id, b.status
	          FROM bookings b JOIN items i ON i.id = b.item_id
	          WHERE i.owner_id = ?`
	args := []interface{}{ownerID}

	query, args = appendStateFilter(query, args, "b.", state, now)
	query += ` ORDER BY b.start_time DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := db.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings by owner: %w", err)
	}
	defer rows.Close()
	return scanBookings(rows)
}

// appendStateFilter narrows a booking query to one temporal or status
// classification. The switch is exhaustive over the closed state set;
// unknown strings never reach this layer.
func appendStateFilter(query string, args []interface{}, prefix string, state models.BookingState, now time.Time) (string, []interface{}) {
	switch state {
	case models.StateAll:
	case models.StateCurrent:
		query += ` AND ` + prefix + `start_time < ? AND ` + prefix + `end_time > ?`
		args = append(args, now, now)
	case models.StatePast:
		query += ` AND ` + prefix + `end_time < ?`
		args = append(args, now)
	case models.StateFuture:
		query += ` AND ` + prefix + `start_time > ?`
		args = append(args, now)
	case models.StateWaiting:
		query += ` AND ` + prefix + `status = ?`
		args = append(args, models.StatusWaiting)
	case models.StateRejected:
		query += ` AND ` + prefix + `status = ?`
		args = append(args, models.StatusRejected)
	}
	return query, args
}

func (db *DB) LastBookingForItem(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
	          WHERE item_id = ? AND status = ? AND start_time < ?
	          ORDER BY end_time DESC LIMIT 1`
	booking, err := scanBooking(db.db.QueryRowContext(ctx, query, itemID, models.StatusApproved, now))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last booking: %w", err)
	}
	return booking, nil
}

func (db *DB) NextBookingForItem(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
	          WHERE item_id = ? AND status = ? AND start_time > ?
	          ORDER BY start_time ASC LIMIT 1`
	booking, err := scanBooking(db.db.QueryRowContext(ctx, query, itemID, models.StatusApproved, now))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get next booking: %w", err)
	}
	return booking, nil
}

func (db *DB) HasCompletedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	query := `SELECT COUNT(*) FROM bookings
	          WHERE item_id = ? AND booker_id = ? AND status = ? AND end_time < ?`
	var count int
	err := db.db.QueryRowContext(ctx, query, itemID, bookerID, models.StatusApproved, now).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check completed bookings: %w", err)
	}
	return count > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*models.Booking, error) {
	b := &models.Booking{}
	err := row.Scan(&b.ID, &b.Start, &b.End, &b.ItemID, &b.BookerID, &b.Status)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func scanBookings(rows *sql.Rows) ([]*models.Booking, error) {
	var bookings []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

package repositories

import (
	"database/sql"
	"fmt"

	"cinema-box-office/internal/models"
)

// SeatRepository handles seat data operations against the cinema store
type SeatRepository struct {
	db *sql.DB
}

// NewSeatRepository creates a new seat repository
func NewSeatRepository(db *sql.DB) *SeatRepository {
	return &SeatRepository{db: db}
}

// Create inserts a new seat
func (r *SeatRepository) Create(seat *models.Seat) error {
	if err := seat.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `INSERT INTO seats (seat_id, price, taken) VALUES (?, ?, ?)`
	if _, err := r.db.Exec(query, seat.ID, seat.Price, boolToFlag(seat.Taken)); err != nil {
		return fmt.Errorf("failed to create seat: %w", err)
	}

	return nil
}

// GetByID retrieves a seat by its identifier
func (r *SeatRepository) GetByID(seatID string) (*models.Seat, error) {
	query := `SELECT seat_id, price, taken FROM seats WHERE seat_id = ?`

	seat := &models.Seat{}
	var taken int
	err := r.db.QueryRow(query, seatID).Scan(&seat.ID, &seat.Price, &taken)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("seat %q: %w", seatID, models.ErrSeatNotFound)
		}
		return nil, fmt.Errorf("failed to get seat: %w", err)
	}
	seat.Taken = taken != 0

	return seat, nil
}

// PriceOf returns the price of a seat in cents
func (r *SeatRepository) PriceOf(seatID string) (int, error) {
	seat, err := r.GetByID(seatID)
	if err != nil {
		return 0, err
	}
	return seat.Price, nil
}

// IsFree reports whether a seat is still available
func (r *SeatRepository) IsFree(seatID string) (bool, error) {
	seat, err := r.GetByID(seatID)
	if err != nil {
		return false, err
	}
	return !seat.Taken, nil
}

// Occupy marks a free seat as taken. The check and the update are a
// single conditional statement, so two purchasers racing for the same
// seat cannot both succeed.
func (r *SeatRepository) Occupy(seatID string) error {
	result, err := r.db.Exec(`UPDATE seats SET taken = 1 WHERE seat_id = ? AND taken = 0`, seatID)
	if err != nil {
		return fmt.Errorf("failed to occupy seat: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check occupy result: %w", err)
	}

	if rows == 0 {
		// Distinguish a contested seat from a missing one
		if _, err := r.GetByID(seatID); err != nil {
			return err
		}
		return fmt.Errorf("seat %q: %w", seatID, models.ErrSeatTaken)
	}

	return nil
}

// Release frees a seat again. It exists only as the compensation step
// for a purchase that failed after the seat was claimed.
func (r *SeatRepository) Release(seatID string) error {
	result, err := r.db.Exec(`UPDATE seats SET taken = 0 WHERE seat_id = ? AND taken = 1`, seatID)
	if err != nil {
		return fmt.Errorf("failed to release seat: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check release result: %w", err)
	}

	if rows == 0 {
		if _, err := r.GetByID(seatID); err != nil {
			return err
		}
		// Seat exists and was already free; releasing it again is harmless
	}

	return nil
}

// List returns all seats ordered by identifier
func (r *SeatRepository) List() ([]*models.Seat, error) {
	rows, err := r.db.Query(`SELECT seat_id, price, taken FROM seats ORDER BY seat_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list seats: %w", err)
	}
	defer rows.Close()

	var seats []*models.Seat
	for rows.Next() {
		seat := &models.Seat{}
		var taken int
		if err := rows.Scan(&seat.ID, &seat.Price, &taken); err != nil {
			return nil, fmt.Errorf("failed to scan seat: %w", err)
		}
		seat.Taken = taken != 0
		seats = append(seats, seat)
	}

	return seats, rows.Err()
}

func boolToFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}

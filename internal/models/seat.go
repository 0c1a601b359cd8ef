package models

import (
	"errors"
	"strings"
)

// Seat represents a purchasable auditorium seat
type Seat struct {
	ID    string `json:"seat_id" db:"seat_id"`
	Price int    `json:"price" db:"price"` // Price in cents
	Taken bool   `json:"taken" db:"taken"`
}

// PriceInCurrency returns the seat price in currency units
func (s *Seat) PriceInCurrency() float64 {
	return float64(s.Price) / 100
}

// Validate validates the seat data
func (s *Seat) Validate() error {
	if err := ValidateSeatID(s.ID); err != nil {
		return err
	}
	if s.Price < 0 {
		return errors.New("seat price cannot be negative")
	}
	return nil
}

// ValidateSeatID validates a seat identifier
func ValidateSeatID(seatID string) error {
	if strings.TrimSpace(seatID) == "" {
		return errors.New("seat number is required")
	}
	if len(seatID) > 10 {
		return errors.New("seat number must be at most 10 characters")
	}
	return nil
}

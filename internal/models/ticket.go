package models

import (
	"crypto/rand"
	"math/big"
	"time"
)

// TicketIDLength is the length of a generated ticket identifier
const TicketIDLength = 8

const ticketIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Ticket represents a completed seat purchase. It is persisted only
// as the rendered receipt document.
type Ticket struct {
	ID         string    `json:"id"`
	HolderName string    `json:"holder_name"`
	SeatID     string    `json:"seat_id"`
	Price      int       `json:"price"` // Price paid in cents
	IssuedAt   time.Time `json:"issued_at"`
}

// NewTicket creates a ticket for a completed purchase
func NewTicket(user *User, price int, seatID string) *Ticket {
	return &Ticket{
		ID:         GenerateTicketID(),
		HolderName: user.Name,
		SeatID:     seatID,
		Price:      price,
		IssuedAt:   time.Now(),
	}
}

// PriceInCurrency returns the price paid in currency units
func (t *Ticket) PriceInCurrency() float64 {
	return float64(t.Price) / 100
}

// GenerateTicketID generates a random 8-character alphanumeric ticket
// identifier using crypto/rand for better uniqueness. Identifiers are
// not guaranteed unique; callers that persist them must handle
// collisions themselves.
func GenerateTicketID() string {
	id := make([]byte, TicketIDLength)
	max := big.NewInt(int64(len(ticketIDCharset)))
	for i := range id {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// Fallback to timestamp-based generation if crypto/rand fails
			ts := time.Now().UnixNano()
			for j := range id {
				id[j] = ticketIDCharset[int(ts>>uint(j*6))%len(ticketIDCharset)]
			}
			return string(id)
		}
		id[i] = ticketIDCharset[n.Int64()]
	}
	return string(id)
}

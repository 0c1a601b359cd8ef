package services

import (
	"errors"
	"fmt"
	"log"

	"cinema-box-office/internal/models"
)

// PurchaseOutcome identifies the business result of a purchase attempt
type PurchaseOutcome string

const (
	OutcomeSuccess     PurchaseOutcome = "success"
	OutcomeSeatTaken   PurchaseOutcome = "seat_taken"
	OutcomeCardProblem PurchaseOutcome = "card_problem"
)

// Message returns the customer-facing text for this outcome
func (o PurchaseOutcome) Message() string {
	switch o {
	case OutcomeSuccess:
		return "Purchase Successful!"
	case OutcomeSeatTaken:
		return "Seat is taken!"
	case OutcomeCardProblem:
		return "There was a problem with your card!"
	default:
		return "Unknown outcome"
	}
}

// PurchaseResult is the terminal state of a purchase attempt. Ticket
// and ReceiptPath are set only on success.
type PurchaseResult struct {
	Outcome     PurchaseOutcome
	Ticket      *models.Ticket
	ReceiptPath string
}

// SeatStore interface for seat data operations
type SeatStore interface {
	PriceOf(seatID string) (int, error)
	Occupy(seatID string) error
	Release(seatID string) error
}

// CardStore interface for card data operations
type CardStore interface {
	Charge(number, cvc string, amount int) error
	Refund(number string, amount int) error
}

// ReceiptEmitter renders a ticket as a receipt document
type ReceiptEmitter interface {
	Emit(ticket *models.Ticket) (string, error)
}

// PurchaseService coordinates a single seat purchase: claim the seat,
// charge the card, emit the receipt. Any step failing after the first
// undoes the earlier steps, so a failed purchase leaves no durable
// state behind.
type PurchaseService struct {
	seats    SeatStore
	cards    CardStore
	receipts ReceiptEmitter
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(seats SeatStore, cards CardStore, receipts ReceiptEmitter) *PurchaseService {
	return &PurchaseService{
		seats:    seats,
		cards:    cards,
		receipts: receipts,
	}
}

// Purchase attempts to buy the given seat for the given user, paying
// with the given card. Business failures (seat contested, card
// rejected) are reported through the result's Outcome; the error
// return carries infrastructure faults only, including an unknown
// seat or an unreachable store.
func (s *PurchaseService) Purchase(user *models.User, seatID string, card *models.CardDetails) (*PurchaseResult, error) {
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}
	if err := models.ValidateSeatID(seatID); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}
	if err := card.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	price, err := s.seats.PriceOf(seatID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up seat price: %w", err)
	}

	// Claim the seat first. Occupy is a compare-and-set, so losing a
	// race for the seat surfaces here as ErrSeatTaken.
	if err := s.seats.Occupy(seatID); err != nil {
		if errors.Is(err, models.ErrSeatTaken) {
			return &PurchaseResult{Outcome: OutcomeSeatTaken}, nil
		}
		return nil, fmt.Errorf("failed to claim seat: %w", err)
	}

	if err := s.cards.Charge(card.Number, card.CVC, price); err != nil {
		s.releaseSeat(seatID)
		if isCardRejection(err) {
			return &PurchaseResult{Outcome: OutcomeCardProblem}, nil
		}
		return nil, fmt.Errorf("failed to charge card: %w", err)
	}

	ticket := models.NewTicket(user, price, seatID)

	path, err := s.receipts.Emit(ticket)
	if err != nil {
		// A purchase without a receipt is void: give the money back
		// and free the seat again.
		if refundErr := s.cards.Refund(card.Number, price); refundErr != nil {
			log.Printf("Warning: failed to refund card after receipt failure: %v", refundErr)
		}
		s.releaseSeat(seatID)
		return nil, fmt.Errorf("failed to emit receipt: %w", err)
	}

	return &PurchaseResult{
		Outcome:     OutcomeSuccess,
		Ticket:      ticket,
		ReceiptPath: path,
	}, nil
}

func (s *PurchaseService) releaseSeat(seatID string) {
	if err := s.seats.Release(seatID); err != nil {
		log.Printf("Warning: failed to release seat %q after failed purchase: %v", seatID, err)
	}
}

// isCardRejection reports whether a charge failure is a legitimate
// business rejection rather than an infrastructure fault. An unknown
// card, a wrong verification code and an insufficient balance are all
// reported to the customer with the same message.
func isCardRejection(err error) bool {
	return errors.Is(err, models.ErrCardNotFound) ||
		errors.Is(err, models.ErrCardDeclined) ||
		errors.Is(err, models.ErrInsufficientFunds)
}

package services

import (
	"fmt"

	"cinema-box-office/internal/models"
)

// MockReceiptService provides a receipt emitter for tests. It records
// every emitted ticket instead of writing files, and can be told to
// fail.
type MockReceiptService struct {
	Emitted []*models.Ticket
	FailErr error
}

// NewMockReceiptService creates a new mock receipt service
func NewMockReceiptService() *MockReceiptService {
	return &MockReceiptService{}
}

// Emit records the ticket and returns a fake receipt path
func (s *MockReceiptService) Emit(ticket *models.Ticket) (string, error) {
	if s.FailErr != nil {
		return "", s.FailErr
	}
	s.Emitted = append(s.Emitted, ticket)
	return fmt.Sprintf("ticket_%s.pdf", ticket.ID), nil
}

package repositories

import (
	"database/sql"
	"fmt"

	"cinema-box-office/internal/models"
	"cinema-box-office/internal/utils"
)

// CardRepository handles card data operations against the banking store
type CardRepository struct {
	db *sql.DB
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *sql.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create inserts a new card. The verification code is hashed before
// it is stored.
func (r *CardRepository) Create(number, cvc, holder string, balance int) error {
	if balance < 0 {
		return fmt.Errorf("validation failed: card balance cannot be negative")
	}

	cvcHash, err := utils.HashSecret(cvc)
	if err != nil {
		return fmt.Errorf("failed to hash cvc: %w", err)
	}

	query := `INSERT INTO cards (number, cvc_hash, holder, balance) VALUES (?, ?, ?, ?)`
	if _, err := r.db.Exec(query, number, cvcHash, holder, balance); err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}

	return nil
}

// GetByNumber retrieves a card by its number
func (r *CardRepository) GetByNumber(number string) (*models.Card, error) {
	query := `SELECT number, cvc_hash, holder, balance FROM cards WHERE number = ?`

	card := &models.Card{}
	err := r.db.QueryRow(query, number).Scan(&card.Number, &card.CVCHash, &card.Holder, &card.Balance)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("card %q: %w", number, models.ErrCardNotFound)
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	return card, nil
}

// Balance returns the current balance of a card in cents
func (r *CardRepository) Balance(number string) (int, error) {
	card, err := r.GetByNumber(number)
	if err != nil {
		return 0, err
	}
	return card.Balance, nil
}

// Charge verifies the card credentials and debits amount from its
// balance. The balance check and the debit are a single conditional
// statement, so the balance can never go negative even under
// concurrent charges.
func (r *CardRepository) Charge(number, cvc string, amount int) error {
	if amount < 0 {
		return fmt.Errorf("charge amount cannot be negative")
	}

	card, err := r.GetByNumber(number)
	if err != nil {
		return err
	}

	ok, err := utils.VerifySecret(cvc, card.CVCHash)
	if err != nil {
		return fmt.Errorf("failed to verify cvc: %w", err)
	}
	if !ok {
		return fmt.Errorf("card %q: %w", number, models.ErrCardDeclined)
	}

	result, err := r.db.Exec(
		`UPDATE cards SET balance = balance - ? WHERE number = ? AND balance >= ?`,
		amount, number, amount,
	)
	if err != nil {
		return fmt.Errorf("failed to charge card: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check charge result: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("card %q: %w", number, models.ErrInsufficientFunds)
	}

	return nil
}

// Refund credits amount back to a card. It exists only as the
// compensation step for a purchase that failed after the charge.
func (r *CardRepository) Refund(number string, amount int) error {
	if amount < 0 {
		return fmt.Errorf("refund amount cannot be negative")
	}

	result, err := r.db.Exec(`UPDATE cards SET balance = balance + ? WHERE number = ?`, amount, number)
	if err != nil {
		return fmt.Errorf("failed to refund card: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check refund result: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("card %q: %w", number, models.ErrCardNotFound)
	}

	return nil
}

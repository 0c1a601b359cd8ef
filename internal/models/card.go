package models

import (
	"errors"
	"strings"
)

// Card represents a payment card row in the banking store. The
// verification code is never stored in the clear, only its hash.
type Card struct {
	Number  string `json:"number" db:"number"`
	CVCHash string `json:"-" db:"cvc_hash"`
	Holder  string `json:"holder" db:"holder"`
	Balance int    `json:"balance" db:"balance"` // Balance in cents
}

// BalanceInCurrency returns the card balance in currency units
func (c *Card) BalanceInCurrency() float64 {
	return float64(c.Balance) / 100
}

// CardDetails holds the card data collected from the customer for a
// single purchase attempt. Type and holder name are collected but do
// not participate in validation against the banking store.
type CardDetails struct {
	Type   string `json:"type"`
	Number string `json:"number"`
	CVC    string `json:"-"`
	Holder string `json:"holder"`
}

// Validate validates the collected card details
func (d *CardDetails) Validate() error {
	if err := validateCardNumber(d.Number); err != nil {
		return err
	}
	if err := validateCardCVC(d.CVC); err != nil {
		return err
	}
	if strings.TrimSpace(d.Holder) == "" {
		return errors.New("card holder name is required")
	}
	return nil
}

func validateCardNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errors.New("card number is required")
	}
	if len(number) > 19 {
		return errors.New("card number must be at most 19 digits")
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return errors.New("card number must contain only digits")
		}
	}
	return nil
}

func validateCardCVC(cvc string) error {
	if len(cvc) < 3 || len(cvc) > 4 {
		return errors.New("card cvc must be 3 or 4 digits")
	}
	for _, r := range cvc {
		if r < '0' || r > '9' {
			return errors.New("card cvc must contain only digits")
		}
	}
	return nil
}

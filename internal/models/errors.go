package models

import "errors"

// Common errors used throughout the application
var (
	ErrSeatNotFound      = errors.New("seat not found")
	ErrSeatTaken         = errors.New("seat is already taken")
	ErrCardNotFound      = errors.New("card not found")
	ErrCardDeclined      = errors.New("card declined")
	ErrInsufficientFunds = errors.New("insufficient card balance")
	ErrInvalidInput      = errors.New("invalid input")
)

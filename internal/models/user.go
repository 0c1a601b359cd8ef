package models

import (
	"errors"
	"strings"
)

// User represents the customer making a purchase. Users are not
// persisted; one exists for the duration of a purchase attempt.
type User struct {
	Name string `json:"name"`
}

// Validate validates the user data
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return errors.New("full name is required")
	}
	if len(u.Name) > 100 {
		return errors.New("full name must be at most 100 characters")
	}
	return nil
}

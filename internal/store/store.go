// Package store is the data-access façade. Handlers never touch gorm
// directly: every operation returns either a typed sentinel error or the
// raw store error, and the HTTP layer maps those to status codes.
package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail means the email is already registered.
	ErrDuplicateEmail = errors.New("email already in use")
	// ErrUnknownMenuItem means an order line references a missing menu item.
	ErrUnknownMenuItem = errors.New("order line references unknown menu item")
	// ErrInvalidQuantity means an order line quantity is below 1.
	ErrInvalidQuantity = errors.New("order line quantity must be at least 1")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

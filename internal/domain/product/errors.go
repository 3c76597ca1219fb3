package product

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("product not found")
	ErrNotOwner = errors.New("product belongs to another shopkeeper")
)

// NotVerifiedError rejects listings from shopkeepers whose account has
// not been approved by an admin.
type NotVerifiedError struct {
	Status string
}

func (e *NotVerifiedError) Error() string {
	return fmt.Sprintf("shopkeeper account is not verified (status: %s)", e.Status)
}

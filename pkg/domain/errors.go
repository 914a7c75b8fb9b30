package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrProductNotFound is returned when an action references a product ID that
// does not resolve in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ErrProductOutOfStock is returned when add_to_cart targets a product that is
// not in stock.
var ErrProductOutOfStock = errors.New("product is out of stock")

// MissingFieldsError reports required form fields that were absent or empty.
// The Domain Store is left unmodified when it is returned.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("required fields missing: %s", strings.Join(e.Fields, ", "))
}

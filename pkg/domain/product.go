package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Product is a catalog entry. Created at process start from seed data and
// mutated in place by inventory updates; never deleted.
type Product struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Price       string `json:"price" yaml:"price"` // currency-prefixed decimal string, e.g. "$499"
	Image       string `json:"image" yaml:"image"`
	Description string `json:"description" yaml:"description"`
	InStock     bool   `json:"inStock" yaml:"in_stock"`
	Category    string `json:"category" yaml:"category"`
}

// UnitPrice parses the currency-prefixed price string into a float.
func (p Product) UnitPrice() (float64, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(p.Price), "$"))
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("product %s: unparseable price %q: %w", p.ID, p.Price, err)
	}
	return value, nil
}

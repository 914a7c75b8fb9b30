package domain

// CartItem references a product by ID. The reference is weak: the product may
// have disappeared from the catalog, in which case the item is treated as
// unavailable rather than an error.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// TotalQuantity sums quantities across items.
func TotalQuantity(items []CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

package models

import "time"

// CartItem is a product plus a quantity. At most one item exists per
// product id in a cart; repeated adds accumulate the quantity.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart keeps items in first-added order. Total is always the recomputed
// sum of price times quantity, never stored independently.
type Cart struct {
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (c *Cart) CalculateTotal() float64 {
	var total float64

	for _, item := range c.Items {
		total += item.Product.Price * float64(item.Quantity)
	}

	return total
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity"   validate:"required,min=1"`
}

type UpdateQuantityRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity"   validate:"min=0"`
}

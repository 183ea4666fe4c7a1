package entity

// CartItem is one product line of the cart. Quantity is always at least 1.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal -.
func (i CartItem) Subtotal() float64 {
	return i.Product.ListPrice * float64(i.Quantity)
}

// OrderLine is the projection of a cart item sent when creating a sales order.
type OrderLine struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"product_uom_qty"`
	PriceUnit float64 `json:"price_unit"`
	Name      string  `json:"name"`
}

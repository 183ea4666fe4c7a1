package entity

// OrderState is the lifecycle state of a sales order.
type OrderState string

const (
	OrderStateDraft     OrderState = "draft"
	OrderStateSent      OrderState = "sent"
	OrderStateConfirmed OrderState = "sale"
	OrderStateDone      OrderState = "done"
	OrderStateCanceled  OrderState = "cancel"
)

// Valid reports whether s is one of the known states.
func (s OrderState) Valid() bool {
	switch s {
	case OrderStateDraft, OrderStateSent, OrderStateConfirmed, OrderStateDone, OrderStateCanceled:
		return true
	default:
		return false
	}
}

// Model names and projections used by the sales calls.
const (
	ModelProduct   = "product.product"
	ModelSaleOrder = "sale.order"
	ModelOrderLine = "sale.order.line"
	ModelPartner   = "res.partner"
)

var (
	// OrderSummaryFields is fetched for a single order.
	OrderSummaryFields = []string{"name", "partner_id", "amount_total", "state", "date_order"}

	// OrderListFields is fetched when listing orders.
	OrderListFields = []string{"name", "partner_id", "amount_total", "state", "date_order", "order_line", "user_id"}

	// OrderLineFields is fetched for the lines of one order.
	OrderLineFields = []string{"product_id", "name", "product_uom_qty", "price_unit", "price_subtotal"}

	// PartnerFields is fetched when searching customers.
	PartnerFields = []string{"name", "email", "phone"}
)

// Order is a sale.order record.
type Order struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Partner     Many2One   `json:"partner_id"`
	AmountTotal float64    `json:"amount_total"`
	State       OrderState `json:"state"`
	DateOrder   OptString  `json:"date_order"`
	LineIDs     []int      `json:"order_line,omitempty"`
	User        Many2One   `json:"user_id"`
}

// OrderLineRecord is a sale.order.line record as read back from the server.
type OrderLineRecord struct {
	ID            int      `json:"id"`
	Product       Many2One `json:"product_id"`
	Name          string   `json:"name"`
	Quantity      float64  `json:"product_uom_qty"`
	PriceUnit     float64  `json:"price_unit"`
	PriceSubtotal float64  `json:"price_subtotal"`
}

// Partner is a res.partner record.
type Partner struct {
	ID    int       `json:"id"`
	Name  string    `json:"name"`
	Email OptString `json:"email"`
	Phone OptString `json:"phone"`
}

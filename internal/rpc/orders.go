package rpc

import (
	"context"
	"fmt"

	"github.com/device-management-toolkit/storefront/internal/entity"
)

const (
	// DefaultOrderLimit bounds GetSalesOrders when no positive limit is given.
	DefaultOrderLimit = 50
	// OrderLinesLimit bounds GetOrderLines.
	OrderLinesLimit = 100
)

// lineCommand wraps a line in the "create a new sub-record" command triple.
func lineCommand(line entity.OrderLine) []interface{} {
	name := line.Name
	if name == "" {
		name = fmt.Sprintf("Product %d", line.ProductID)
	}

	return []interface{}{0, 0, map[string]interface{}{
		"product_id":      line.ProductID,
		"product_uom_qty": line.Quantity,
		"price_unit":      line.PriceUnit,
		"name":            name,
	}}
}

// CreateSalesOrder creates a draft order for partnerID with lines and returns its id.
func (c *Client) CreateSalesOrder(ctx context.Context, partnerID int, lines []entity.OrderLine) (int, error) {
	commands := make([]interface{}, 0, len(lines))
	for _, line := range lines {
		commands = append(commands, lineCommand(line))
	}

	id, err := c.Create(ctx, entity.ModelSaleOrder, map[string]interface{}{
		"partner_id": partnerID,
		"order_line": commands,
		"state":      string(entity.OrderStateDraft),
	})
	if err != nil {
		return 0, err
	}

	c.log.Info("rpc - sales order %d created for partner %d with %d lines", id, partnerID, len(lines))

	return id, nil
}

// ConfirmSalesOrder runs the order's confirmation action.
func (c *Client) ConfirmSalesOrder(ctx context.Context, orderID int) (bool, error) {
	result, err := c.CallKw(ctx, entity.ModelSaleOrder, "action_confirm", []interface{}{[]int{orderID}}, nil)
	if err != nil {
		return false, err
	}

	c.log.Info("rpc - sales order %d confirmed", orderID)

	return decodeBool(result)
}

// GetSalesOrder returns the order with orderID, or nil when there is none.
func (c *Client) GetSalesOrder(ctx context.Context, orderID int) (*entity.Order, error) {
	var orders []entity.Order

	domain := Domain{Cond("id", "=", orderID)}

	if err := c.searchReadInto(ctx, entity.ModelSaleOrder, domain, entity.OrderSummaryFields, 1, &orders); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return nil, nil //nolint:nilnil // a missing order is not an error
	}

	return &orders[0], nil
}

// GetSalesOrders lists orders, optionally only those in state.
func (c *Client) GetSalesOrders(ctx context.Context, state entity.OrderState, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = DefaultOrderLimit
	}

	domain := Domain{}
	if state != "" {
		domain = append(domain, Cond("state", "=", string(state)))
	}

	orders := []entity.Order{}

	if err := c.searchReadInto(ctx, entity.ModelSaleOrder, domain, entity.OrderListFields, limit, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// GetOrderLines lists the lines of one order.
func (c *Client) GetOrderLines(ctx context.Context, orderID int) ([]entity.OrderLineRecord, error) {
	lines := []entity.OrderLineRecord{}

	domain := Domain{Cond("order_id", "=", orderID)}

	if err := c.searchReadInto(ctx, entity.ModelOrderLine, domain, entity.OrderLineFields, OrderLinesLimit, &lines); err != nil {
		return nil, err
	}

	return lines, nil
}

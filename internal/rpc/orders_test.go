package rpc_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/storefront/internal/entity"
	"github.com/device-management-toolkit/storefront/internal/rpc"
)

func TestCreateSalesOrder(t *testing.T) {
	t.Parallel()

	f := newFakeERP(t, func(recordedCall) map[string]interface{} { return result(12) })

	id, err := newClient(f).CreateSalesOrder(context.Background(), 2, []entity.OrderLine{
		{ProductID: 7, Quantity: 5, PriceUnit: 9.99, Name: "Desk"},
		{ProductID: 8, Quantity: 1, PriceUnit: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	call := f.last(t)
	assert.Equal(t, entity.ModelSaleOrder, call.Params.Model)
	assert.Equal(t, "create", call.Params.Method)
	require.Len(t, call.Params.Args, 1)

	values, ok := call.Params.Args[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), values["partner_id"])
	assert.Equal(t, "draft", values["state"])
	assert.Equal(t, []interface{}{
		[]interface{}{float64(0), float64(0), map[string]interface{}{
			"product_id": float64(7), "product_uom_qty": float64(5), "price_unit": 9.99, "name": "Desk",
		}},
		[]interface{}{float64(0), float64(0), map[string]interface{}{
			"product_id": float64(8), "product_uom_qty": float64(1), "price_unit": float64(3), "name": "Product 8",
		}},
	}, values["order_line"])
}

func TestConfirmSalesOrder(t *testing.T) {
	t.Parallel()

	f := newFakeERP(t, func(recordedCall) map[string]interface{} { return result(true) })

	ok, err := newClient(f).ConfirmSalesOrder(context.Background(), 12)
	require.NoError(t, err)
	assert.True(t, ok)

	call := f.last(t)
	assert.Equal(t, "action_confirm", call.Params.Method)
	assert.Equal(t, []interface{}{[]interface{}{float64(12)}}, call.Params.Args)
}

func TestGetSalesOrder(t *testing.T) {
	t.Parallel()

	var found atomic.Bool

	found.Store(true)

	f := newFakeERP(t, func(recordedCall) map[string]interface{} {
		if !found.Load() {
			return result([]interface{}{})
		}

		return result([]map[string]interface{}{{
			"id": 12, "name": "S00012", "partner_id": []interface{}{2, "Mitchell Admin"},
			"amount_total": 49.95, "state": "draft", "date_order": "2026-10-14 09:00:00",
		}})
	})
	c := newClient(f)

	order, err := c.GetSalesOrder(context.Background(), 12)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "S00012", order.Name)
	assert.Equal(t, entity.Many2One{ID: 2, Name: "Mitchell Admin"}, order.Partner)
	assert.Equal(t, entity.OrderStateDraft, order.State)

	call := f.last(t)
	assert.Equal(t, []interface{}{[]interface{}{[]interface{}{"id", "=", float64(12)}}}, call.Params.Args)
	assert.Equal(t, float64(1), call.Params.Kwargs["limit"])

	found.Store(false)

	order, err = c.GetSalesOrder(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestGetSalesOrders(t *testing.T) {
	t.Parallel()

	f := newFakeERP(t, func(recordedCall) map[string]interface{} {
		return result([]map[string]interface{}{{"id": 1, "name": "S1", "partner_id": false, "state": "sale", "order_line": []int{4, 5}, "user_id": false}})
	})
	c := newClient(f)

	orders, err := c.GetSalesOrders(context.Background(), entity.OrderStateConfirmed, 0)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, []int{4, 5}, orders[0].LineIDs)
	assert.False(t, orders[0].Partner.IsSet())

	call := f.last(t)
	assert.Equal(t, []interface{}{[]interface{}{[]interface{}{"state", "=", "sale"}}}, call.Params.Args)
	assert.Equal(t, float64(rpc.DefaultOrderLimit), call.Params.Kwargs["limit"])

	_, err = c.GetSalesOrders(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{[]interface{}{}}, f.last(t).Params.Args)
}

func TestGetOrderLines(t *testing.T) {
	t.Parallel()

	f := newFakeERP(t, func(recordedCall) map[string]interface{} {
		return result([]map[string]interface{}{{
			"id": 4, "product_id": []interface{}{7, "Desk"}, "name": "Desk",
			"product_uom_qty": 5.0, "price_unit": 9.99, "price_subtotal": 49.95,
		}})
	})

	lines, err := newClient(f).GetOrderLines(context.Background(), 12)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.InDelta(t, 49.95, lines[0].PriceSubtotal, 1e-9)

	call := f.last(t)
	assert.Equal(t, entity.ModelOrderLine, call.Params.Model)
	assert.Equal(t, []interface{}{[]interface{}{[]interface{}{"order_id", "=", float64(12)}}}, call.Params.Args)
	assert.Equal(t, float64(rpc.OrderLinesLimit), call.Params.Kwargs["limit"])
}

package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/storefront/internal/entity"
)

func TestMany2One_Unmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    entity.Many2One
		wantErr bool
	}{
		{name: "pair", input: `[5, "Chairs"]`, want: entity.Many2One{ID: 5, Name: "Chairs"}},
		{name: "id only", input: `[5]`, want: entity.Many2One{ID: 5}},
		{name: "bare id", input: `5`, want: entity.Many2One{ID: 5}},
		{name: "false", input: `false`, want: entity.Many2One{}},
		{name: "null", input: `null`, want: entity.Many2One{}},
		{name: "empty list", input: `[]`, want: entity.Many2One{}},
		{name: "text", input: `"five"`, wantErr: true},
		{name: "text id", input: `["five", "x"]`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got entity.Many2One

			err := json.Unmarshal([]byte(tc.input), &got)
			if tc.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidMany2One)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMany2One_Marshal(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(entity.Many2One{ID: 5, Name: "Chairs"})
	require.NoError(t, err)
	assert.JSONEq(t, `[5, "Chairs"]`, string(raw))

	raw, err = json.Marshal(entity.Many2One{})
	require.NoError(t, err)
	assert.Equal(t, "false", string(raw))
}

func TestOptString(t *testing.T) {
	t.Parallel()

	var p entity.Partner

	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"name":"Azure","email":false,"phone":"555"}`), &p))
	assert.Empty(t, p.Email)
	assert.Equal(t, entity.OptString("555"), p.Phone)
}

func TestProduct_KeepsUnknownAttributes(t *testing.T) {
	t.Parallel()

	input := `{"id":7,"name":"Desk","list_price":9.99,"categ_id":[2,"Furniture"],"barcode":false,"website_url":"/shop/desk","weight":1.5}`

	var p entity.Product
	require.NoError(t, json.Unmarshal([]byte(input), &p))

	assert.Equal(t, 7, p.ID)
	assert.Equal(t, "Furniture", p.Category.Name)
	assert.Empty(t, p.Barcode)
	require.Len(t, p.Extra, 2)
	assert.JSONEq(t, `"/shop/desk"`, string(p.Extra["website_url"]))

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var back entity.Product
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, p, back)
}

func TestProduct_KnownFieldsWinOverExtra(t *testing.T) {
	t.Parallel()

	p := entity.Product{ID: 7, Name: "Desk", Extra: map[string]json.RawMessage{"name": json.RawMessage(`"stale"`)}}

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"name":"Desk"`)
}

func TestCartItem_Subtotal(t *testing.T) {
	t.Parallel()

	item := entity.CartItem{Product: entity.Product{ListPrice: 9.99}, Quantity: 5}
	assert.InDelta(t, 49.95, item.Subtotal(), 1e-9)
}

func TestOrderState_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, entity.OrderStateConfirmed.Valid())
	assert.False(t, entity.OrderState("shipped").Valid())
	assert.False(t, entity.OrderState("").Valid())
}

func TestSession(t *testing.T) {
	t.Parallel()

	var s entity.Session
	assert.False(t, s.IsAuthenticated())

	uid := 2
	s = entity.Session{UserID: &uid, SessionToken: "tok"}
	assert.True(t, s.IsAuthenticated())

	s.Reset()
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.SessionToken)
}

package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/device-management-toolkit/storefront/internal/entity"
)

const (
	// DefaultSearchLimit bounds SearchRead when no positive limit is given.
	DefaultSearchLimit = 80
	// DefaultPartnerLimit bounds GetPartners when no positive limit is given.
	DefaultPartnerLimit = 10
)

// Domain is an ERP search filter. It is passed through unchanged.
type Domain []interface{}

// Cond builds a single [field, operator, value] term.
func Cond(field, operator string, value interface{}) []interface{} {
	return []interface{}{field, operator, value}
}

// SearchRead returns the raw records of model matching domain.
func (c *Client) SearchRead(ctx context.Context, model string, domain Domain, fields []string, limit int) ([]json.RawMessage, error) {
	var records []json.RawMessage

	if err := c.searchReadInto(ctx, model, domain, fields, limit, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// searchReadInto runs search_read and decodes the records into out, a pointer to a slice.
func (c *Client) searchReadInto(ctx context.Context, model string, domain Domain, fields []string, limit int, out interface{}) error {
	if domain == nil {
		domain = Domain{}
	}

	if fields == nil {
		fields = []string{}
	}

	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	result, err := c.CallKw(ctx, model, "search_read", []interface{}{domain}, map[string]interface{}{
		"fields":  fields,
		"limit":   limit,
		"context": map[string]interface{}{"lang": c.language},
	})
	if err != nil {
		return err
	}

	return decodeResult(result, out)
}

// GetCatalog lists sellable products.
func (c *Client) GetCatalog(ctx context.Context, limit int) ([]entity.Product, error) {
	products := []entity.Product{}

	if err := c.searchReadInto(ctx, entity.ModelProduct, nil, entity.ProductFields, limit, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// GetProduct returns the product with productID, or nil when there is none.
func (c *Client) GetProduct(ctx context.Context, productID int) (*entity.Product, error) {
	var products []entity.Product

	domain := Domain{Cond("id", "=", productID)}

	if err := c.searchReadInto(ctx, entity.ModelProduct, domain, entity.ProductFields, 1, &products); err != nil {
		return nil, err
	}

	if len(products) == 0 {
		return nil, nil //nolint:nilnil // a missing product is not an error
	}

	return &products[0], nil
}

// GetPartners searches customers by name. An empty term lists any partners.
func (c *Client) GetPartners(ctx context.Context, searchTerm string, limit int) ([]entity.Partner, error) {
	if limit <= 0 {
		limit = DefaultPartnerLimit
	}

	domain := Domain{}
	if searchTerm != "" {
		domain = append(domain, Cond("name", "ilike", searchTerm))
	}

	partners := []entity.Partner{}

	if err := c.searchReadInto(ctx, entity.ModelPartner, domain, entity.PartnerFields, limit, &partners); err != nil {
		return nil, err
	}

	return partners, nil
}

// Create inserts one record and returns its id.
func (c *Client) Create(ctx context.Context, model string, values map[string]interface{}) (int, error) {
	result, err := c.CallKw(ctx, model, "create", []interface{}{values}, nil)
	if err != nil {
		return 0, err
	}

	var id int
	if err := decodeResult(result, &id); err != nil {
		return 0, err
	}

	return id, nil
}

// Write updates ids with values.
func (c *Client) Write(ctx context.Context, model string, ids []int, values map[string]interface{}) (bool, error) {
	result, err := c.CallKw(ctx, model, "write", []interface{}{ids, values}, nil)
	if err != nil {
		return false, err
	}

	return decodeBool(result)
}

// Unlink deletes ids.
func (c *Client) Unlink(ctx context.Context, model string, ids []int) (bool, error) {
	result, err := c.CallKw(ctx, model, "unlink", []interface{}{ids}, nil)
	if err != nil {
		return false, err
	}

	return decodeBool(result)
}

func decodeResult(result json.RawMessage, out interface{}) error {
	if err := json.Unmarshal(result, out); err != nil {
		return &Error{Kind: KindTransport, Message: fmt.Sprintf("unexpected result shape %.64s", result), Err: err}
	}

	return nil
}

// decodeBool reads a boolean result. Methods that return nothing (null) or
// an action dictionary succeeded, so only an explicit false is false.
func decodeBool(result json.RawMessage) (bool, error) {
	var b bool
	if err := json.Unmarshal(result, &b); err == nil {
		return b, nil
	}

	return true, nil
}

package entity

import "encoding/json"

// ProductFields is the attribute projection requested for the catalog.
var ProductFields = []string{
	"name",
	"list_price",
	"standard_price",
	"qty_available",
	"categ_id",
	"default_code",
	"barcode",
	"image_128",
}

// Product is a catalog record. Attributes the storefront does not model are
// kept in Extra so they survive a round trip through the cart record.
type Product struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	ListPrice     float64   `json:"list_price"`
	StandardPrice float64   `json:"standard_price,omitempty"`
	QtyAvailable  float64   `json:"qty_available,omitempty"`
	Category      Many2One  `json:"categ_id"`
	DefaultCode   OptString `json:"default_code,omitempty"`
	Barcode       OptString `json:"barcode,omitempty"`
	Image128      OptString `json:"image_128,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var productKnownKeys = []string{
	"id", "name", "list_price", "standard_price", "qty_available",
	"categ_id", "default_code", "barcode", "image_128",
}

type productAlias Product

// UnmarshalJSON decodes the known attributes and keeps the rest in Extra.
func (p *Product) UnmarshalJSON(data []byte) error {
	var alias productAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}

	for _, k := range productKnownKeys {
		delete(all, k)
	}

	*p = Product(alias)
	p.Extra = nil

	if len(all) > 0 {
		p.Extra = all
	}

	return nil
}

// MarshalJSON writes the known attributes merged over Extra.
func (p Product) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(productAlias(p))
	if err != nil {
		return nil, err
	}

	if len(p.Extra) == 0 {
		return known, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(known, &fields); err != nil {
		return nil, err
	}

	merged := make(map[string]json.RawMessage, len(p.Extra)+len(fields))
	for k, v := range p.Extra {
		merged[k] = v
	}

	for k, v := range fields {
		merged[k] = v
	}

	return json.Marshal(merged)
}

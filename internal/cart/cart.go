// Package cart keeps the shopping cart and mirrors it into a durable store
// after every change. The cart does not depend on a session.
package cart

import (
	"errors"
	"fmt"
	"sync"

	"github.com/device-management-toolkit/storefront/internal/entity"
	"github.com/device-management-toolkit/storefront/pkg/kvstore"
	"github.com/device-management-toolkit/storefront/pkg/logger"
)

// StorageKey is where the cart record lives.
const StorageKey = "odoo_cart"

// Store -.
type Store struct {
	mu    sync.RWMutex
	items []entity.CartItem
	store kvstore.Store
	log   logger.Interface
}

// New loads any persisted cart. A record that cannot be decoded is dropped
// and the cart starts empty; only backend failures are returned. Lines with
// no positive quantity are dropped and lines for the same product merged.
func New(store kvstore.Store, log logger.Interface) (*Store, error) {
	c := &Store{store: store, log: log}

	var items []entity.CartItem

	_, err := kvstore.GetJSON(store, StorageKey, &items)

	var decodeErr *kvstore.DecodeError

	switch {
	case errors.As(err, &decodeErr):
		log.Warn("cart - discarding unreadable record: %v", err)

		items = nil
	case err != nil:
		return nil, fmt.Errorf("cart - load: %w", err)
	}

	normalized, changed := normalize(items)
	c.items = normalized

	if changed {
		log.Warn("cart - repaired stored record: %d lines kept of %d", len(normalized), len(items))

		if err := c.persistLocked(); err != nil {
			log.Warn("cart - repaired record not written back: %v", err)
		}
	}

	return c, nil
}

// normalize restores the one-line-per-product, quantity >= 1 invariant.
func normalize(items []entity.CartItem) ([]entity.CartItem, bool) {
	out := make([]entity.CartItem, 0, len(items))
	index := make(map[int]int, len(items))
	changed := false

	for _, item := range items {
		if item.Quantity <= 0 {
			changed = true

			continue
		}

		if i, ok := index[item.Product.ID]; ok {
			out[i].Quantity += item.Quantity
			changed = true

			continue
		}

		index[item.Product.ID] = len(out)
		out = append(out, item)
	}

	if len(out) == 0 {
		return nil, changed
	}

	return out, changed
}

// persistLocked writes the whole cart. The in-memory state is kept even when
// the write fails.
func (c *Store) persistLocked() error {
	items := c.items
	if items == nil {
		items = []entity.CartItem{}
	}

	if err := kvstore.PutJSON(c.store, StorageKey, items); err != nil {
		c.log.Error(err, "cart - persist")

		return fmt.Errorf("cart - persist: %w", err)
	}

	return nil
}

func (c *Store) indexLocked(productID int) int {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			return i
		}
	}

	return -1
}

// AddItem adds quantity of product, merging with an existing line for the
// same product id. A quantity below 1 adds one.
func (c *Store) AddItem(product entity.Product, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexLocked(product.ID); i >= 0 {
		c.items[i].Quantity += quantity
	} else {
		c.items = append(c.items, entity.CartItem{Product: product, Quantity: quantity})
	}

	return c.persistLocked()
}

// RemoveItem reports whether a line for productID existed.
func (c *Store) RemoveItem(productID int) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.removeLocked(productID)
}

func (c *Store) removeLocked(productID int) (bool, error) {
	i := c.indexLocked(productID)
	if i < 0 {
		return false, nil
	}

	c.items = append(c.items[:i], c.items[i+1:]...)

	return true, c.persistLocked()
}

// SetQuantity replaces the quantity of a line; 0 or less removes it. It
// reports whether a line for productID existed.
func (c *Store) SetQuantity(productID, quantity int) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		return c.removeLocked(productID)
	}

	i := c.indexLocked(productID)
	if i < 0 {
		return false, nil
	}

	c.items[i].Quantity = quantity

	return true, c.persistLocked()
}

// Items returns a copy of the lines in insertion order.
func (c *Store) Items() []entity.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]entity.CartItem, len(c.items))
	copy(out, c.items)

	return out
}

// ItemCount is the sum of all quantities.
func (c *Store) ItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}

	return n
}

// Total is the sum of list price times quantity, unrounded.
func (c *Store) Total() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0.0
	for _, item := range c.items {
		total += item.Subtotal()
	}

	return total
}

// Clear empties the cart and persists the empty list.
func (c *Store) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil

	return c.persistLocked()
}

// IsEmpty -.
func (c *Store) IsEmpty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items) == 0
}

// ToOrderLines projects every line for order creation.
func (c *Store) ToOrderLines() []entity.OrderLine {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lines := make([]entity.OrderLine, 0, len(c.items))
	for _, item := range c.items {
		lines = append(lines, entity.OrderLine{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
			PriceUnit: item.Product.ListPrice,
			Name:      item.Product.Name,
		})
	}

	return lines
}

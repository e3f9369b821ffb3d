// Package cart holds the shopping cart state: the ordered list of cart items,
// the derived total quantity and the open/closed flag of the cart panel.
//
// Every mutation replaces the item list with a new slice, so a slice returned
// by Items is never modified afterwards and can be compared by identity or by
// Version to detect changes. Each effective mutation is written through to the
// backing key-value store under StorageKey.
package cart

import (
	"context"
	"slices"
	"sync"

	"github.com/rl1809/webstore/internal/core/domain"
	"github.com/rl1809/webstore/internal/port"
)

type Cart struct {
	mu      sync.Mutex
	store   port.KeyValueStore
	items   []domain.CartItem
	version uint64
	open    bool
}

// New returns a cart seeded from the items persisted in store. A missing or
// unreadable entry seeds an empty cart.
func New(ctx context.Context, store port.KeyValueStore) *Cart {
	return &Cart{
		store: store,
		items: load(ctx, store),
	}
}

// Items returns the current snapshot. Callers must treat it as read-only.
func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

// Version increases by one every time the item list changes.
func (c *Cart) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

func (c *Cart) ItemQuantity(productID int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(productID); i >= 0 {
		return c.items[i].Quantity
	}
	return 0
}

func (c *Cart) CartQuantity() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// IncreaseCartQuantity adds one unit of the product, appending a new line at
// the end of the cart if the product is not in it yet.
func (c *Cart) IncreaseCartQuantity(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(productID)
	if i < 0 {
		next := make([]domain.CartItem, len(c.items), len(c.items)+1)
		copy(next, c.items)
		c.commit(append(next, domain.CartItem{ProductID: productID, Quantity: 1}))
		return
	}

	next := slices.Clone(c.items)
	next[i].Quantity++
	c.commit(next)
}

// DecreaseCartQuantity removes one unit of the product. The line is dropped
// when its last unit goes; a product that is not in the cart is ignored.
func (c *Cart) DecreaseCartQuantity(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	if c.items[i].Quantity == 1 {
		c.commit(without(c.items, i))
		return
	}

	next := slices.Clone(c.items)
	next[i].Quantity--
	c.commit(next)
}

func (c *Cart) RemoveFromCart(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(productID); i >= 0 {
		c.commit(without(c.items, i))
	}
}

func (c *Cart) OpenCart() {
	c.mu.Lock()
	c.open = true
	c.mu.Unlock()
}

func (c *Cart) CloseCart() {
	c.mu.Lock()
	c.open = false
	c.mu.Unlock()
}

func (c *Cart) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

func (c *Cart) indexOf(productID int64) int {
	return slices.IndexFunc(c.items, func(item domain.CartItem) bool {
		return item.ProductID == productID
	})
}

// commit installs next as the current snapshot and writes it through.
// Must be called with c.mu held.
func (c *Cart) commit(next []domain.CartItem) {
	c.items = next[:len(next):len(next)]
	c.version++
	save(context.Background(), c.store, c.items)
}

func without(items []domain.CartItem, i int) []domain.CartItem {
	next := make([]domain.CartItem, 0, len(items)-1)
	next = append(next, items[:i]...)
	return append(next, items[i+1:]...)
}

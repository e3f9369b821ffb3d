// Package storefront is the client-side view of the shop: the product list
// fetched once from the API and the shopping cart.
package storefront

import (
	"context"
	"log"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rl1809/webstore/internal/core/cart"
	"github.com/rl1809/webstore/internal/core/domain"
	"github.com/rl1809/webstore/internal/port"
)

type Storefront struct {
	catalog port.ProductCatalog
	cart    *cart.Cart

	mu         sync.Mutex
	mounted    bool
	storeItems []domain.Product
}

func New(catalog port.ProductCatalog, c *cart.Cart) *Storefront {
	return &Storefront{
		catalog:    catalog,
		cart:       c,
		storeItems: []domain.Product{},
	}
}

func (s *Storefront) Cart() *cart.Cart {
	return s.cart
}

// Mount fetches the product list. Only the first call issues a request; a
// failed fetch keeps the previous list and is not reported to the caller.
func (s *Storefront) Mount(ctx context.Context) {
	s.mu.Lock()
	if s.mounted {
		s.mu.Unlock()
		return
	}
	s.mounted = true
	s.mu.Unlock()

	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		log.Printf("storefront: fetch products: %v", err)
		return
	}

	s.mu.Lock()
	s.storeItems = products
	s.mu.Unlock()
}

// StoreItems returns the last fetched product list. Callers must treat it as
// read-only.
func (s *Storefront) StoreItems() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storeItems
}

func (s *Storefront) Product(id int64) (domain.Product, bool) {
	for _, p := range s.StoreItems() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// LineTotal is the price of one cart line, zero when the product is unknown.
func (s *Storefront) LineTotal(item domain.CartItem) decimal.Decimal {
	p, ok := s.Product(item.ProductID)
	if !ok {
		return decimal.Zero
	}
	return p.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// Total sums the cart lines whose product is in the fetched list.
func (s *Storefront) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.cart.Items() {
		total = total.Add(s.LineTotal(item))
	}
	return total
}

package storefront

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/rl1809/webstore/internal/adapter/storage"
	"github.com/rl1809/webstore/internal/core/cart"
	"github.com/rl1809/webstore/internal/core/domain"
)

type fakeCatalog struct {
	mu       sync.Mutex
	products []domain.Product
	err      error
	calls    int
}

func (f *fakeCatalog) ListProducts(context.Context) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.products, f.err
}

func catalogOf(products ...domain.Product) *fakeCatalog {
	return &fakeCatalog{products: products}
}

func product(id int64, name, price string) domain.Product {
	return domain.Product{ID: id, Name: name, Price: decimal.RequireFromString(price)}
}

func newStorefront(catalog *fakeCatalog) *Storefront {
	return New(catalog, cart.New(context.Background(), storage.NewMemoryStore()))
}

func TestMount_FetchesOnce(t *testing.T) {
	catalog := catalogOf(product(1, "Widget", "12.50"))
	s := newStorefront(catalog)

	assert.Empty(t, s.StoreItems())

	s.Mount(context.Background())
	s.Mount(context.Background())
	s.Mount(context.Background())

	assert.Equal(t, 1, catalog.calls)
	require.Len(t, s.StoreItems(), 1)
	assert.Equal(t, "Widget", s.StoreItems()[0].Name)
}

func TestMount_ConcurrentCallsFetchOnce(t *testing.T) {
	catalog := catalogOf(product(1, "Widget", "1"))
	s := newStorefront(catalog)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Mount(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, catalog.calls)
}

func TestMount_FailureKeepsEmptyList(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("connection refused")}
	s := newStorefront(catalog)

	s.Mount(context.Background())
	s.Mount(context.Background())

	assert.NotNil(t, s.StoreItems())
	assert.Empty(t, s.StoreItems())
	assert.Equal(t, 1, catalog.calls)
}

func TestTotal(t *testing.T) {
	s := newStorefront(catalogOf(
		product(1, "Widget", "12.50"),
		product(2, "Gadget", "3.10"),
	))
	s.Mount(context.Background())

	c := s.Cart()
	c.IncreaseCartQuantity(1)
	c.IncreaseCartQuantity(1)
	c.IncreaseCartQuantity(2)

	assert.Equal(t, "28.1", s.Total().String())
	assert.Equal(t, "25", s.LineTotal(domain.CartItem{ProductID: 1, Quantity: 2}).String())
}

func TestTotal_SkipsUnknownProducts(t *testing.T) {
	s := newStorefront(catalogOf(product(1, "Widget", "2")))
	s.Mount(context.Background())

	s.Cart().IncreaseCartQuantity(1)
	s.Cart().IncreaseCartQuantity(99)

	assert.True(t, decimal.NewFromInt(2).Equal(s.Total()))
	assert.True(t, s.LineTotal(domain.CartItem{ProductID: 99, Quantity: 1}).IsZero())
	assert.Equal(t, 2, s.Cart().CartQuantity())
}

func TestTotal_BeforeMountIsZero(t *testing.T) {
	s := newStorefront(catalogOf(product(1, "Widget", "2")))
	s.Cart().IncreaseCartQuantity(1)

	assert.True(t, s.Total().IsZero())
}

func TestProduct(t *testing.T) {
	s := newStorefront(catalogOf(product(4, "Lamp", "19.99")))
	s.Mount(context.Background())

	p, ok := s.Product(4)
	require.True(t, ok)
	assert.Equal(t, "Lamp", p.Name)

	_, ok = s.Product(5)
	assert.False(t, ok)
}

func TestFormatCurrency(t *testing.T) {
	got := FormatCurrency(currency.USD, decimal.RequireFromString("12.5"))

	assert.Contains(t, got, "$")
	assert.Contains(t, got, "12.5")
}

func TestFormatCurrency_Euro(t *testing.T) {
	got := FormatCurrency(currency.EUR, decimal.RequireFromString("3"))

	assert.Contains(t, got, "€")
	assert.Contains(t, got, "3")
}

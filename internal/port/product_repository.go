package port

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rl1809/webstore/internal/core/domain"
)

type ProductRepository interface {
	// ListProducts returns every product row ordered by id
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// CountProducts returns the number of product rows
	CountProducts(ctx context.Context) (int64, error)

	// GetProduct returns the product with the given id, or nil if there is none
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)

	// CreateProduct inserts a product and returns its server-assigned id
	CreateProduct(ctx context.Context, name string, price decimal.Decimal) (int64, error)

	// UpdateProduct overwrites name and price of the product with the given id
	UpdateProduct(ctx context.Context, id int64, name string, price decimal.Decimal) error

	// DeleteProduct removes the product with the given id
	DeleteProduct(ctx context.Context, id int64) error
}

type ProductCatalog interface {
	// ListProducts fetches the full product collection
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

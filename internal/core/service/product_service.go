package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/rl1809/webstore/internal/core/domain"
	"github.com/rl1809/webstore/internal/port"
)

var ErrMissingFields = errors.New("missing required fields")

type ProductService struct {
	repo port.ProductRepository
}

func NewProductService(repo port.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *ProductService) CountProducts(ctx context.Context) (int64, error) {
	return s.repo.CountProducts(ctx)
}

// GetProduct returns nil without error when no product has the id.
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

// CreateProduct requires a name; a missing price is stored as zero.
func (s *ProductService) CreateProduct(ctx context.Context, name *string, price *decimal.Decimal) (domain.Product, error) {
	if name == nil {
		return domain.Product{}, ErrMissingFields
	}

	p := decimal.Zero
	if price != nil {
		p = *price
	}

	id, err := s.repo.CreateProduct(ctx, *name, p)
	if err != nil {
		return domain.Product{}, err
	}

	return domain.Product{ID: id, Name: *name, Price: p}, nil
}

// UpdateProduct requires both name and price.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, name *string, price *decimal.Decimal) (domain.Product, error) {
	if name == nil || price == nil {
		return domain.Product{}, ErrMissingFields
	}

	if err := s.repo.UpdateProduct(ctx, id, *name, *price); err != nil {
		return domain.Product{}, err
	}

	return domain.Product{ID: id, Name: *name, Price: *price}, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.DeleteProduct(ctx, id)
}

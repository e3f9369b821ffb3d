package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rl1809/webstore/internal/core/domain"
)

// ProductRepository runs the product statements against a MySQL or SQLite
// handle. Both accept the same placeholder syntax.
type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, price FROM product ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) CountProducts(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) AS total FROM product`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

func (r *ProductRepository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, price
		FROM product WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Price)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}

	return &p, nil
}

func (r *ProductRepository) CreateProduct(ctx context.Context, name string, price decimal.Decimal) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO product (name, price)
		VALUES (?, ?)`,
		name, price,
	)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, id int64, name string, price decimal.Decimal) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE product
		SET name = ?, price = ?
		WHERE id = ?`,
		name, price, id,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM product WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

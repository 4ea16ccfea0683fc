// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for SKU persistence.
var (
	// ErrSkuNotFound is returned when a SKU is not found.
	ErrSkuNotFound = errors.New("sku not found")
	// ErrDuplicateSkuCode is returned when a SKU code is already taken.
	ErrDuplicateSkuCode = errors.New("sku code already exists")
)

// SkuRepository defines the interface for SKU-related database operations.
type SkuRepository interface {
	// Create persists a new SKU and fills in its generated ID and timestamps.
	Create(ctx context.Context, sku *entity.Sku) error

	// Update overwrites every mutable field of an existing SKU.
	Update(ctx context.Context, sku *entity.Sku) error

	// Delete removes a SKU by its ID.
	Delete(ctx context.Context, id int64) error

	// FindByID retrieves a SKU by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Sku, error)

	// FindByCode retrieves a SKU by its unique code.
	FindByCode(ctx context.Context, skuCode string) (*entity.Sku, error)

	// FindAll retrieves every SKU ordered by ID.
	FindAll(ctx context.Context) ([]*entity.Sku, error)

	// Search matches term case-insensitively against name, code and category.
	Search(ctx context.Context, term string) ([]*entity.Sku, error)

	// FindByCategory retrieves the SKUs of one category.
	FindByCategory(ctx context.Context, category string) ([]*entity.Sku, error)

	// ListCategories returns the distinct categories in ascending order.
	ListCategories(ctx context.Context) ([]string, error)
}

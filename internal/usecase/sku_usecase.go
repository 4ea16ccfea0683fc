package usecase

import (
	"context"

	"catalog/internal/domain/entity"
)

// SkuInput carries the client-supplied fields of a SKU.
type SkuInput struct {
	SkuCode     string
	Name        string
	StyleName   string
	Colour      string
	Description string
	Quantity    int
	Price       float64
	Category    string
	Supplier    string
	Size        string
}

// SkuUsecase defines the catalog operations.
type SkuUsecase interface {
	ListSkus(ctx context.Context) ([]*entity.Sku, error)
	GetSku(ctx context.Context, id int64) (*entity.Sku, error)
	GetSkuByCode(ctx context.Context, skuCode string) (*entity.Sku, error)
	CreateSku(ctx context.Context, input *SkuInput) (*entity.Sku, error)
	UpdateSku(ctx context.Context, id int64, input *SkuInput) (*entity.Sku, error)
	DeleteSku(ctx context.Context, id int64) error
	// SearchSkus returns every SKU when term is blank.
	SearchSkus(ctx context.Context, term string) ([]*entity.Sku, error)
	ListSkusByCategory(ctx context.Context, category string) ([]*entity.Sku, error)
	ListCategories(ctx context.Context) ([]string, error)
	// GenerateLabel renders the QR label PNG of a SKU.
	GenerateLabel(ctx context.Context, id int64) ([]byte, error)
}

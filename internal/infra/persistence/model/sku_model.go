package model

import "time"

// SkuModel is the GORM-specific struct for the 'skus' table.
type SkuModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	SkuCode     string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_skus_sku_code"`
	Name        string  `gorm:"column:product_name;type:varchar(255);not null"`
	StyleName   string  `gorm:"type:varchar(255);not null"`
	Colour      string  `gorm:"type:varchar(100);not null"`
	Description string  `gorm:"type:varchar(1000)"`
	Quantity    int     `gorm:"not null;check:quantity >= 0"`
	Price       float64 `gorm:"type:numeric(12,2);not null;check:price > 0"`
	Category    string  `gorm:"type:varchar(100);not null;index:idx_skus_category"`
	Supplier    string  `gorm:"type:varchar(255)"`
	Size        string  `gorm:"type:varchar(50)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SkuModel) TableName() string {
	return "skus"
}

// Package entity contains the core business objects of the project.
package entity

import "time"

// Sku is a stock keeping unit in the catalog.
type Sku struct {
	ID          int64     `json:"id"`
	SkuCode     string    `json:"sku_code"`
	Name        string    `json:"name"`
	StyleName   string    `json:"style_name"`
	Colour      string    `json:"colour"`
	Description string    `json:"description,omitempty"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Supplier    string    `json:"supplier,omitempty"`
	Size        string    `json:"size,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

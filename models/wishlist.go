package models

import (
	"time"
)

// WishlistItem represents a product in a client's wishlist
type WishlistItem struct {
	ID        string    `json:"id" db:"id"`
	ClientID  string    `json:"client_id" db:"client_id"`
	ProductID int64     `json:"product_id" db:"product_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// WishlistItemWithProduct represents a wishlist item with product details
type WishlistItemWithProduct struct {
	WishlistItem
	Product *Product `json:"product"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}

func (WishlistItem) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS wishlist_items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		client_id TEXT NOT NULL,
		product_id BIGINT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
		UNIQUE (client_id, product_id)
	);`
}

// CustomProduct keeps a copy of a non-catalog product so wishlist entries in
// the AI id range can still be rendered later. Rows are inserted the first
// time a synthetic id enters any wishlist and are never pruned on removal.
type CustomProduct struct {
	ProductID int64     `json:"product_id" db:"product_id"`
	Product   Product   `json:"product" db:"product"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (CustomProduct) TableName() string {
	return "custom_products"
}

func (CustomProduct) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS custom_products (
		product_id BIGINT PRIMARY KEY,
		product JSONB NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);`
}

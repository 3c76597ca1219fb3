package analytics

import (
	"database/sql"
	"time"
)

// Order is a completed purchase, the source of revenue figures.
type Order struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	CustomerID   int64     `gorm:"column:customer_id" json:"customer_id"`
	ShopkeeperID int64     `gorm:"column:shopkeeper_id;index" json:"shopkeeper_id"`
	ProductID    int64     `gorm:"column:product_id" json:"product_id"`
	Quantity     int       `gorm:"column:quantity" json:"quantity"`
	TotalAmount  float64   `gorm:"column:total_amount" json:"total_amount"`
	Status       string    `gorm:"column:status;default:completed" json:"status"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Order) TableName() string { return "orders" }

// ProductView is one recorded visit to a product detail page.
type ProductView struct {
	ID           int64         `gorm:"column:id;primaryKey" json:"id"`
	ProductID    int64         `gorm:"column:product_id;index" json:"product_id"`
	ShopkeeperID int64         `gorm:"column:shopkeeper_id;index" json:"shopkeeper_id"`
	CustomerID   sql.NullInt64 `gorm:"column:customer_id" json:"customer_id,omitempty"`
	ViewedAt     time.Time     `gorm:"column:viewed_at;autoCreateTime" json:"viewed_at"`
}

func (ProductView) TableName() string { return "product_views" }

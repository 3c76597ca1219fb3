package product

import "time"

// Product is one listing owned by a shopkeeper.
type Product struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	ShopkeeperID int64     `gorm:"column:shopkeeper_id;index" json:"shopkeeper_id"`
	Name         string    `gorm:"column:name" json:"name"`
	Description  string    `gorm:"column:description" json:"description"`
	Price        float64   `gorm:"column:price" json:"price"`
	Stock        int       `gorm:"column:stock" json:"stock"`
	Category     string    `gorm:"column:category" json:"category"`
	Image        string    `gorm:"column:image" json:"image"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string { return "products" }

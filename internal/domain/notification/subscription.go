package notification

import (
	"database/sql"
	"time"
)

// ProductSubscription registers one customer's interest in being told
// when one product returns to stock. At most one active row exists per
// (customer, product) pair.
type ProductSubscription struct {
	ID         int64        `gorm:"column:id;primaryKey" json:"id"`
	CustomerID int64        `gorm:"column:customer_id;index:idx_product_notifications_pair" json:"customer_id"`
	ProductID  int64        `gorm:"column:product_id;index:idx_product_notifications_pair;index:idx_product_notifications_product" json:"product_id"`
	Notified   bool         `gorm:"column:notified" json:"notified"`
	NotifiedAt sql.NullTime `gorm:"column:notified_at" json:"notified_at,omitempty"`
	CreatedAt  time.Time    `gorm:"column:created_at" json:"created_at"`
}

func (ProductSubscription) TableName() string { return "product_notifications" }

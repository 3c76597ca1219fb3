package notification

import (
	"database/sql"
	"time"
)

// Role discriminates the identity space a notification belongs to.
// Customers, shopkeepers and admins live in separate tables, so a user
// id is only meaningful together with its role.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleShopkeeper Role = "shopkeeper"
	RoleAdmin      Role = "admin"
)

// Type tags the kind of event a notification describes.
type Type string

const (
	TypeProductAvailable     Type = "product_available"
	TypeVerificationApproved Type = "verification_approved"
	TypeVerificationRejected Type = "verification_rejected"
)

// Notification is one in-app message delivered to one user.
type Notification struct {
	ID        int64          `gorm:"column:id;primaryKey" json:"id"`
	UserID    int64          `gorm:"column:user_id;index:idx_notifications_user" json:"user_id"`
	UserRole  Role           `gorm:"column:user_role;index:idx_notifications_user" json:"user_role"`
	Type      Type           `gorm:"column:type" json:"type"`
	Title     string         `gorm:"column:title" json:"title"`
	Message   string         `gorm:"column:message" json:"message"`
	Link      sql.NullString `gorm:"column:link" json:"-"`
	IsRead    bool           `gorm:"column:is_read" json:"is_read"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

package shopkeeper

import (
	"database/sql"
	"time"
)

// VerificationStatus of a shopkeeper account. Only approved
// shopkeepers may list products.
type VerificationStatus string

const (
	StatusPending  VerificationStatus = "pending"
	StatusApproved VerificationStatus = "approved"
	StatusRejected VerificationStatus = "rejected"
)

// Shopkeeper is a seller-side account with its shop registration
// details. Shopkeeper ids are independent of customer and admin ids.
type Shopkeeper struct {
	ID       int64  `gorm:"column:id;primaryKey" json:"id"`
	Name     string `gorm:"column:name" json:"name"`
	Email    string `gorm:"column:email;uniqueIndex" json:"email"`
	Password string `gorm:"column:password" json:"-"`
	Phone    string `gorm:"column:phone" json:"phone"`

	ShopName      string `gorm:"column:shop_name" json:"shop_name"`
	Address       string `gorm:"column:address" json:"address"`
	GSTIN         string `gorm:"column:gstin" json:"gstin"`
	PAN           string `gorm:"column:pan" json:"pan"`
	LicenseNumber string `gorm:"column:license_number" json:"license_number"`
	Category      string `gorm:"column:category" json:"category"`

	VerificationStatus VerificationStatus `gorm:"column:verification_status;default:pending" json:"verification_status"`
	VerifiedBy         sql.NullInt64      `gorm:"column:verified_by" json:"-"`
	VerifiedAt         sql.NullTime       `gorm:"column:verified_at" json:"verified_at,omitempty"`
	RejectionReason    sql.NullString     `gorm:"column:rejection_reason" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Shopkeeper) TableName() string { return "shopkeepers" }

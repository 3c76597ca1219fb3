package admin

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"villagemart/internal/domain/shopkeeper"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	var a Admin
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) Create(ctx context.Context, a *Admin) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// ListShopkeepers returns shopkeepers, optionally filtered by
// verification status, newest first.
func (r *Repository) ListShopkeepers(ctx context.Context, status string) ([]shopkeeper.Shopkeeper, error) {
	q := r.db.WithContext(ctx).Order("id DESC")
	if status != "" {
		q = q.Where("verification_status = ?", status)
	}

	var out []shopkeeper.Shopkeeper
	err := q.Find(&out).Error
	return out, err
}

// ApproveShopkeeper stamps the approval and clears any prior rejection
// reason.
func (r *Repository) ApproveShopkeeper(ctx context.Context, shopkeeperID, adminID int64) (*shopkeeper.Shopkeeper, error) {
	res := r.db.WithContext(ctx).
		Model(&shopkeeper.Shopkeeper{}).
		Where("id = ?", shopkeeperID).
		Updates(map[string]any{
			"verification_status": shopkeeper.StatusApproved,
			"verified_by":         adminID,
			"verified_at":         time.Now(),
			"rejection_reason":    nil,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrShopkeeperNotFound
	}

	var sk shopkeeper.Shopkeeper
	if err := r.db.WithContext(ctx).First(&sk, shopkeeperID).Error; err != nil {
		return nil, err
	}
	return &sk, nil
}

func (r *Repository) RejectShopkeeper(ctx context.Context, shopkeeperID, adminID int64, reason string) (*shopkeeper.Shopkeeper, error) {
	res := r.db.WithContext(ctx).
		Model(&shopkeeper.Shopkeeper{}).
		Where("id = ?", shopkeeperID).
		Updates(map[string]any{
			"verification_status": shopkeeper.StatusRejected,
			"verified_by":         adminID,
			"verified_at":         time.Now(),
			"rejection_reason":    reason,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrShopkeeperNotFound
	}

	var sk shopkeeper.Shopkeeper
	if err := r.db.WithContext(ctx).First(&sk, shopkeeperID).Error; err != nil {
		return nil, err
	}
	return &sk, nil
}

package notification

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

// SubscriptionRepository persists product restock subscriptions.
type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Subscribe creates a subscription with notified=false. A second call
// for the same (customer, product) pair fails with ErrAlreadySubscribed
// while the first is still pending; once a subscription has been
// consumed by a restock it can be re-armed.
func (r *SubscriptionRepository) Subscribe(ctx context.Context, customerID, productID int64) (*ProductSubscription, error) {
	var existing ProductSubscription
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		First(&existing).Error
	if err == nil {
		if !existing.Notified {
			return nil, ErrAlreadySubscribed
		}
		res := r.db.WithContext(ctx).
			Model(&existing).
			Updates(map[string]any{
				"notified":    false,
				"notified_at": nil,
			})
		if res.Error != nil {
			return nil, res.Error
		}
		existing.Notified = false
		existing.NotifiedAt = sql.NullTime{}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sub := &ProductSubscription{
		CustomerID: customerID,
		ProductID:  productID,
		Notified:   false,
	}
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// Unsubscribe removes the subscription if present; absent is a no-op.
func (r *SubscriptionRepository) Unsubscribe(ctx context.Context, customerID, productID int64) error {
	return r.db.WithContext(ctx).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Delete(&ProductSubscription{}).Error
}

// IsSubscribed reports whether the customer holds a pending (not yet
// notified) subscription for the product.
func (r *SubscriptionRepository) IsSubscribed(ctx context.Context, customerID, productID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ProductSubscription{}).
		Where("customer_id = ? AND product_id = ? AND notified = ?", customerID, productID, false).
		Count(&count).Error
	return count > 0, err
}

// ListUnnotified returns a fresh snapshot of the product's un-notified
// subscriptions in insertion order.
func (r *SubscriptionRepository) ListUnnotified(ctx context.Context, productID int64) ([]ProductSubscription, error) {
	var subs []ProductSubscription
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND notified = ?", productID, false).
		Order("id ASC").
		Find(&subs).Error
	return subs, err
}

// MarkNotified flags the given subscriptions as notified in one bulk
// update. The notified=false filter makes the update safe under
// concurrent fan-outs for the same product: each row is claimed at most
// once, and the returned count reflects the rows this call claimed.
// Restricting to ids keeps subscriptions created during the fan-out
// un-marked, so they are picked up by the next restock cycle.
func (r *SubscriptionRepository) MarkNotified(ctx context.Context, productID int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&ProductSubscription{}).
		Where("product_id = ? AND notified = ? AND id IN ?", productID, false, ids).
		Updates(map[string]any{
			"notified":    true,
			"notified_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

package notification

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// NotificationRepository persists in-app notifications.
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// ListByUser returns the user's notifications, most recent first.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64, role Role, unreadOnly bool, limit, offset int) ([]Notification, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ? AND user_role = ?", userID, role).
		Order("created_at DESC, id DESC")

	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var out []Notification
	err := q.Find(&out).Error
	return out, err
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64, role Role) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("user_id = ? AND user_role = ? AND is_read = ?", userID, role, false).
		Count(&count).Error
	return count, err
}

// MarkRead is idempotent: re-marking an already-read notification is a
// no-op, an unknown id returns ErrNotificationNotFound.
func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ? AND is_read = ?", id, false).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var n Notification
	err := r.db.WithContext(ctx).Select("id").First(&n, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotificationNotFound
	}
	return err
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64, role Role) error {
	return r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("user_id = ? AND user_role = ? AND is_read = ?", userID, role, false).
		Update("is_read", true).Error
}

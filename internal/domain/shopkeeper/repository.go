package shopkeeper

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, s *Shopkeeper) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*Shopkeeper, error) {
	var s Shopkeeper
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Shopkeeper, error) {
	var s Shopkeeper
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, id int64, fields map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&Shopkeeper{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// VerificationStatus returns the current status as a plain string.
// Satisfies product.ShopkeeperGate.
func (r *Repository) VerificationStatus(ctx context.Context, shopkeeperID int64) (string, error) {
	var s Shopkeeper
	err := r.db.WithContext(ctx).Select("verification_status").First(&s, shopkeeperID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return string(s.VerificationStatus), nil
}

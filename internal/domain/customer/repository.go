package customer

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

func (r *Repository) Create(ctx context.Context, c *Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*Customer, error) {
	var c Customer
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Customer, error) {
	var c Customer
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, id int64, name, phone, address string) error {
	res := r.db.WithContext(ctx).
		Model(&Customer{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":    name,
			"phone":   phone,
			"address": address,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetContact resolves a customer's email contact for the restock
// fan-out. Satisfies notification.CustomerDirectory.
func (r *Repository) GetContact(ctx context.Context, customerID int64) (email, name string, err error) {
	var c Customer
	e := r.db.WithContext(ctx).Select("email", "name").First(&c, customerID).Error
	if errors.Is(e, gorm.ErrRecordNotFound) {
		return "", "", ErrNotFound
	}
	if e != nil {
		return "", "", e
	}
	return c.Email, c.Name, nil
}

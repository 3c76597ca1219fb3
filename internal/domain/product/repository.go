package product

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

func (r *Repository) Create(ctx context.Context, p *Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Product, error) {
	var p Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetDetail returns the product with its shop contact details.
func (r *Repository) GetDetail(ctx context.Context, id int64) (*ProductDetail, error) {
	var d ProductDetail
	err := r.db.WithContext(ctx).
		Table("products").
		Select(`products.id, products.name, products.description, products.price,
			products.stock, products.category, products.image, products.shopkeeper_id,
			shopkeepers.shop_name, shopkeepers.address, shopkeepers.phone`).
		Joins("JOIN shopkeepers ON products.shopkeeper_id = shopkeepers.id").
		Where("products.id = ?", id).
		Take(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListPublic returns products of approved shops, newest first.
func (r *Repository) ListPublic(ctx context.Context) ([]ProductWithShop, error) {
	var rows []ProductWithShop
	err := r.db.WithContext(ctx).
		Table("products").
		Select(`products.id, products.name, products.description, products.price,
			products.stock, products.category, products.image, shopkeepers.shop_name`).
		Joins("JOIN shopkeepers ON products.shopkeeper_id = shopkeepers.id").
		Where("shopkeepers.verification_status = ?", "approved").
		Order("products.id DESC").
		Find(&rows).Error
	return rows, err
}

func (r *Repository) ListByShopkeeper(ctx context.Context, shopkeeperID int64) ([]Product, error) {
	var rows []Product
	err := r.db.WithContext(ctx).
		Where("shopkeeper_id = ?", shopkeeperID).
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}

// Compare lists products of approved shops grouped for price
// comparison: name ascending, then cheapest first.
func (r *Repository) Compare(ctx context.Context) ([]CompareRow, error) {
	var rows []CompareRow
	err := r.db.WithContext(ctx).
		Table("products").
		Select(`products.id, products.name, products.description, products.price,
			products.stock, products.category, products.image,
			products.shopkeeper_id AS shop_id, shopkeepers.shop_name,
			shopkeepers.address AS shop_address, shopkeepers.phone AS shop_phone`).
		Joins("JOIN shopkeepers ON products.shopkeeper_id = shopkeepers.id").
		Where("shopkeepers.verification_status = ?", "approved").
		Order("products.name ASC, products.price ASC").
		Find(&rows).Error
	return rows, err
}

// Update applies the new fields inside one transaction that first reads
// the current row, so the returned old state is the immediately-prior
// value and the stock transition test never works off a stale read.
func (r *Repository) Update(ctx context.Context, id, shopkeeperID int64, in UpdateInput) (old, updated *Product, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur Product
		if err := tx.First(&cur, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if cur.ShopkeeperID != shopkeeperID {
			return ErrNotOwner
		}
		old = &cur

		fields := map[string]any{
			"name":        in.Name,
			"description": in.Description,
			"price":       in.Price,
			"stock":       in.Stock,
			"category":    in.Category,
		}
		if in.ImagePath != "" {
			fields["image"] = in.ImagePath
		}
		if err := tx.Model(&Product{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return err
		}

		var after Product
		if err := tx.First(&after, id).Error; err != nil {
			return err
		}
		updated = &after
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return old, updated, nil
}

func (r *Repository) Delete(ctx context.Context, id, shopkeeperID int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND shopkeeper_id = ?", id, shopkeeperID).
		Delete(&Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
